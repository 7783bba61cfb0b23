/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "dirpx.dev/fielderrors/exception"

// Carrier is implemented by errors that wrap an ordered list of structured
// sub-errors, e.g. a GraphQL client error holding the "errors" array of a
// response, or a gRPC status carrying field violations.
//
// An error is of the recognized kind when errors.As finds a Carrier in its
// chain. Implementations should use pointer receivers and must return the
// sub-errors in the order the server reported them: later sub-errors win when
// two of them resolve to the same field.
type Carrier interface {
	error

	// SubErrors returns the structured sub-errors. May return nil, which
	// the classifier treats like any other carrier without sub-errors.
	SubErrors() []SubError
}

// SubError is one structured error reported by the remote layer.
type SubError struct {
	// Message is the top-level error message. It is informational only and
	// never shown as a field error.
	Message string

	// Path is the response path the error refers to, if any. List indexes
	// are rendered in decimal.
	Path []string

	// Exception is the parsed extensions.exception payload, or nil when the
	// sub-error had no extensions or no exception.
	Exception exception.Payload
}
