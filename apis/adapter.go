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

// DatabaseAdapter interprets a vendor database error.
//
// Implementations are expected to be immutable and safe for concurrent use.
// An adapter understands a narrow set of vendor codes; for everything else it
// reports ok == false and the classifier falls back to the generic server
// error.
type DatabaseAdapter interface {
	// Name identifies the adapter in diagnostics, e.g. "postgres".
	Name() string

	// Adapt extracts field errors from e. The returned map must be non-empty
	// when ok is true.
	Adapt(e exception.Database) (fields FieldErrors, ok bool)
}
