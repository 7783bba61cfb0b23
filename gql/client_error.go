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

package gql

import (
	"strings"

	"dirpx.dev/fielderrors/apis"
)

// ClientError is the error a GraphQL client returns for a failed request.
//
// GraphQLErrors holds the "errors" array of the response, in order.
// NetworkError is set when the request did not complete; it is exposed through
// Unwrap so errors.Is and errors.As see it.
type ClientError struct {
	GraphQLErrors []Error
	NetworkError  error
}

var _ apis.Carrier = (*ClientError)(nil)

// NewClientError returns a ClientError with the given errors.
func NewClientError(network error, errs ...Error) *ClientError {
	return &ClientError{GraphQLErrors: errs, NetworkError: network}
}

// Error renders one "GraphQL error: <message>" line per GraphQL error followed
// by a "Network error: <message>" line when a network error is present.
func (e *ClientError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	for _, ge := range e.GraphQLErrors {
		msg := ge.Message
		if msg == "" {
			msg = "Error message not found."
		}
		b.WriteString("GraphQL error: ")
		b.WriteString(msg)
		b.WriteByte('\n')
	}
	if e.NetworkError != nil {
		b.WriteString("Network error: ")
		b.WriteString(e.NetworkError.Error())
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Unwrap returns the network error, if any.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.NetworkError
}

// SubErrors returns the GraphQL errors in order. A pure network failure has
// none, and neither has a nil *ClientError.
func (e *ClientError) SubErrors() []apis.SubError {
	if e == nil || len(e.GraphQLErrors) == 0 {
		return nil
	}
	out := make([]apis.SubError, len(e.GraphQLErrors))
	for i, ge := range e.GraphQLErrors {
		out[i] = ge.SubError()
	}
	return out
}
