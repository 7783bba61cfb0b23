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
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrEmptyResponse is returned by Decode when the document has neither data
// nor errors.
var ErrEmptyResponse = errors.New("gql: response has neither data nor errors")

// Response is a GraphQL response document.
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []Error         `json:"errors,omitempty"`
}

// Decode reads one GraphQL response document from r.
func Decode(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("gql: decode response: %w", err)
	}
	if len(resp.Errors) == 0 && (len(resp.Data) == 0 || string(resp.Data) == "null") {
		return nil, ErrEmptyResponse
	}
	return &resp, nil
}

// Err returns a *ClientError holding the response errors, or nil when the
// response has none.
func (r *Response) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	return NewClientError(nil, r.Errors...)
}
