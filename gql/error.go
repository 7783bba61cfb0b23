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
	"bytes"
	"strconv"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"github.com/goccy/go-json"
)

// Location is a position in the GraphQL document.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Error is one entry of the "errors" array of a GraphQL response.
type Error struct {
	Message    string      `json:"message"`
	Locations  []Location  `json:"locations,omitempty"`
	Path       []any       `json:"path,omitempty"`
	Extensions *Extensions `json:"extensions,omitempty"`
}

// Extensions holds the members of "extensions" the normalizer reads.
type Extensions struct {
	Code string `json:"code,omitempty"`
	// Exception is the parsed "exception" member; nil when absent or null.
	Exception exception.Payload `json:"-"`
}

type extensionsWire struct {
	Code      json.RawMessage `json:"code,omitempty"`
	Exception json.RawMessage `json:"exception,omitempty"`
}

// UnmarshalJSON decodes the extensions and parses the exception payload.
// A non-string code is ignored.
func (e *Extensions) UnmarshalJSON(data []byte) error {
	var w extensionsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var code string
	if len(w.Code) > 0 && w.Code[0] == '"' {
		if err := json.Unmarshal(w.Code, &code); err != nil {
			return err
		}
	}
	*e = Extensions{Code: code, Exception: exception.Parse(w.Exception)}
	return nil
}

// MarshalJSON encodes the extensions, re-encoding the exception payload.
func (e Extensions) MarshalJSON() ([]byte, error) {
	out := struct {
		Code      string `json:"code,omitempty"`
		Exception any    `json:"exception,omitempty"`
	}{Code: e.Code}
	if e.Exception != nil {
		out.Exception = e.Exception
	}
	return json.Marshal(out)
}

// Exception returns the parsed exception payload of e, or nil.
func (e Error) Exception() exception.Payload {
	if e.Extensions == nil {
		return nil
	}
	return e.Extensions.Exception
}

// SubError converts e into the carrier form.
func (e Error) SubError() apis.SubError {
	return apis.SubError{
		Message:   e.Message,
		Path:      pathStrings(e.Path),
		Exception: e.Exception(),
	}
}

// pathStrings renders path segments as strings. List indexes are decoded as
// numbers and rendered in decimal.
func pathStrings(path []any) []string {
	if len(path) == 0 {
		return nil
	}
	out := make([]string, len(path))
	for i, seg := range path {
		switch v := seg.(type) {
		case string:
			out[i] = v
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			out[i] = strconv.Itoa(v)
		case json.Number:
			out[i] = v.String()
		default:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			out[i] = string(bytes.Trim(b, `"`))
		}
	}
	return out
}
