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

package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"dirpx.dev/fielderrors"
	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"dirpx.dev/fielderrors/format"
	"dirpx.dev/fielderrors/gql"
	"github.com/goccy/go-json"
	"github.com/jackc/pgerrcode"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestWriter_Write(t *testing.T) {
	unique := gql.NewClientError(nil, gql.Error{
		Message: "duplicate key",
		Extensions: &gql.Extensions{Exception: exception.Database{
			Code:   pgerrcode.UniqueViolation,
			Detail: "Key (email)=(joe@email.com) already taken",
		}},
	})

	tests := []struct {
		name       string
		w          Writer
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			"field error",
			Writer{},
			unique,
			http.StatusUnprocessableEntity,
			map[string]any{"errors": map[string]any{"email": []any{"email joe@email.com already taken"}}},
		},
		{
			"string shape",
			Writer{Options: format.With(format.ShapeString, format.CaseSentence)},
			unique,
			http.StatusUnprocessableEntity,
			map[string]any{"errors": map[string]any{"email": "Email joe@email.com already taken"}},
		},
		{
			"unencodable message falls back to server entry",
			Writer{},
			gql.NewClientError(nil, gql.Error{
				Message: "bad bytes",
				Extensions: &gql.Extensions{Exception: exception.Validation{Failures: []exception.ValidationFailure{{
					Property:    "name",
					Constraints: exception.Constraints{{Name: "isString", Message: "name \xff is invalid"}},
				}}}},
			}),
			http.StatusInternalServerError,
			map[string]any{"errors": map[string]any{"server": []any{apis.DefaultServerMessage}}},
		},
		{
			"server error",
			Writer{Normalizer: fielderrors.MustNew(fielderrors.WithServerMessage("Try again later"))},
			errors.New("boom"),
			http.StatusInternalServerError,
			map[string]any{"errors": map[string]any{"server": []any{"Try again later"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.w.Write(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("Content-Type = %q", ct)
			}
			if got := decodeBody(t, rec); !reflect.DeepEqual(got, tt.wantBody) {
				t.Fatalf("body = %#v, want %#v", got, tt.wantBody)
			}
		})
	}
}

func TestWriter_WriteNil(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil)
	if rec.Body.Len() != 0 || len(rec.Header()) != 0 {
		t.Fatalf("Write(nil) wrote %q %v", rec.Body.String(), rec.Header())
	}
}
