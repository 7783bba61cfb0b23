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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"github.com/goccy/go-json"
)

func mustDecodeFile(t *testing.T, name string) *Response {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	resp, err := Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return resp
}

func TestDecode_Exceptions(t *testing.T) {
	resp := mustDecodeFile(t, "validation.json")
	if len(resp.Errors) != 4 {
		t.Fatalf("len(Errors) = %d, want 4", len(resp.Errors))
	}

	v, ok := resp.Errors[0].Exception().(exception.Validation)
	if !ok {
		t.Fatalf("errors[0] exception = %T, want Validation", resp.Errors[0].Exception())
	}
	if len(v.Failures) != 2 || v.Failures[1].Property != "password" {
		t.Fatalf("failures = %+v", v.Failures)
	}
	wantMsgs := []string{
		"password must be longer than or equal to 6 characters",
		"Password must include a special character",
	}
	if got := v.Failures[1].Constraints.Messages(); !reflect.DeepEqual(got, wantMsgs) {
		t.Fatalf("password messages = %q, want %q", got, wantMsgs)
	}
	if resp.Errors[0].Extensions.Code != "INTERNAL_SERVER_ERROR" {
		t.Fatalf("extensions.code = %q", resp.Errors[0].Extensions.Code)
	}

	db, ok := resp.Errors[1].Exception().(exception.Database)
	if !ok || db.Code != "23505" || db.Detail != "Key (username)=(joe) already exists." {
		t.Fatalf("errors[1] exception = %#v", resp.Errors[1].Exception())
	}

	op, ok := resp.Errors[2].Exception().(exception.Opaque)
	if !ok || op.Message != "boom" {
		t.Fatalf("errors[2] exception = %#v", resp.Errors[2].Exception())
	}

	if p := resp.Errors[3].Exception(); p != nil {
		t.Fatalf("errors[3] exception = %#v, want nil", p)
	}
}

func TestResponse_Err(t *testing.T) {
	resp := mustDecodeFile(t, "validation.json")
	err := resp.Err()

	var ce *ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("Err() = %T, want *ClientError", err)
	}
	var c apis.Carrier
	if !errors.As(err, &c) {
		t.Fatal("ClientError is not a Carrier")
	}
	subs := c.SubErrors()
	if len(subs) != 4 {
		t.Fatalf("len(SubErrors) = %d", len(subs))
	}
	if !reflect.DeepEqual(subs[1].Path, []string{"signup", "0", "username"}) {
		t.Fatalf("path = %q", subs[1].Path)
	}
	if subs[3].Exception != nil {
		t.Fatalf("sub-error without extensions has exception %#v", subs[3].Exception)
	}

	if (&Response{Data: json.RawMessage(`{}`)}).Err() != nil {
		t.Fatal("Err() of a successful response must be nil")
	}
	var nilResp *Response
	if nilResp.Err() != nil {
		t.Fatal("Err() of nil response must be nil")
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"data": null}`)); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("Decode(empty) error = %v", err)
	}
	if _, err := Decode(strings.NewReader(`{"errors": [`)); err == nil {
		t.Fatal("Decode(truncated) error = nil")
	}
	resp, err := Decode(strings.NewReader(`{"data": {"me": null}}`))
	if err != nil || resp.Err() != nil {
		t.Fatalf("Decode(data) = %v, %v", resp, err)
	}
}

func TestClientError_Error(t *testing.T) {
	network := errors.New("connection refused")
	tests := []struct {
		name string
		err  *ClientError
		want string
	}{
		{"graphql only", NewClientError(nil, Error{Message: "a"}, Error{Message: "b"}), "GraphQL error: a\nGraphQL error: b"},
		{"network only", NewClientError(network), "Network error: connection refused"},
		{"both", NewClientError(network, Error{Message: "a"}), "GraphQL error: a\nNetwork error: connection refused"},
		{"missing message", NewClientError(nil, Error{}), "GraphQL error: Error message not found."},
		{"empty", NewClientError(nil), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	var nilErr *ClientError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil || nilErr.SubErrors() != nil {
		t.Fatal("nil *ClientError must behave as an empty error")
	}

	ce := NewClientError(network)
	if !errors.Is(ce, network) {
		t.Fatal("errors.Is(ClientError, network) = false")
	}
	if ce.SubErrors() != nil {
		t.Fatal("network-only ClientError must have no sub-errors")
	}
}

func TestExtensions_MarshalJSON(t *testing.T) {
	in := Error{
		Message: "dup",
		Extensions: &Extensions{
			Code:      "INTERNAL_SERVER_ERROR",
			Exception: exception.Database{Code: "23505", Detail: "Key (a)=(b) c"},
		},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Error
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Exception(), in.Extensions.Exception) {
		t.Fatalf("exception = %#v, want %#v", back.Exception(), in.Extensions.Exception)
	}

	b, err = json.Marshal(Extensions{Code: "X"})
	if err != nil || string(b) != `{"code":"X"}` {
		t.Fatalf("Marshal(no exception) = %s, %v", b, err)
	}
}
