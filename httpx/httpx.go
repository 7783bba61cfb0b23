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
	"net/http"

	"dirpx.dev/fielderrors"
	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/format"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrorsKey is the member of the response body holding the field errors.
const ErrorsKey = "errors"

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided Normalizer and format options.
type Writer struct {
	// Normalizer classifies errors; nil selects fielderrors.Default().
	Normalizer *fielderrors.Normalizer
	// Options controls how messages are rendered.
	Options format.Options
}

// Status returns the HTTP status for m: 422 when m names at least one field,
// 500 when it only holds the server entry.
func Status(m apis.FieldErrors) int {
	for field := range m {
		if field != apis.ServerField {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// Write normalizes err and writes it to the response writer. A nil error
// writes nothing.
//
// No redaction is performed here: field messages are exposed as the server
// produced them. When they cannot be encoded, the server entry is written
// instead with status 500.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	n := w.Normalizer
	if n == nil {
		n = fielderrors.Default()
	}
	m := n.Classify(err)
	body, encErr := Encode(format.Format(m, w.Options))
	if encErr != nil {
		// Messages that cannot be encoded (e.g. invalid UTF-8) are replaced
		// by the server entry.
		m = apis.ServerError(n.ServerMessage())
		body, encErr = Encode(format.Format(m, w.Options))
	}

	rw.Header().Set("Content-Type", "application/json")
	if encErr != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.WriteHeader(Status(m))
	_, _ = rw.Write(body)
}

// Encode renders out as {"errors": {...}} through protojson.
func Encode(out format.Output) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{ErrorsKey: out.AsMap()})
	if err != nil {
		return nil, err
	}
	return (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(s)
}
