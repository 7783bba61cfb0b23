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

package exception

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Kind names the variant of a Payload.
type Kind string

const (
	// KindValidation is the Kind of a Validation payload.
	KindValidation Kind = "validation"
	// KindDatabase is the Kind of a Database payload.
	KindDatabase Kind = "database"
	// KindOpaque is the Kind of an Opaque payload.
	KindOpaque Kind = "opaque"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Payload is the parsed form of extensions.exception.
//
// The interface is sealed: the only implementations are Validation, Database
// and Opaque. A nil Payload means the sub-error carried no exception at all.
type Payload interface {
	// Kind reports which variant the payload is.
	Kind() Kind

	payload()
}

// Validation is an input-validation failure reported by the server.
type Validation struct {
	// Failures is the ordered list of failing properties. Parse only
	// produces a Validation when this list is non-empty.
	Failures []ValidationFailure `json:"validationErrors"`
}

// ValidationFailure describes all violated constraints of one property.
type ValidationFailure struct {
	// Property is the name of the failing field, used verbatim as the key of
	// the resulting field error map.
	Property string `json:"property"`

	// Constraints maps constraint identifiers to human-readable messages, in
	// document order.
	Constraints Constraints `json:"constraints"`

	// Target and Value echo the validated object and value. They are kept
	// for callers that want them and are otherwise ignored.
	Target json.RawMessage `json:"target,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// Database is a vendor database error (for PostgreSQL, a SQLSTATE code plus
// the detail line of the server message).
type Database struct {
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// Opaque is any exception that is neither a validation nor a database error.
type Opaque struct {
	// Message is the "message" member of the payload, when it was a string.
	Message string `json:"-"`
	// Raw is the original payload. It may be empty for values built in Go.
	Raw json.RawMessage `json:"-"`
}

func (Validation) Kind() Kind { return KindValidation }
func (Database) Kind() Kind   { return KindDatabase }
func (Opaque) Kind() Kind     { return KindOpaque }

func (Validation) payload() {}
func (Database) payload()   {}
func (Opaque) payload()     {}

// MarshalJSON returns Raw when present, otherwise a {"message": ...} object.
func (o Opaque) MarshalJSON() ([]byte, error) {
	if len(o.Raw) > 0 {
		return o.Raw, nil
	}
	return json.Marshal(struct {
		Message string `json:"message,omitempty"`
	}{o.Message})
}

// Members of the exception document the classifier looks at. Lookups are
// exact: a member spelled with a different case is not one of them.
const (
	memberValidationErrors = "validationErrors"
	memberCode             = "code"
	memberDetail           = "detail"
	memberMessage          = "message"
)

// Parse classifies a raw extensions.exception document.
//
// Classification order:
//
//  1. a non-empty "validationErrors" list makes a Validation;
//  2. otherwise a non-null "code" member makes a Database;
//  3. everything else, including documents that fail to decode, is Opaque.
//
// Parse returns nil for empty input and for JSON null, which callers treat as
// "no exception". It never returns an error: a malformed payload is still an
// error the user has to see, just not a classifiable one.
func Parse(data []byte) Payload {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return Opaque{Raw: cloneRaw(data)}
	}

	if raw, ok := members[memberValidationErrors]; ok && !isNull(bytes.TrimSpace(raw)) {
		var failures []ValidationFailure
		if err := json.Unmarshal(raw, &failures); err != nil {
			return Opaque{Raw: cloneRaw(data)}
		}
		if len(failures) > 0 {
			return Validation{Failures: failures}
		}
	}
	if code := bytes.TrimSpace(members[memberCode]); len(code) > 0 && !isNull(code) {
		return Database{Code: scalarText(code), Detail: scalarText(members[memberDetail])}
	}
	return Opaque{Message: scalarText(members[memberMessage]), Raw: cloneRaw(data)}
}

// scalarText renders a JSON scalar as plain text: strings are unquoted,
// numbers and booleans keep their literal form, null and composites yield "".
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[':
		return ""
	default:
		return string(raw)
	}
}

func isNull(raw []byte) bool {
	return bytes.Equal(raw, []byte("null"))
}

func cloneRaw(data []byte) json.RawMessage {
	out := make(json.RawMessage, len(data))
	copy(out, data)
	return out
}

// formatFloat renders numeric constraint values the way they were written for
// integral values ("6" rather than "6e+00").
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
