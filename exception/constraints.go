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
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrConstraintsInvalid is returned when a constraints document is not a JSON
// object of scalar values.
var ErrConstraintsInvalid = errors.New("exception: invalid constraints")

// Constraint is one violated rule of a property.
type Constraint struct {
	// Name is the constraint identifier, e.g. "isEmail" or "length".
	Name string
	// Message is the human-readable text shown to the user.
	Message string
}

// Constraints is an ordered constraint-name -> message mapping.
//
// It decodes from and encodes to a JSON object and keeps member order, which a
// Go map would lose.
type Constraints []Constraint

// Messages returns the constraint messages in order.
func (c Constraints) Messages() []string {
	if len(c) == 0 {
		return nil
	}
	out := make([]string, len(c))
	for i, ct := range c {
		out[i] = ct.Message
	}
	return out
}

// Get returns the message of the named constraint.
func (c Constraints) Get(name string) (string, bool) {
	for _, ct := range c {
		if ct.Name == name {
			return ct.Message, true
		}
	}
	return "", false
}

// MarshalJSON encodes the constraints as a JSON object in slice order.
func (c Constraints) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, ct := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(ct.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(ct.Message)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object member by member so that the resulting
// slice follows document order.
//
// String values are taken as-is; numbers and booleans keep their literal text.
// Null members are skipped. A duplicated name keeps its first position and the
// last message, matching how a JavaScript object literal would behave.
func (c *Constraints) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConstraintsInvalid, err)
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected object, got %v", ErrConstraintsInvalid, tok)
	}

	out := Constraints{}
	index := map[string]int{}
	for {
		keyTok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: unexpected end of object", ErrConstraintsInvalid)
			}
			return fmt.Errorf("%w: %v", ErrConstraintsInvalid, err)
		}
		if d, ok := keyTok.(json.Delim); ok && d == '}' {
			break
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected key %v", ErrConstraintsInvalid, keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConstraintsInvalid, err)
		}

		var msg string
		switch v := valTok.(type) {
		case nil:
			continue
		case string:
			msg = v
		case float64:
			msg = formatFloat(v)
		case json.Number:
			msg = v.String()
		case bool:
			msg = strconv.FormatBool(v)
		default:
			return fmt.Errorf("%w: constraint %q is not a scalar", ErrConstraintsInvalid, name)
		}

		if i, seen := index[name]; seen {
			out[i].Message = msg
			continue
		}
		index[name] = len(out)
		out = append(out, Constraint{Name: name, Message: msg})
	}

	*c = out
	return nil
}
