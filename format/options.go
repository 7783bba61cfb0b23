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

package format

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Shape selects how the messages of one field are represented.
type Shape string

// Case selects the message-level casing transform.
type Case string

const (
	// ShapeArray keeps the messages as an ordered list. It is the default.
	ShapeArray Shape = "array"
	// ShapeString joins the messages with Separator into one string.
	ShapeString Shape = "string"
)

const (
	// CaseNone leaves messages unchanged. It is the default.
	CaseNone Case = "none"
	// CaseLowercase lowercases every message in full.
	CaseLowercase Case = "lowercase"
	// CaseSentence upper-cases the first character of every message and
	// leaves the rest untouched. It is not a full sentence-casing algorithm.
	CaseSentence Case = "sentence-case"
)

var (
	// ErrShapeInvalid is returned when a value cannot be parsed as a Shape.
	ErrShapeInvalid = errors.New("format: invalid shape")
	// ErrCaseInvalid is returned when a value cannot be parsed as a Case.
	ErrCaseInvalid = errors.New("format: invalid case")
)

var (
	_ encoding.TextMarshaler   = (*Shape)(nil)
	_ encoding.TextUnmarshaler = (*Shape)(nil)
	_ encoding.TextMarshaler   = (*Case)(nil)
	_ encoding.TextUnmarshaler = (*Case)(nil)
)

// Normalize trims, lowercases and replaces '_' and ' ' with '-'.
// It does NOT guarantee validity; callers should still Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// ParseShape normalizes s and validates it. The empty string parses to the
// default ShapeArray.
func ParseShape(s string) (Shape, error) {
	switch sh := Shape(Normalize(s)); sh {
	case "":
		return ShapeArray, nil
	case ShapeArray, ShapeString:
		return sh, nil
	default:
		return "", ErrShapeInvalid
	}
}

// ParseCase normalizes s and validates it. The empty string parses to the
// default CaseNone.
func ParseCase(s string) (Case, error) {
	switch c := Case(Normalize(s)); c {
	case "":
		return CaseNone, nil
	case CaseNone, CaseLowercase, CaseSentence:
		return c, nil
	default:
		return "", ErrCaseInvalid
	}
}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool { return s == ShapeArray || s == ShapeString }

// Valid reports whether c is one of the known cases.
func (c Case) Valid() bool { return c == CaseNone || c == CaseLowercase || c == CaseSentence }

// OrDefault returns s, or ShapeArray when s is unknown or empty.
func (s Shape) OrDefault() Shape {
	if s.Valid() {
		return s
	}
	return ShapeArray
}

// OrDefault returns c, or CaseNone when c is unknown or empty.
func (c Case) OrDefault() Case {
	if c.Valid() {
		return c
	}
	return CaseNone
}

func (s Shape) String() string { return string(s) }
func (c Case) String() string  { return string(c) }

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrShapeInvalid
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseShape.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Case) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrCaseInvalid
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseCase.
func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := ParseCase(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
