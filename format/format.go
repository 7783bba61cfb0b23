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
	"sort"
	"strings"
	"unicode/utf8"

	"dirpx.dev/fielderrors/apis"
	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator joins the messages of one field when the shape is ShapeString.
const Separator = ", "

// Options is the presentation configuration.
//
// The zero value means {As: ShapeArray, Format: CaseNone}. The JSON form is
//
//	{"fieldErrorValues": {"as": "string", "format": "lowercase"}}
type Options struct {
	FieldErrorValues ValueOptions `json:"fieldErrorValues"`
}

// ValueOptions configures how each field's messages are rendered.
type ValueOptions struct {
	As     Shape `json:"as,omitempty"`
	Format Case  `json:"format,omitempty"`
}

// Defaults returns the explicit default options.
func Defaults() Options {
	return Options{FieldErrorValues: ValueOptions{As: ShapeArray, Format: CaseNone}}
}

// With is a shorthand for building Options.
func With(as Shape, c Case) Options {
	return Options{FieldErrorValues: ValueOptions{As: as, Format: c}}
}

// Value is the formatted entry of one field: either an ordered list of
// messages or a single joined string.
type Value struct {
	list   []string
	text   string
	joined bool
}

// List builds a list-shaped Value.
func List(messages ...string) Value {
	cp := make([]string, len(messages))
	copy(cp, messages)
	return Value{list: cp}
}

// Text builds a string-shaped Value.
func Text(s string) Value {
	return Value{text: s, joined: true}
}

// IsText reports whether v is string-shaped.
func (v Value) IsText() bool { return v.joined }

// Strings returns the messages of v. For a string-shaped value the text is
// split on Separator, which restores the original list as long as no message
// itself contains Separator.
func (v Value) Strings() []string {
	if v.joined {
		return strings.Split(v.text, Separator)
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp
}

// String returns the text of a string-shaped value, or the list joined with
// Separator.
func (v Value) String() string {
	if v.joined {
		return v.text
	}
	return strings.Join(v.list, Separator)
}

// Interface returns a string or a []any of strings, the form expected by
// generic encoders such as structpb.
func (v Value) Interface() any {
	if v.joined {
		return v.text
	}
	out := make([]any, len(v.list))
	for i, m := range v.list {
		out[i] = m
	}
	return out
}

// MarshalJSON encodes a list-shaped value as a JSON array and a string-shaped
// value as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.joined {
		return json.Marshal(v.text)
	}
	if v.list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.list)
}

// UnmarshalJSON accepts either a JSON array of strings or a JSON string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Text(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*v = List(list...)
	return nil
}

// Output maps field names to formatted values.
type Output map[string]Value

// Fields returns the field names in lexical order.
func (o Output) Fields() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsMap converts o into a map of plain Go values (see Value.Interface).
func (o Output) AsMap() map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = v.Interface()
	}
	return out
}

// Format applies opts to every field of m. The input map is not modified.
// Unknown option values fall back to the defaults.
func Format(m apis.FieldErrors, opts Options) Output {
	as := opts.FieldErrorValues.As.OrDefault()
	c := opts.FieldErrorValues.Format.OrDefault()

	out := make(Output, len(m))
	for field, messages := range m {
		transformed := make([]string, len(messages))
		for i, msg := range messages {
			transformed[i] = ApplyCase(c, msg)
		}
		if as == ShapeString {
			out[field] = Text(strings.Join(transformed, Separator))
			continue
		}
		out[field] = Value{list: transformed}
	}
	return out
}

// ApplyCase applies the casing transform c to msg. Unknown cases leave msg
// unchanged.
func ApplyCase(c Case, msg string) string {
	switch c {
	case CaseLowercase:
		// Casers are stateful; one per call keeps Format safe for concurrent use.
		return cases.Lower(language.Und).String(msg)
	case CaseSentence:
		return upperFirst(msg)
	default:
		return msg
	}
}

// upperFirst upper-cases the first rune of s. The remaining bytes are copied
// verbatim.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
