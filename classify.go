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

package fielderrors

import (
	"fmt"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
)

// trace records how an error was classified, for Explain.
type trace struct {
	// carrier is the dynamic type of the carrier; empty when none was found.
	carrier string
	steps   []step
}

// step is the outcome of one sub-error.
type step struct {
	index   int
	kind    exception.Kind
	detail  string
	adapter string
	fields  []string
	server  bool
}

func (s step) String() string {
	kind := "none"
	if s.kind != "" {
		kind = s.kind.String()
	}
	line := kind
	if s.detail != "" {
		line += " " + s.detail
	}
	if s.adapter != "" {
		line += " adapter=" + s.adapter
	}
	if s.server {
		return line + " -> server"
	}
	return line + fmt.Sprintf(" -> fields=%q", s.fields)
}

// classify merges the contributions of subs in order. A later contribution
// for a field replaces the earlier one.
func (n *Normalizer) classify(subs []apis.SubError) (apis.FieldErrors, []step) {
	out := make(apis.FieldErrors)
	steps := make([]step, 0, len(subs))

	for i, sub := range subs {
		s := step{index: i}

		switch p := sub.Exception.(type) {
		case exception.Validation:
			s.kind = p.Kind()
			s.detail = fmt.Sprintf("properties=%q", properties(p.Failures))
			if len(p.Failures) == 0 {
				s.server = true
				break
			}
			fe := AdaptValidation(p.Failures)
			s.fields = fe.Fields()
			out.Merge(fe)

		case exception.Database:
			s.kind = p.Kind()
			s.detail = fmt.Sprintf("code=%q", p.Code)
			fe, name, ok := n.adaptDatabase(p)
			if !ok {
				s.server = true
				break
			}
			s.adapter = name
			s.fields = fe.Fields()
			out.Merge(fe)

		case nil:
			s.server = true

		default:
			s.kind = p.Kind()
			s.server = true
		}

		if s.server {
			out.Set(apis.ServerField, n.serverMessage)
		}
		n.log.Debug().
			Int("index", i).
			Str("kind", string(s.kind)).
			Str("adapter", s.adapter).
			Strs("fields", s.fields).
			Bool("server", s.server).
			Msg("sub-error classified")
		steps = append(steps, s)
	}

	return out, steps
}

// adaptDatabase offers e to the adapters in order.
func (n *Normalizer) adaptDatabase(e exception.Database) (apis.FieldErrors, string, bool) {
	for _, a := range n.adapters {
		if fe, ok := a.Adapt(e); ok && len(fe) > 0 {
			return fe, a.Name(), true
		}
	}
	return nil, "", false
}

// AdaptValidation maps every failing property to the messages of its
// constraints, in order. When a property appears more than once the later
// failure replaces the earlier one. Failures without constraints contribute
// nothing.
func AdaptValidation(failures []exception.ValidationFailure) apis.FieldErrors {
	out := make(apis.FieldErrors, len(failures))
	for _, f := range failures {
		out.Set(f.Property, f.Constraints.Messages()...)
	}
	return out
}

func properties(failures []exception.ValidationFailure) []string {
	out := make([]string, len(failures))
	for i, f := range failures {
		out[i] = f.Property
	}
	return out
}
