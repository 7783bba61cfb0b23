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

package adapter

import (
	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// DefaultReason names a constraint whose violation carried no reason.
const DefaultReason = "invalid"

// ToBadRequest converts field errors into a BadRequest with one violation per
// message. Fields are emitted in lexical order. The server entry is not a
// field and is skipped; nil is returned when nothing is left.
func ToBadRequest(m apis.FieldErrors) *errdetails.BadRequest {
	var out []*errdetails.BadRequest_FieldViolation
	for _, field := range m.Fields() {
		if field == apis.ServerField {
			continue
		}
		for _, msg := range m[field] {
			out = append(out, &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: msg,
			})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &errdetails.BadRequest{FieldViolations: out}
}

// ValidationToBadRequest converts a validation payload into a BadRequest,
// keeping the failure order and using constraint names as reasons.
func ValidationToBadRequest(v exception.Validation) *errdetails.BadRequest {
	var out []*errdetails.BadRequest_FieldViolation
	for _, f := range v.Failures {
		for _, c := range f.Constraints {
			out = append(out, &errdetails.BadRequest_FieldViolation{
				Field:       f.Property,
				Description: c.Message,
				Reason:      c.Name,
			})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &errdetails.BadRequest{FieldViolations: out}
}

// FromBadRequest groups the violations of br by field, in first-seen order.
// The constraint name is the violation reason, or DefaultReason. The message
// is the description, or the localized message when the description is
// empty; violations with neither are dropped.
func FromBadRequest(br *errdetails.BadRequest) exception.Validation {
	var (
		failures []exception.ValidationFailure
		index    = map[string]int{}
	)
	for _, fv := range br.GetFieldViolations() {
		msg := fv.GetDescription()
		if msg == "" {
			msg = fv.GetLocalizedMessage().GetMessage()
		}
		if msg == "" {
			continue
		}
		name := fv.GetReason()
		if name == "" {
			name = DefaultReason
		}

		i, ok := index[fv.GetField()]
		if !ok {
			i = len(failures)
			index[fv.GetField()] = i
			failures = append(failures, exception.ValidationFailure{Property: fv.GetField()})
		}
		failures[i].Constraints = append(failures[i].Constraints, exception.Constraint{Name: name, Message: msg})
	}
	return exception.Validation{Failures: failures}
}
