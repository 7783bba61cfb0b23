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
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// FromValidator converts go-playground/validator errors into a Validation
// payload, which is the shape a server puts under extensions.exception.
//
// Failures are grouped by field in order of first appearance; within a field,
// constraints follow the order in which the validator reported them. The
// property name is FieldError.Field(), so register a tag name function on the
// validator (e.g. returning the json tag) to get wire names instead of Go
// struct field names.
//
// The boolean is false when err does not wrap validator.ValidationErrors or
// when it holds no field errors.
func FromValidator(err error) (Validation, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Validation{}, false
	}

	var out Validation
	index := make(map[string]int, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		i, ok := index[field]
		if !ok {
			i = len(out.Failures)
			index[field] = i
			out.Failures = append(out.Failures, ValidationFailure{
				Property: field,
				Value:    marshalValue(fe.Value()),
			})
		}
		out.Failures[i].Constraints = append(out.Failures[i].Constraints, Constraint{
			Name:    fe.Tag(),
			Message: validatorMessage(fe),
		})
	}
	return out, true
}

// validatorMessage phrases a validator tag the way class-validator does, so
// clients see the same wording regardless of which server produced it.
func validatorMessage(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", field)
	case "email":
		return fmt.Sprintf("%s must be an email", field)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a URL address", field)
	case "uuid", "uuid4", "uuid5":
		return fmt.Sprintf("%s must be a UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s", field, fe.Param())
	case "len":
		if isString {
			return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must contain exactly %s elements", field, fe.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	}

	if fe.Param() != "" {
		return fmt.Sprintf("%s failed the %s=%s constraint", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed the %s constraint", field, fe.Tag())
}

func marshalValue(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
