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

package postgres

import (
	"strings"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"github.com/jackc/pgerrcode"
)

// Rule converts a database error with a known SQLSTATE code into field
// errors. It reports false when the error does not carry enough information.
type Rule func(exception.Database) (apis.FieldErrors, bool)

// Option configures the Adapter at build time.
type Option func(*builder)

type builder struct {
	// rules is keyed by SQLSTATE code.
	rules map[string]Rule
}

func newBuilder() *builder {
	return &builder{
		rules: map[string]Rule{
			pgerrcode.UniqueViolation: UniqueViolationRule,
		},
	}
}

// WithRule registers r for the SQLSTATE code, replacing any earlier rule for
// the same code. Surrounding spaces are ignored. A nil rule or an empty code
// makes New fail.
func WithRule(code string, r Rule) Option {
	return func(b *builder) { b.rules[canonicalCode(code)] = r }
}

// WithoutRule removes the rule for the SQLSTATE code, if any.
func WithoutRule(code string) Option {
	return func(b *builder) { delete(b.rules, canonicalCode(code)) }
}

func canonicalCode(code string) string { return strings.TrimSpace(code) }
