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
	"errors"
	"fmt"
	"regexp"
	"sort"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Name identifies the adapter in diagnostics.
const Name = "postgres"

var (
	// ErrCodeEmpty is returned by New when a rule is registered for "".
	ErrCodeEmpty = errors.New("postgres: empty SQLSTATE code")
	// ErrRuleNil is returned by New when a rule is nil.
	ErrRuleNil = errors.New("postgres: nil rule")
)

// uniqueDetail matches the detail line of a unique violation:
// Key (<field>)=(<value>) <rest>.
var uniqueDetail = regexp.MustCompile(`^Key \((.*)\)=\((.*)\)\s(.*)$`)

// UniqueViolation is the parsed detail of a unique_violation error.
type UniqueViolation struct {
	Field string
	Value string
	// Message is the remainder of the detail after the key/value pair.
	Message string
}

// String renders the violation as "<field> <value> <message>".
func (u UniqueViolation) String() string {
	return u.Field + " " + u.Value + " " + u.Message
}

// ParseUniqueViolation parses a unique_violation detail line.
// The first captured group is the field, the second the value and the third
// the rest of the line; an empty capture is accepted as is.
func ParseUniqueViolation(detail string) (UniqueViolation, bool) {
	m := uniqueDetail.FindStringSubmatch(detail)
	if m == nil {
		return UniqueViolation{}, false
	}
	return UniqueViolation{Field: m[1], Value: m[2], Message: m[3]}, true
}

// UniqueViolationRule maps a unique violation to {field: ["field value rest"]}.
func UniqueViolationRule(e exception.Database) (apis.FieldErrors, bool) {
	u, ok := ParseUniqueViolation(e.Detail)
	if !ok {
		return nil, false
	}
	return apis.FieldErrors{u.Field: {u.String()}}, true
}

// Adapter is the PostgreSQL implementation of apis.DatabaseAdapter.
type Adapter struct {
	rules map[string]Rule
}

var _ apis.DatabaseAdapter = (*Adapter)(nil)

// New builds an Adapter. The unique_violation rule is always installed first,
// so a WithRule for the same code replaces it.
func New(opts ...Option) (*Adapter, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	rules := make(map[string]Rule, len(b.rules))
	for code, r := range b.rules {
		if code == "" {
			return nil, ErrCodeEmpty
		}
		if r == nil {
			return nil, fmt.Errorf("%w for code %q", ErrRuleNil, code)
		}
		rules[code] = r
	}
	return &Adapter{rules: rules}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Adapter {
	a, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns Name.
func (a *Adapter) Name() string { return Name }

// Codes returns the SQLSTATE codes the adapter handles, sorted.
func (a *Adapter) Codes() []string {
	out := make([]string, 0, len(a.rules))
	for c := range a.rules {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Adapt applies the rule registered for e.Code, ignoring surrounding spaces. It reports false when no rule
// exists for the code or the rule could not make sense of the error; the
// returned map is nil in that case.
func (a *Adapter) Adapt(e exception.Database) (apis.FieldErrors, bool) {
	r, ok := a.rules[canonicalCode(e.Code)]
	if !ok {
		return nil, false
	}
	fe, ok := r(e)
	if !ok || len(fe) == 0 {
		return nil, false
	}
	return fe, true
}

// FromPgError converts a pgx server error into the exception payload form.
func FromPgError(pe *pgconn.PgError) exception.Database {
	if pe == nil {
		return exception.Database{}
	}
	return exception.Database{Code: pe.Code, Detail: pe.Detail}
}

// FromError looks for a *pgconn.PgError in err's chain and converts it.
func FromError(err error) (exception.Database, bool) {
	var pe *pgconn.PgError
	if !errors.As(err, &pe) {
		return exception.Database{}, false
	}
	return FromPgError(pe), true
}

// IsUniqueViolation reports whether e is a unique_violation.
func IsUniqueViolation(e exception.Database) bool {
	return e.Code == pgerrcode.UniqueViolation
}
