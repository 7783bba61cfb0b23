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
	"reflect"
	"testing"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestParseUniqueViolation(t *testing.T) {
	tests := []struct {
		detail string
		want   UniqueViolation
		ok     bool
	}{
		{"Key (username)=(joe) already taken", UniqueViolation{"username", "joe", "already taken"}, true},
		{"Key (email)=(a@b.c) already exists.", UniqueViolation{"email", "a@b.c", "already exists."}, true},
		{"Key ()=() x", UniqueViolation{"", "", "x"}, true},
		{"Key username joe already taken", UniqueViolation{}, false},
		{"Key (username)=(joe)", UniqueViolation{}, false},
		{"", UniqueViolation{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.detail, func(t *testing.T) {
			got, ok := ParseUniqueViolation(tt.detail)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ParseUniqueViolation(%q) = %#v, %v; want %#v, %v", tt.detail, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAdapter_Adapt(t *testing.T) {
	a := MustNew()

	tests := []struct {
		name string
		in   exception.Database
		want apis.FieldErrors
		ok   bool
	}{
		{
			"unique violation",
			exception.Database{Code: pgerrcode.UniqueViolation, Detail: "Key (username)=(joe) already taken"},
			apis.FieldErrors{"username": {"username joe already taken"}},
			true,
		},
		{
			"unique violation with unparseable detail",
			exception.Database{Code: pgerrcode.UniqueViolation, Detail: "Key username joe already taken"},
			nil,
			false,
		},
		{
			"unique violation without detail",
			exception.Database{Code: pgerrcode.UniqueViolation},
			nil,
			false,
		},
		{
			"other code",
			exception.Database{Code: pgerrcode.OutOfMemory, Detail: "Key (username)=(joe) already taken"},
			nil,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.Adapt(tt.in)
			if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Adapt(%+v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNew_Options(t *testing.T) {
	fk := func(e exception.Database) (apis.FieldErrors, bool) {
		return apis.FieldErrors{"owner_id": {"owner does not exist"}}, true
	}
	a, err := New(WithRule(pgerrcode.ForeignKeyViolation, fk))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := a.Codes(); !reflect.DeepEqual(got, []string{pgerrcode.ForeignKeyViolation, pgerrcode.UniqueViolation}) {
		t.Fatalf("Codes() = %v", got)
	}
	got, ok := a.Adapt(exception.Database{Code: pgerrcode.ForeignKeyViolation})
	if !ok || got["owner_id"][0] != "owner does not exist" {
		t.Fatalf("Adapt(fk) = %v, %v", got, ok)
	}

	a = MustNew(WithoutRule(pgerrcode.UniqueViolation))
	if _, ok := a.Adapt(exception.Database{Code: pgerrcode.UniqueViolation, Detail: "Key (a)=(b) c"}); ok {
		t.Fatal("Adapt should not handle a removed code")
	}

	if _, err := New(WithRule("", fk)); !errors.Is(err, ErrCodeEmpty) {
		t.Fatalf("New(empty code) error = %v", err)
	}
	if _, err := New(WithRule(pgerrcode.CheckViolation, nil)); !errors.Is(err, ErrRuleNil) {
		t.Fatalf("New(nil rule) error = %v", err)
	}
}

func TestNew_CodesAreTrimmed(t *testing.T) {
	custom := func(exception.Database) (apis.FieldErrors, bool) {
		return apis.FieldErrors{"custom": {"custom rule"}}, true
	}
	want := apis.FieldErrors{"custom": {"custom rule"}}
	in := exception.Database{Code: pgerrcode.UniqueViolation, Detail: "Key (a)=(b) c"}

	// Map iteration order varies between runs; repeat so a collision would show.
	for i := 0; i < 50; i++ {
		a := MustNew(WithRule(" "+pgerrcode.UniqueViolation+" ", custom))
		if got := a.Codes(); !reflect.DeepEqual(got, []string{pgerrcode.UniqueViolation}) {
			t.Fatalf("Codes() = %q", got)
		}
		if got, ok := a.Adapt(in); !ok || !reflect.DeepEqual(got, want) {
			t.Fatalf("Adapt() = %v, %v; want %v", got, ok, want)
		}
	}

	a := MustNew(WithoutRule(" " + pgerrcode.UniqueViolation + "\t"))
	if len(a.Codes()) != 0 {
		t.Fatalf("Codes() after WithoutRule = %q", a.Codes())
	}

	got, ok := MustNew().Adapt(exception.Database{Code: " 23505 ", Detail: "Key (a)=(b) c"})
	if !ok || !reflect.DeepEqual(got, apis.FieldErrors{"a": {"a b c"}}) {
		t.Fatalf("Adapt(padded code) = %v, %v", got, ok)
	}

	if _, err := New(WithRule("  ", custom)); !errors.Is(err, ErrCodeEmpty) {
		t.Fatalf("New(blank code) error = %v", err)
	}
}

func TestAdapter_RuleWithoutFields(t *testing.T) {
	empty := func(exception.Database) (apis.FieldErrors, bool) { return apis.FieldErrors{}, true }
	a := MustNew(WithRule(pgerrcode.CheckViolation, empty))
	if got, ok := a.Adapt(exception.Database{Code: pgerrcode.CheckViolation}); ok || got != nil {
		t.Fatalf("Adapt = %v, %v; want nil, false", got, ok)
	}
}

func TestFromError(t *testing.T) {
	pe := &pgconn.PgError{
		Severity: "ERROR",
		Code:     pgerrcode.UniqueViolation,
		Message:  `duplicate key value violates unique constraint "users_email_key"`,
		Detail:   "Key (email)=(a@b.c) already exists.",
	}
	err := fmt.Errorf("insert user: %w", pe)

	db, ok := FromError(err)
	if !ok {
		t.Fatal("FromError did not find the PgError")
	}
	want := exception.Database{Code: pgerrcode.UniqueViolation, Detail: "Key (email)=(a@b.c) already exists."}
	if db != want {
		t.Fatalf("FromError = %+v, want %+v", db, want)
	}
	if !IsUniqueViolation(db) {
		t.Fatal("IsUniqueViolation = false")
	}

	got, ok := MustNew().Adapt(db)
	if !ok || !reflect.DeepEqual(got, apis.FieldErrors{"email": {"email a@b.c already exists."}}) {
		t.Fatalf("Adapt(FromError) = %v, %v", got, ok)
	}

	if _, ok := FromError(errors.New("boom")); ok {
		t.Fatal("FromError(plain) reported ok")
	}
	if got := FromPgError(nil); got != (exception.Database{}) {
		t.Fatalf("FromPgError(nil) = %+v", got)
	}
}
