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

// Package postgres adapts PostgreSQL errors to field errors.
//
// A PostgreSQL error reaches the client as an exception payload carrying the
// SQLSTATE code and the "detail" line of the server message. The Adapter
// dispatches on the code and, for the codes it knows, derives the field the
// error refers to from the detail.
//
// # Unique violations
//
// Out of the box only SQLSTATE 23505 (unique_violation) is recognized. Its
// detail has the form
//
//	Key (username)=(joe) already exists.
//
// which is parsed into a UniqueViolation and rendered as
//
//	{"username": ["username joe already exists."]}
//
// A detail that does not have this form, or any other code, is left to the
// caller (Adapt reports ok == false) and usually ends up as the generic
// server error.
//
// # Extending
//
// Additional codes are registered at build time:
//
//	a, err := postgres.New(
//	    postgres.WithRule(pgerrcode.ForeignKeyViolation, myRule),
//	)
//
// An Adapter is immutable once built and safe for concurrent use.
//
// Errors produced in-process by pgx can be converted with FromError so that
// they go through the same rules.
package postgres
