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

// Package fielderrors turns the errors returned by a remote query layer into a
// field-keyed map of messages suitable for form feedback.
//
// # Overview
//
// A client of a GraphQL-style API sees many kinds of failures: the transport
// may fail, the server may crash, or the server may reject the input with a
// structured validation or database error. Package fielderrors collapses all
// of them into one shape:
//
//	{"email": ["email must be an email"], "password": ["..."]}
//
// Anything that cannot be attributed to a field ends up under the reserved
// "server" key with a generic message:
//
//	{"server": ["An internal server error occurred"]}
//
// # Recognized errors
//
// An error is recognized when errors.As finds an apis.Carrier in its chain.
// The carrier exposes ordered sub-errors, each with an optional, already
// parsed exception payload (see package exception). Shipped carriers are
// *gql.ClientError and *grpcx.StatusError.
//
// Every other error, nil included, and every carrier without sub-errors,
// yields the generic server error.
//
// # Classification
//
// Sub-errors are processed in order and their contributions are merged with
// per-field last-write-wins semantics:
//
//   - exception.Validation maps every failing property to the messages of its
//     constraints, in the order the server sent them;
//   - exception.Database is offered to the configured database adapters in
//     order (PostgreSQL by default); the first one that handles it wins,
//     otherwise the server entry is set;
//   - anything else sets the server entry.
//
// # Formatting
//
// The merged map is then rendered by package format according to
// format.Options: messages may be lower-cased or sentence-cased and may be
// returned as a list or as one string joined with ", ".
//
// # Usage
//
//	out := fielderrors.GetFieldErrors(err, format.With(format.ShapeString, format.CaseLowercase))
//
// or, with a customized normalizer:
//
//	n, err := fielderrors.New(
//	    fielderrors.WithServerMessage("Something went wrong"),
//	    fielderrors.WithLogger(log),
//	)
//	out := n.FieldErrors(err, format.Options{})
//
// A Normalizer is immutable and safe for concurrent use. It never returns an
// error and never panics while normalizing.
//
// # Diagnostics
//
// Normalizer.Explain returns a textual trace of how each sub-error was
// classified, which is handy in tests and when debugging unexpected output.
package fielderrors
