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

// Package apis defines the public Go-level contracts of fielderrors.
//
// The goal of this package is to provide *small, composable* types that the
// classifier, the vendor database adapters and the transport bridges (GraphQL,
// gRPC, HTTP) can all depend on without importing each other:
//
//   - Carrier is implemented by errors that wrap structured sub-errors (the
//     "recognized" error kind);
//   - SubError is one structured error inside a Carrier;
//   - FieldErrors is the canonical field -> messages map;
//   - DatabaseAdapter turns a vendor database error into FieldErrors.
//
// This package must remain lightweight: it only contains interfaces and very
// small value types.
package apis
