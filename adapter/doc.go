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

// Package adapter converts between field errors and the google.rpc error
// details carried by gRPC statuses.
//
// A BadRequest holds one FieldViolation per message. Converting a BadRequest
// back yields an exception.Validation, so statuses received from a gRPC
// backend go through exactly the same classification as validation errors
// received from a GraphQL server.
package adapter
