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

// Package httpx writes field errors as HTTP responses.
//
// The body has the form
//
//	{"errors": {"email": ["email must be an email"]}}
//
// and is encoded through protojson from a structpb.Struct. The status is 422
// when at least one field is named and 500 when only the server entry is.
package httpx
