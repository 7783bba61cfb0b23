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

// Package gql models the error side of a GraphQL response.
//
// Error is one entry of the "errors" array. Its extensions.exception member is
// parsed once, at decode time, into an exception.Payload. ClientError is what
// a client returns when a request failed: the GraphQL errors of the response,
// a network error, or both. It implements apis.Carrier, so it is recognized by
// fielderrors.GetFieldErrors.
//
//	resp, err := gql.Decode(r)
//	if err != nil {
//	    return err
//	}
//	if err := resp.Err(); err != nil {
//	    out := fielderrors.GetFieldErrors(err, format.Options{})
//	    ...
//	}
package gql
