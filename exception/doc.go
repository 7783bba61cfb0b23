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

// Package exception models the structured cause a GraphQL server attaches to an
// error under extensions.exception.
//
// The payload arrives as untyped JSON and is classified exactly once, by shape,
// into one of three variants:
//
//   - Validation: the payload carries a non-empty "validationErrors" list;
//   - Database:   the payload carries a "code" member (vendor error code);
//   - Opaque:     anything else, e.g. a bare {"message": "..."}.
//
// Downstream code switches on the concrete type instead of probing maps, so the
// set of variants is closed: Payload can only be implemented inside this package.
//
// Constraint messages of a validation failure keep the order in which they
// appear in the JSON document. That order is the order in which messages are
// shown to the user, so Constraints is an ordered slice rather than a map.
package exception
