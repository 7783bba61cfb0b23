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

// Package format turns a canonical field error map into its presentation form.
//
// Two independent options control the output:
//
//   - Case, applied to every message: "none" (default), "lowercase" or
//     "sentence-case" (first character upper-cased, the rest untouched);
//   - Shape, applied to every field: "array" (default) keeps the ordered
//     messages, "string" joins them with ", ".
//
// Both option types are validated string types with Normalize/Parse helpers,
// so they can be read from flags, environment or JSON. Format itself never
// fails: unknown values fall back to the defaults.
package format
