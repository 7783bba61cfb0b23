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

package apis

import "sort"

// ServerField is the reserved field name for failures that cannot be pinned to
// a form field (network errors, unclassified server errors, unknown database
// errors). Callers must not use it as the name of a real form field.
const ServerField = "server"

// DefaultServerMessage is the message stored under ServerField when no more
// specific information is available.
const DefaultServerMessage = "An internal server error occurred"

// FieldErrors maps a field name to its ordered, non-empty list of messages.
//
// Merging two maps is per-field last-write-wins: a later contribution for a
// field replaces the earlier messages for that field instead of appending to
// them.
type FieldErrors map[string][]string

// Set replaces the messages of field. Calls with no messages are ignored so
// that every key keeps at least one message.
func (f FieldErrors) Set(field string, messages ...string) {
	if len(messages) == 0 {
		return
	}
	cp := make([]string, len(messages))
	copy(cp, messages)
	f[field] = cp
}

// Merge copies every field of other into f, replacing existing entries.
func (f FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		f.Set(k, v...)
	}
}

// Clone returns a deep copy of f. A nil map clones to nil.
func (f FieldErrors) Clone() FieldErrors {
	if f == nil {
		return nil
	}
	out := make(FieldErrors, len(f))
	out.Merge(f)
	return out
}

// Fields returns the field names in lexical order.
func (f FieldErrors) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OnlyServer reports whether the map holds nothing but the ServerField entry.
func (f FieldErrors) OnlyServer() bool {
	_, ok := f[ServerField]
	return ok && len(f) == 1
}

// ServerError returns the single-entry map {ServerField: [message]}.
func ServerError(message string) FieldErrors {
	return FieldErrors{ServerField: {message}}
}
