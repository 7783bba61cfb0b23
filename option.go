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

package fielderrors

import (
	"dirpx.dev/fielderrors/apis"
	"github.com/rs/zerolog"
)

// Option configures the Normalizer at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Normalizer.
type Option func(*builder)

type builder struct {
	serverMessage string
	// adapters is nil until WithDatabaseAdapters is used; nil selects the
	// library default.
	adapters []apis.DatabaseAdapter
	log      zerolog.Logger
}

func newBuilder() *builder {
	return &builder{
		serverMessage: apis.DefaultServerMessage,
		log:           zerolog.Nop(),
	}
}

// WithServerMessage sets the message reported under the server entry.
func WithServerMessage(msg string) Option {
	return func(b *builder) { b.serverMessage = msg }
}

// WithDatabaseAdapters replaces the database adapters. They are tried in
// order and the first one that handles an error wins. Passing no adapter
// disables database handling: every database error becomes a server error.
func WithDatabaseAdapters(adapters ...apis.DatabaseAdapter) Option {
	return func(b *builder) {
		b.adapters = append(make([]apis.DatabaseAdapter, 0, len(adapters)), adapters...)
	}
}

// WithLogger sets the logger used for classification decisions (debug level).
func WithLogger(l zerolog.Logger) Option {
	return func(b *builder) { b.log = l }
}
