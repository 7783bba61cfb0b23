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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/format"
	"dirpx.dev/fielderrors/postgres"
	"github.com/rs/zerolog"
)

var (
	// ErrServerMessageEmpty is returned by New when the server message is blank.
	ErrServerMessageEmpty = errors.New("fielderrors: empty server message")
	// ErrAdapterNil is returned by New when a database adapter is nil.
	ErrAdapterNil = errors.New("fielderrors: nil database adapter")
)

// Normalizer converts errors into field errors.
//
// It is an immutable snapshot built by New: safe for concurrent use.
type Normalizer struct {
	serverMessage string
	adapters      []apis.DatabaseAdapter
	log           zerolog.Logger
}

// New builds a Normalizer. Without options it uses apis.DefaultServerMessage,
// the PostgreSQL adapter and a no-op logger.
func New(opts ...Option) (*Normalizer, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	msg := strings.TrimSpace(b.serverMessage)
	if msg == "" {
		return nil, ErrServerMessageEmpty
	}

	adapters := b.adapters
	if adapters == nil {
		adapters = []apis.DatabaseAdapter{postgres.MustNew()}
	}
	frozen := make([]apis.DatabaseAdapter, len(adapters))
	for i, a := range adapters {
		if a == nil {
			return nil, fmt.Errorf("%w at index %d", ErrAdapterNil, i)
		}
		frozen[i] = a
	}

	return &Normalizer{
		serverMessage: msg,
		adapters:      frozen,
		log:           b.log,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Normalizer {
	n, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// ServerMessage returns the generic message used for the server entry.
func (n *Normalizer) ServerMessage() string { return n.serverMessage }

// FieldErrors classifies err and formats the result with opts.
func (n *Normalizer) FieldErrors(err error, opts format.Options) format.Output {
	return format.Format(n.Classify(err), opts)
}

// Classify returns the unformatted field errors for err. An unrecognized
// error, or a carrier without sub-errors, yields the server entry alone.
func (n *Normalizer) Classify(err error) apis.FieldErrors {
	out, _ := n.classifyError(err)
	return out
}

// Explain produces a textual trace of how err was classified.
//
// Example output:
//
//	carrier=*gql.ClientError sub_errors=2
//	  [0] validation properties=["email"] -> fields=["email"]
//	  [1] database code="23505" adapter=postgres -> fields=["username"]
//	result: fields=["email" "username"]
func (n *Normalizer) Explain(err error) string {
	out, tr := n.classifyError(err)

	var b strings.Builder
	if tr.carrier == "" {
		_, _ = fmt.Fprintln(&b, "carrier=none -> server")
	} else {
		_, _ = fmt.Fprintf(&b, "carrier=%s sub_errors=%d\n", tr.carrier, len(tr.steps))
		if len(tr.steps) == 0 {
			_, _ = fmt.Fprintln(&b, "  (no sub-errors) -> server")
		}
		for _, s := range tr.steps {
			_, _ = fmt.Fprintf(&b, "  [%d] %s\n", s.index, s.String())
		}
	}
	_, _ = fmt.Fprintf(&b, "result: fields=%q", out.Fields())
	return b.String()
}

// carrierOf returns the first apis.Carrier in err's chain.
func carrierOf(err error) (apis.Carrier, bool) {
	if err == nil {
		return nil, false
	}
	var c apis.Carrier
	if !errors.As(err, &c) {
		return nil, false
	}
	return c, true
}

// subErrors calls c.SubErrors. A carrier that panics, for instance a
// third-party type called through a nil pointer, is reported as having no
// sub-errors.
func (n *Normalizer) subErrors(c apis.Carrier) (subs []apis.SubError) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Debug().Interface("panic", r).Str("carrier", fmt.Sprintf("%T", c)).Msg("carrier panicked in SubErrors")
			subs = nil
		}
	}()
	return c.SubErrors()
}

// classifyError is shared by Classify and Explain.
func (n *Normalizer) classifyError(err error) (apis.FieldErrors, trace) {
	c, ok := carrierOf(err)
	if !ok {
		n.log.Debug().Err(err).Msg("unrecognized error, reporting server error")
		return apis.ServerError(n.serverMessage), trace{}
	}

	tr := trace{carrier: fmt.Sprintf("%T", c)}
	subs := n.subErrors(c)
	if len(subs) == 0 {
		n.log.Debug().Str("carrier", tr.carrier).Msg("carrier without sub-errors, reporting server error")
		return apis.ServerError(n.serverMessage), tr
	}

	out, steps := n.classify(subs)
	tr.steps = steps
	return out, tr
}

var defaultNormalizer = MustNew()

// Default returns the package-level Normalizer used by GetFieldErrors.
func Default() *Normalizer { return defaultNormalizer }

// GetFieldErrors normalizes err with the default Normalizer and formats the
// result with opts. The zero Options value means list-shaped, unchanged
// messages.
func GetFieldErrors(err error, opts format.Options) format.Output {
	return defaultNormalizer.FieldErrors(err, opts)
}
