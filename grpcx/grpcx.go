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

package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/fielderrors"
	"dirpx.dev/fielderrors/adapter"
	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/exception"
	"dirpx.dev/fielderrors/postgres"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// InvalidArgumentMessage is the status message of statuses carrying field
// violations.
const InvalidArgumentMessage = "invalid argument"

// StatusError is a gRPC status that carries field violations.
type StatusError struct {
	st   *gstatus.Status
	subs []apis.SubError
}

var _ apis.Carrier = (*StatusError)(nil)

// Error returns the status text.
func (e *StatusError) Error() string {
	if e == nil || e.st == nil {
		return ""
	}
	return e.st.Err().Error()
}

// GRPCStatus makes status.FromError and status.Code see the original status.
func (e *StatusError) GRPCStatus() *gstatus.Status {
	if e == nil {
		return nil
	}
	return e.st
}

// SubErrors returns one sub-error per BadRequest detail.
func (e *StatusError) SubErrors() []apis.SubError {
	if e == nil {
		return nil
	}
	return e.subs
}

// FromError returns a *StatusError when err is a gRPC status with at least
// one BadRequest detail, and err unchanged otherwise.
func FromError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return err
	}
	var subs []apis.SubError
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		subs = append(subs, apis.SubError{
			Message:   st.Message(),
			Exception: adapter.FromBadRequest(br),
		})
	}
	if len(subs) == 0 {
		return err
	}
	return &StatusError{st: st, subs: subs}
}

// ExtractBadRequest pulls the first BadRequest detail out of a gRPC error.
// Useful in tests and client code.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that applies
// FromError to every call error.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return FromError(invoker(ctx, method, req, reply, cc, opts...))
	}
}

// handlerError wraps a handler error that is not a carrier itself but that
// can be described as sub-errors.
type handlerError struct {
	err  error
	subs []apis.SubError
}

func (e *handlerError) Error() string              { return e.err.Error() }
func (e *handlerError) Unwrap() error              { return e.err }
func (e *handlerError) SubErrors() []apis.SubError { return e.subs }

// recognize returns err as a carrier when the normalizer can classify it:
// carriers are used as is, validator errors and pgx errors are described as
// a single sub-error.
func recognize(err error) (apis.Carrier, bool) {
	var c apis.Carrier
	if errors.As(err, &c) {
		return c, true
	}
	if v, ok := exception.FromValidator(err); ok {
		return &handlerError{err: err, subs: []apis.SubError{{Message: err.Error(), Exception: v}}}, true
	}
	if db, ok := postgres.FromError(err); ok {
		return &handlerError{err: err, subs: []apis.SubError{{Message: err.Error(), Exception: db}}}, true
	}
	return nil, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// recognized handler errors into statuses:
//
//   - field errors become InvalidArgument with a BadRequest detail;
//   - errors that resolve to the server entry alone become Internal with the
//     normalizer's server message.
//
// Errors that are already gRPC statuses without field violations, and errors
// the normalizer does not recognize, are returned as is.
func UnaryServerInterceptor(n *fielderrors.Normalizer) grpc.UnaryServerInterceptor {
	if n == nil {
		n = fielderrors.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		c, ok := recognize(err)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, StatusFromFieldErrors(n.Classify(c), n.ServerMessage()).Err()
	}
}

// StatusFromFieldErrors builds the status for m: InvalidArgument with a
// BadRequest detail when m names at least one field, Internal with
// serverMessage otherwise.
func StatusFromFieldErrors(m apis.FieldErrors, serverMessage string) *gstatus.Status {
	br := adapter.ToBadRequest(m)
	if br == nil {
		return gstatus.New(gcodes.Internal, serverMessage)
	}
	base := gstatus.New(gcodes.InvalidArgument, InvalidArgumentMessage)
	// Try to attach the violations. If it fails, return base.
	if with, err := base.WithDetails(br); err == nil {
		return with
	}
	return base
}
