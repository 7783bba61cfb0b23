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

// Package grpcx bridges field errors and gRPC.
//
// On the server, UnaryServerInterceptor turns handler errors the Normalizer
// recognizes into InvalidArgument statuses with a google.rpc.BadRequest
// detail, one field violation per message. Errors it cannot attribute to a
// field become Internal statuses carrying the generic server message.
//
// On the client, FromError (or UnaryClientInterceptor) turns such statuses
// into *StatusError, an apis.Carrier, so the field errors survive the hop:
//
//	conn, err := grpc.NewClient(target,
//	    grpc.WithUnaryInterceptor(grpcx.UnaryClientInterceptor()),
//	)
//	...
//	_, err = client.Signup(ctx, req)
//	out := fielderrors.GetFieldErrors(err, format.Options{})
package grpcx
