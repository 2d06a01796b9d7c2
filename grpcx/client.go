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
	"strings"

	"dirpx.dev/apierr"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// UnaryClientInterceptor returns an interceptor that classifies failed
// calls. The returned error is always an *apierr.Error:
//   - its call site is the remote service and method;
//   - its attempt count comes from apierr.TriesFromContext;
//   - the request message and the received status are attached as JSON.
func UnaryClientInterceptor(opts ...Option) grpc.UnaryClientInterceptor {
	cfg := newConfig(opts)
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, callOpts...)
		if err == nil {
			return nil
		}
		if e, ok := err.(*apierr.Error); ok {
			return e
		}

		service, op := SplitMethod(method)
		e := classify(err,
			apierr.WithCallSite(service, op),
			apierr.WithTries(apierr.TriesFromContext(ctx)),
		)
		if m, ok := req.(proto.Message); ok {
			e.SetRequest(marshal(m))
		}
		if st, ok := statusOf(err); ok {
			e.SetResponse(marshal(st.Proto()))
		}
		cfg.recorder.IncClassified(e.Code())
		return e
	}
}

// SplitMethod splits a full gRPC method name ("/pkg.v1.ContactService/Add")
// into the unqualified service name and the method name.
func SplitMethod(fullMethod string) (service, method string) {
	s := strings.TrimPrefix(fullMethod, "/")
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return "", s
	}
	service, method = s[:i], s[i+1:]
	if j := strings.LastIndexByte(service, '.'); j >= 0 {
		service = service[j+1:]
	}
	return service, method
}

func marshal(m proto.Message) string {
	b, err := protojson.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
