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

	"dirpx.dev/apierr"
	"dirpx.dev/apierr/adapter"
	"dirpx.dev/apierr/apis"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// UnaryServerInterceptor returns an interceptor that converts *apierr.Error
// results (also when wrapped) into gRPC statuses. Any other error is
// returned unchanged.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := newConfig(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		e, ok := apierr.As(err)
		if !ok {
			return nil, err
		}
		cfg.recorder.IncClassified(e.Code())
		return nil, toStatus(m, e, cfg).Err()
	}
}

// Status converts e into a gRPC status with error details attached.
func Status(m apis.Mapper, e *apierr.Error, opts ...Option) *status.Status {
	return toStatus(m, e, newConfig(opts))
}

func toStatus(m apis.Mapper, e *apierr.Error, cfg config) *status.Status {
	base := status.New(m.GRPCStatus(e.Code(), e.Reason()), e.Message())

	details := []protoadapt.MessageV1{adapter.ErrorInfo(e, cfg.domain)}
	if cfg.retryDelay > 0 {
		if ri := adapter.RetryInfo(e, cfg.retryDelay); ri != nil {
			details = append(details, ri)
		}
	}
	with, err := base.WithDetails(details...)
	if err != nil {
		return base
	}
	return with
}
