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
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/adapter"
	"dirpx.dev/outcome/internal/traceparent"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/problem"
)

// Metadata keys consulted for a trace id, in order.
const (
	TraceparentKey = "traceparent"
	RequestIDKey   = "x-request-id"
)

// UnaryServerInterceptor returns an interceptor that translates outcomes
// returned by unary handlers.
//
//   - A successful Result yields its payload value, or emptypb.Empty when it
//     carries none.
//   - A failed Result yields a status error with the resolved code, the
//     problem detail as message and the problem document as a Struct detail.
//   - A handler error that is not already a gRPC status is classified with
//     adapter.FromError and translated like a failure.
//
// Responses that are not a Result, and gRPC status errors, pass through.
// Nil resolver, builder or logger select the defaults.
func UnaryServerInterceptor(r *mapper.Resolver, b *problem.Builder, logger *slog.Logger) grpc.UnaryServerInterceptor {
	if r == nil {
		r = mapper.NewResolver(nil)
	}
	if b == nil {
		b = problem.NewBuilder(problem.WithResolver(r))
	}
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			if _, ok := status.FromError(err); ok {
				return nil, err
			}
			return nil, failure(ctx, adapter.FailureFrom[struct{}](err), info.FullMethod, r, b, logger)
		}

		res, ok := resp.(outcome.Result)
		if !ok {
			return resp, nil
		}
		if res.IsFailure() {
			return nil, failure(ctx, res, info.FullMethod, r, b, logger)
		}
		if t, ok := res.(outcome.Typed); ok {
			if p, ok := t.Payload(); ok {
				return p.Value(), nil
			}
		}
		return &emptypb.Empty{}, nil
	}
}

func failure(ctx context.Context, res outcome.Result, method string, r *mapper.Resolver, b *problem.Builder, logger *slog.Logger) error {
	trace := TraceID(ctx)
	doc, err := b.Build(res, method, trace)
	if err != nil {
		logger.ErrorContext(ctx, "outcome translation failed", "method", method, "trace_id", trace, "err", err)
		return status.Error(codes.Internal, "internal error")
	}

	st := status.New(r.ResolveGRPC(res), doc.Detail)
	s, err := adapter.ToStruct(doc)
	if err != nil {
		logger.WarnContext(ctx, "problem detail dropped", "method", method, "trace_id", trace, "err", err)
		return st.Err()
	}
	with, err := st.WithDetails(s)
	if err != nil {
		logger.WarnContext(ctx, "problem detail dropped", "method", method, "trace_id", trace, "err", err)
		return st.Err()
	}
	return with.Err()
}

// TraceID returns the trace id carried by incoming metadata: the trace-id
// field of a traceparent entry, else the x-request-id entry, else a new
// random UUID.
func TraceID(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if id, ok := traceparent.TraceID(first(md, TraceparentKey)); ok {
		return id
	}
	if v := first(md, RequestIDKey); v != "" {
		return v
	}
	return uuid.NewString()
}

func first(md metadata.MD, key string) string {
	for _, v := range md.Get(key) {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// ExtractProblem pulls the problem document out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractProblem(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
