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

package mapper

import (
	"net/http"

	"dirpx.dev/outcome/category"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the built-in
// categories.
var defaultHTTP = map[category.Category]int{
	// 4xx: client, protocol and resource issues.
	category.Validation:          http.StatusBadRequest,
	category.Request:             http.StatusBadRequest,
	category.NotFound:            http.StatusNotFound,
	category.Conflict:            http.StatusConflict,
	category.Concurrency:         http.StatusConflict, // Optimistic lock / version mismatch.
	category.UnprocessableEntity: http.StatusUnprocessableEntity,
	category.Timeout:             http.StatusRequestTimeout,
	category.RateLimit:           http.StatusTooManyRequests,

	// AuthN / AuthZ.
	category.Authentication: http.StatusUnauthorized,
	category.Unauthorized:   http.StatusUnauthorized,
	category.Forbidden:      http.StatusForbidden,
	category.Security:       http.StatusForbidden,

	// 5xx: server and dependency issues.
	category.Network:             http.StatusServiceUnavailable,
	category.ServiceUnavailable:  http.StatusServiceUnavailable,
	category.InternalServerError: http.StatusInternalServerError,
	category.Database:            http.StatusInternalServerError,
	category.Exception:           http.StatusInternalServerError,
	category.General:             http.StatusInternalServerError,
	category.None:                http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings for the built-in
// categories, aligned with canonical gRPC status semantics.
var defaultGRPC = map[category.Category]codes.Code{
	category.Validation:          codes.InvalidArgument,
	category.Request:             codes.InvalidArgument,
	category.UnprocessableEntity: codes.InvalidArgument,
	category.NotFound:            codes.NotFound,
	category.Conflict:            codes.Aborted,
	category.Concurrency:         codes.Aborted,
	category.Timeout:             codes.DeadlineExceeded,
	category.RateLimit:           codes.ResourceExhausted,

	category.Authentication: codes.Unauthenticated,
	category.Unauthorized:   codes.Unauthenticated,
	category.Forbidden:      codes.PermissionDenied,
	category.Security:       codes.PermissionDenied,

	category.Network:             codes.Unavailable,
	category.ServiceUnavailable:  codes.Unavailable,
	category.InternalServerError: codes.Internal,
	category.Database:            codes.Internal,
	category.Exception:           codes.Internal,
	category.General:             codes.Internal,
	category.None:                codes.Internal,
}

// httpToGRPC projects an explicitly declared HTTP status onto a gRPC code.
// It is only consulted when an outcome declares its own status.
var httpToGRPC = map[int]codes.Code{
	http.StatusBadRequest:          codes.InvalidArgument,
	http.StatusUnauthorized:        codes.Unauthenticated,
	http.StatusForbidden:           codes.PermissionDenied,
	http.StatusNotFound:            codes.NotFound,
	http.StatusRequestTimeout:      codes.DeadlineExceeded,
	http.StatusConflict:            codes.Aborted,
	http.StatusGone:                codes.NotFound,
	http.StatusPreconditionFailed:  codes.FailedPrecondition,
	http.StatusUnprocessableEntity: codes.InvalidArgument,
	http.StatusTooManyRequests:     codes.ResourceExhausted,
	499:                            codes.Canceled, // nginx "client closed request"
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// GRPCFromHTTP maps an HTTP status to the closest gRPC code. Successful
// statuses map to codes.OK, unknown 4xx to codes.FailedPrecondition and
// everything else to codes.Internal.
func GRPCFromHTTP(status int) codes.Code {
	if c, ok := httpToGRPC[status]; ok {
		return c
	}
	switch {
	case status >= 200 && status < 300:
		return codes.OK
	case status >= 400 && status < 500:
		return codes.FailedPrecondition
	}
	return codes.Internal
}
