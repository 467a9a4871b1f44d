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

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"google.golang.org/grpc/codes"
)

// Resolver derives transport statuses for outcomes.
//
// It is immutable and safe for concurrent use.
type Resolver struct {
	m apis.Mapper
}

// NewResolver returns a Resolver backed by m. A nil m uses Default().
func NewResolver(m apis.Mapper) *Resolver {
	if m == nil {
		m = Default()
	}
	return &Resolver{m: m}
}

// Mapper returns the underlying category mapper.
func (r *Resolver) Mapper() apis.Mapper { return r.m }

// Resolve returns the HTTP status for an outcome.
//
// Successes return their declared status (200 unless set otherwise); it is
// not range-checked here. Failures return their declared status if it lies
// within 100..599, otherwise the status of the category of the FIRST error.
// Multi-category failures therefore collapse to one status; later errors
// never influence it. A failure without errors, and a nil result, resolve
// to 500.
func (r *Resolver) Resolve(res outcome.Result) int {
	if res == nil {
		return http.StatusInternalServerError
	}
	if res.IsSuccess() {
		if s := res.StatusCode(); s > 0 {
			return s
		}
		return http.StatusOK
	}
	if s := res.StatusCode(); ValidHTTPStatus(s) {
		return s
	}
	errs := res.Errors()
	if len(errs) == 0 {
		return http.StatusInternalServerError
	}
	return r.m.HTTPStatus(errs[0].Category)
}

// ResolveGRPC returns the gRPC status code for an outcome, following the
// same precedence as Resolve. A declared HTTP status is projected with
// GRPCFromHTTP.
//
// A failure never resolves to codes.OK: a declared status projecting to OK
// (any 2xx) is ignored in favour of the first error's category, and a
// category mapped to OK yields codes.Internal.
func (r *Resolver) ResolveGRPC(res outcome.Result) codes.Code {
	if res == nil {
		return codes.Internal
	}
	if res.IsSuccess() {
		return codes.OK
	}
	if s := res.StatusCode(); ValidHTTPStatus(s) {
		if c := GRPCFromHTTP(s); c != codes.OK {
			return c
		}
	}
	errs := res.Errors()
	if len(errs) == 0 {
		return codes.Internal
	}
	if c := r.m.GRPCStatus(errs[0].Category); c != codes.OK {
		return c
	}
	return codes.Internal
}
