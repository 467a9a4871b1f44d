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

package httpx

import (
	"net/http"

	"github.com/jmgilman/go/errors"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/mapper"
	"dirpx.dev/outcome/problem"
	"dirpx.dev/outcome/response"
)

var (
	// ErrNoBuilder is returned when a Dispatcher is created without a
	// problem builder.
	ErrNoBuilder = errors.New(errors.CodeInvalidConfig, "httpx: problem builder is required")

	// ErrNoResolver is returned when a Dispatcher is created without a
	// status resolver.
	ErrNoResolver = errors.New(errors.CodeInvalidConfig, "httpx: status resolver is required")

	// ErrNoDispatcher is returned when a Handler is created without a
	// Dispatcher.
	ErrNoDispatcher = errors.New(errors.CodeInvalidConfig, "httpx: dispatcher is required")

	// ErrInvalidStatus is returned by Dispatch when the response status lies
	// outside 100..599.
	ErrInvalidStatus = errors.New(errors.CodeInvalidInput, "httpx: response status out of range")
)

// Request is the boundary context a response is dispatched for.
type Request struct {
	// Path becomes the problem "instance" and the fallback 201 location.
	Path string

	// TraceID becomes the problem "traceId" extension.
	TraceID string
}

// Dispatcher selects the response shape for an outcome.
//
// It is immutable and safe for concurrent use.
type Dispatcher struct {
	builder  *problem.Builder
	resolver *mapper.Resolver
}

// NewDispatcher returns a Dispatcher. Both collaborators are required.
func NewDispatcher(b *problem.Builder, r *mapper.Resolver) (*Dispatcher, error) {
	if b == nil {
		return nil, errors.Wrap(ErrNoBuilder, errors.CodeInvalidConfig, "httpx: cannot create dispatcher")
	}
	if r == nil {
		return nil, errors.Wrap(ErrNoResolver, errors.CodeInvalidConfig, "httpx: cannot create dispatcher")
	}
	return &Dispatcher{builder: b, resolver: r}, nil
}

// Builder returns the problem builder.
func (d *Dispatcher) Builder() *problem.Builder { return d.builder }

// Resolver returns the status resolver.
func (d *Dispatcher) Resolver() *mapper.Resolver { return d.resolver }

// Dispatch shapes res into a response written with status.
//
// Failures are delegated to the problem builder and wrapped in a
// ProblemResponse; a zero status then takes the document's status.
// Successes are shaped by status alone:
//
//	200  payload: OK body          no payload: 204 No Content
//	201  payload: Created body     no payload: bare 201
//	204  No Content, payload ignored
//	*    bare status
//
// Only results implementing outcome.Typed can carry a payload. A status
// outside 100..599 is rejected with ErrInvalidStatus.
func (d *Dispatcher) Dispatch(res outcome.Result, status int, req Request) (response.Response, error) {
	if res == nil {
		return nil, errors.Wrap(problem.ErrNilOutcome, errors.CodeInvalidInput, "httpx: cannot dispatch")
	}

	if res.IsFailure() {
		doc, err := d.builder.Build(res, req.Path, req.TraceID)
		if err != nil {
			return nil, err
		}
		if status == 0 {
			status = doc.Status
		}
		if err := checkStatus(status); err != nil {
			return nil, err
		}
		return ProblemResponse{Status: status, Document: doc}, nil
	}

	if err := checkStatus(status); err != nil {
		return nil, err
	}
	shaper, ok := payloadOf(res)
	switch status {
	case http.StatusOK:
		if ok {
			return shaper.OK(), nil
		}
		return response.NoContent{}, nil
	case http.StatusCreated:
		if !ok {
			return response.StatusOnly{Code: http.StatusCreated}, nil
		}
		loc := res.Location()
		if loc == "" {
			loc = req.Path
		}
		return shaper.Created(loc), nil
	case http.StatusNoContent:
		return response.NoContent{}, nil
	default:
		return response.StatusOnly{Code: status}, nil
	}
}

func checkStatus(status int) error {
	if mapper.ValidHTTPStatus(status) {
		return nil
	}
	return errors.Wrapf(ErrInvalidStatus, errors.CodeInvalidInput, "httpx: cannot dispatch status %d", status)
}

func payloadOf(res outcome.Result) (response.Shaper, bool) {
	t, ok := res.(outcome.Typed)
	if !ok {
		return nil, false
	}
	return t.Payload()
}
