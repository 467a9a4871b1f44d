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
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/internal/traceparent"
	"dirpx.dev/outcome/problem"
)

// DefaultTraceHeader is the request header consulted for a trace id when no
// W3C traceparent header is present.
const DefaultTraceHeader = "X-Request-ID"

// internalDetail is the detail of problem documents written when the
// translation itself fails.
const internalDetail = "An internal error occurred while producing the response."

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTraceHeader sets the request header a trace id is read from when no
// traceparent is present. A blank name keeps DefaultTraceHeader.
func WithTraceHeader(name string) HandlerOption {
	return func(h *Handler) {
		if name = strings.TrimSpace(name); name != "" {
			h.traceHeader = name
		}
	}
}

// Handler writes outcomes as HTTP responses.
type Handler struct {
	d           *Dispatcher
	fallback    *problem.Builder
	logger      *slog.Logger
	traceHeader string
}

// NewHandler returns a Handler backed by d.
func NewHandler(d *Dispatcher, opts ...HandlerOption) (*Handler, error) {
	if d == nil {
		return nil, errors.Wrap(ErrNoDispatcher, errors.CodeInvalidConfig, "httpx: cannot create handler")
	}
	h := &Handler{
		d: d,
		// customizers are left out so the fallback document always encodes
		fallback: problem.NewBuilder(
			problem.WithBaseURI(d.builder.BaseURI()),
			problem.WithResolver(d.resolver),
		),
		logger:      slog.Default(),
		traceHeader: DefaultTraceHeader,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Wrap adapts an outcome-producing endpoint to http.Handler. Panics in fn
// are logged and answered with a 500 problem document; http.ErrAbortHandler
// is re-raised.
func (h *Handler) Wrap(fn func(*http.Request) outcome.Result) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			trace := h.TraceID(req)
			h.logger.ErrorContext(req.Context(), "endpoint panicked",
				"path", req.URL.Path, "trace_id", trace, "panic", fmt.Sprint(rec))
			h.writeInternal(rw, req, trace)
		}()
		h.Write(rw, req, fn(req))
	})
}

// Write resolves the status of res and writes the matching response.
func (h *Handler) Write(rw http.ResponseWriter, req *http.Request, res outcome.Result) {
	trace := h.TraceID(req)
	status := h.d.resolver.Resolve(res)

	resp, err := h.d.Dispatch(res, status, Request{Path: req.URL.Path, TraceID: trace})
	if err != nil {
		h.logger.ErrorContext(req.Context(), "outcome translation failed",
			"path", req.URL.Path, "trace_id", trace, "err", err)
		h.writeInternal(rw, req, trace)
		return
	}

	if err := resp.Write(rw); err != nil {
		h.logger.WarnContext(req.Context(), "response write failed",
			"path", req.URL.Path, "trace_id", trace, "status", resp.StatusCode(), "err", err)
		// encoding errors happen before anything reaches rw
		if errors.GetCode(err) == errors.CodeInternal {
			h.writeInternal(rw, req, trace)
		}
	}
}

// TraceID returns the trace id of req: the trace-id field of a valid W3C
// traceparent header, else the configured request id header, else a new
// random UUID.
func (h *Handler) TraceID(req *http.Request) string {
	if id, ok := traceparent.TraceID(req.Header.Get("traceparent")); ok {
		return id
	}
	if id := strings.TrimSpace(req.Header.Get(h.traceHeader)); id != "" {
		return id
	}
	return uuid.NewString()
}

func (h *Handler) writeInternal(rw http.ResponseWriter, req *http.Request, trace string) {
	res := outcome.Fail[struct{}](outcome.Internal(internalDetail))
	doc, err := h.fallback.Build(res, req.URL.Path, trace)
	if err == nil {
		err = ProblemResponse{Status: doc.Status, Document: doc}.Write(rw)
	}
	if err != nil {
		h.logger.ErrorContext(req.Context(), "fallback problem write failed",
			"path", req.URL.Path, "trace_id", trace, "err", err)
	}
}
