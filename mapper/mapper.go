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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"google.golang.org/grpc/codes"
)

var (
	// ErrInvalidStatus is returned by New when a rule carries an HTTP status
	// outside 100..599 or a gRPC code outside the canonical 0..16 range.
	ErrInvalidStatus = errors.New("mapper: invalid status")
)

// maxGRPCCode is the highest canonical gRPC status code (Unauthenticated).
const maxGRPCCode = int(codes.Unauthenticated)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallback).
//  3. Validate every status value.
//  4. Freeze all maps into fresh copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	if err := validHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	for _, src := range []map[category.Category]int{b.httpDefaults, b.httpOverride} {
		for c, v := range src {
			if err := validHTTP(v); err != nil {
				return nil, fmt.Errorf("mapper: HTTP rule for category %q: %w", c, err)
			}
		}
	}
	for _, src := range []map[category.Category]int{b.grpcDefaults, b.grpcOverride} {
		for c, v := range src {
			if v < 0 || v > maxGRPCCode {
				return nil, fmt.Errorf("mapper: gRPC rule for category %q: %w: %d", c, ErrInvalidStatus, v)
			}
		}
	}

	// (4) Freeze into a read-only snapshot.
	return &mapper{
		httpDefault:  freeze(b.httpDefaults, identity),
		grpcDefault:  freeze(b.grpcDefaults, toGRPC),
		httpOverride: freeze(b.httpOverride, identity),
		grpcOverride: freeze(b.grpcOverride, toGRPC),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = MustNew()

// Default returns the shared mapper built from library defaults only.
func Default() apis.Mapper { return defaultMapper }

// mapper combines per-category defaults and exact overrides. Lookups are
// O(1) and safe for concurrent use once constructed.
type mapper struct {
	httpDefault  map[category.Category]int
	grpcDefault  map[category.Category]codes.Code
	httpOverride map[category.Category]int
	grpcOverride map[category.Category]codes.Code

	// fallbackHTTP / fallbackGRPC apply when a category has no rule.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given category.
//
// Resolution order: override, default, fallback.
func (m *mapper) HTTPStatus(c category.Category) int {
	c = canonical(c)
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given category using the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c category.Category) codes.Code {
	c = canonical(c)
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for one category.
func (m *mapper) Status(c category.Category) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a category.
//
// Example output:
//
//	category="Timeout"
//	http: source=override -> 504
//	grpc: source=default -> DEADLINEEXCEEDED(4)
//
// source is one of override, default or fallback. The output is meant for
// inspection and logging, not for machine parsing.
func (m *mapper) Explain(c category.Category) string {
	c = canonical(c)
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "category=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *mapper) explainHTTP(c category.Category) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(c category.Category) string {
	if v, ok := m.grpcOverride[c]; ok {
		return "grpc: source=override -> " + grpcName(v)
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "grpc: source=default -> " + grpcName(v)
	}
	return "grpc: source=fallback -> " + grpcName(m.fallbackGRPC)
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

// canonical maps the zero category onto None.
func canonical(c category.Category) category.Category {
	if c == "" {
		return category.None
	}
	return c
}

// ValidHTTPStatus reports whether status is within 100..599, the range
// net/http accepts for WriteHeader.
func ValidHTTPStatus(status int) bool {
	return status >= 100 && status <= 599
}

func validHTTP(v int) error {
	if !ValidHTTPStatus(v) {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, v)
	}
	return nil
}

func identity(v int) int { return v }

func toGRPC(v int) codes.Code { return codes.Code(v) }

// freeze copies src into a fresh map, converting values with conv. Empty
// maps freeze to nil.
func freeze[V any](src map[category.Category]int, conv func(int) V) map[category.Category]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[category.Category]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}
