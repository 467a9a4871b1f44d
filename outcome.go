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

package outcome

import (
	"net/http"
	"reflect"
	"strings"

	"dirpx.dev/outcome/response"
)

// Result is the non-generic view of an outcome that the translation engine
// is written against.
//
// IsSuccess and IsFailure are mutually exclusive and exhaustive.
type Result interface {
	// IsSuccess reports whether the outcome is a success.
	IsSuccess() bool

	// IsFailure reports whether the outcome is a failure.
	IsFailure() bool

	// StatusCode returns the declared HTTP status. Successes always declare
	// one (200 unless set otherwise). Failures return 0 when the status was
	// not set explicitly and must be derived from the errors.
	StatusCode() int

	// Description returns the human description of the status, if any.
	Description() string

	// Errors returns a copy of the ordered failure causes. It is empty for
	// successes and may be empty for failures.
	Errors() []ErrorInfo

	// ErrorMessage returns the primary human-readable error string: the
	// first non-blank error message, or "" when there is none.
	ErrorMessage() string

	// Location returns the location of a created resource, if one was set.
	Location() string
}

// Typed is implemented by outcomes that carry a typed success payload.
//
// It lets code that only sees a Result build type-correct body responses:
// Payload returns a Shaper instantiated with the outcome's own type
// parameter.
type Typed interface {
	Result

	// HasPayload reports whether a success payload is present.
	HasPayload() bool

	// Payload returns the payload shaper, or false when there is no payload
	// (including every failure).
	Payload() (response.Shaper, bool)
}

// Outcome is either a success carrying an optional value of type T or a
// failure carrying an ordered list of errors.
//
// The zero value is a successful 200 outcome without a payload.
type Outcome[T any] struct {
	failed      bool
	value       T
	hasValue    bool
	status      int
	description string
	location    string
	errs        []ErrorInfo
}

var (
	_ Typed = Outcome[struct{}]{}
	_ Typed = Outcome[*int]{}
)

// Success returns a 200 outcome carrying v. A nil pointer, map, slice,
// channel, function or interface counts as no payload.
func Success[T any](v T) Outcome[T] {
	return SuccessStatus(v, http.StatusOK)
}

// SuccessStatus returns a success carrying v with an explicit status.
func SuccessStatus[T any](v T, status int) Outcome[T] {
	return Outcome[T]{value: v, hasValue: !isNil(v), status: status}
}

// Created returns a 201 outcome carrying v. An empty location lets the
// boundary fall back to the request path.
func Created[T any](v T, location string) Outcome[T] {
	o := SuccessStatus(v, http.StatusCreated)
	o.location = location
	return o
}

// Empty returns a 200 success without a payload.
func Empty[T any]() Outcome[T] {
	return Outcome[T]{status: http.StatusOK}
}

// NoContent returns a 204 success without a payload.
func NoContent[T any]() Outcome[T] {
	return Outcome[T]{status: http.StatusNoContent}
}

// Fail returns a failure whose status is derived from the first error.
func Fail[T any](errs ...ErrorInfo) Outcome[T] {
	return Outcome[T]{failed: true, errs: cloneAll(errs)}
}

// FailStatus returns a failure with an explicit status and description.
// A zero status means "derive from the errors".
func FailStatus[T any](status int, description string, errs ...ErrorInfo) Outcome[T] {
	return Outcome[T]{failed: true, status: status, description: description, errs: cloneAll(errs)}
}

// FromFailure re-types a failed Result as an Outcome[T]. It reports false
// when r is nil or not a failure.
func FromFailure[T any](r Result) (Outcome[T], bool) {
	if r == nil || !r.IsFailure() {
		return Outcome[T]{}, false
	}
	return Outcome[T]{
		failed:      true,
		status:      r.StatusCode(),
		description: r.Description(),
		errs:        r.Errors(),
	}, true
}

// IsSuccess implements Result.
func (o Outcome[T]) IsSuccess() bool { return !o.failed }

// IsFailure implements Result.
func (o Outcome[T]) IsFailure() bool { return o.failed }

// StatusCode implements Result.
func (o Outcome[T]) StatusCode() int {
	if !o.failed && o.status == 0 {
		return http.StatusOK
	}
	return o.status
}

// Description implements Result.
func (o Outcome[T]) Description() string { return o.description }

// Location implements Result.
func (o Outcome[T]) Location() string { return o.location }

// Errors implements Result.
func (o Outcome[T]) Errors() []ErrorInfo { return cloneAll(o.errs) }

// ErrorMessage implements Result.
func (o Outcome[T]) ErrorMessage() string {
	for _, e := range o.errs {
		if strings.TrimSpace(e.Message) != "" {
			return e.Message
		}
	}
	return ""
}

// Value returns the payload and whether one is present.
func (o Outcome[T]) Value() (T, bool) {
	if o.failed || !o.hasValue {
		var zero T
		return zero, false
	}
	return o.value, true
}

// HasPayload implements Typed.
func (o Outcome[T]) HasPayload() bool { return !o.failed && o.hasValue }

// Payload implements Typed.
func (o Outcome[T]) Payload() (response.Shaper, bool) {
	if !o.HasPayload() {
		return nil, false
	}
	return response.Of(o.value), true
}

// WithDescription returns a copy of o with the given description.
func (o Outcome[T]) WithDescription(desc string) Outcome[T] {
	cp := o
	cp.errs = cloneAll(o.errs)
	cp.description = desc
	return cp
}

// WithLocation returns a copy of o with the given created-resource location.
func (o Outcome[T]) WithLocation(loc string) Outcome[T] {
	cp := o
	cp.errs = cloneAll(o.errs)
	cp.location = loc
	return cp
}

// isNil reports whether v is nil or a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
