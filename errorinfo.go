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
	"fmt"

	"dirpx.dev/outcome/category"
)

// ErrorInfo describes one failure cause.
//
// It carries:
//   - Category: the classification that drives status inference (required);
//   - Code: optional stable short identifier, e.g. "PRODUCT_NOT_FOUND";
//   - Message: human-oriented description of what went wrong;
//   - Data: optional opaque value; for validation errors a string here names
//     the offending field;
//   - InnerErrors: ordered nested causes, possibly empty.
//
// ErrorInfo is a value type. All WithX helpers return a copy and never share
// the InnerErrors backing array with the receiver.
type ErrorInfo struct {
	Category    category.Category
	Code        string
	Message     string
	Data        any
	InnerErrors []ErrorInfo
}

// E is a convenience constructor for ErrorInfo.
//
// Usage:
//
//	return outcome.E(category.Conflict, "order already shipped",
//	    outcome.WithCode("ORDER_SHIPPED"),
//	    outcome.WithData(orderID),
//	)
func E(c category.Category, msg string, opts ...Option) ErrorInfo {
	e := ErrorInfo{Category: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Validation builds a Validation error for the given field.
func Validation(field, msg string) ErrorInfo {
	e := ErrorInfo{Category: category.Validation, Message: msg}
	if field != "" {
		e.Data = field
	}
	return e
}

// NotFound builds a NotFound error with the given code.
func NotFound(code, msg string) ErrorInfo {
	return ErrorInfo{Category: category.NotFound, Code: code, Message: msg}
}

// Conflict builds a Conflict error with the given code.
func Conflict(code, msg string) ErrorInfo {
	return ErrorInfo{Category: category.Conflict, Code: code, Message: msg}
}

// Unauthorized builds an Unauthorized error.
func Unauthorized(msg string) ErrorInfo {
	return ErrorInfo{Category: category.Unauthorized, Message: msg}
}

// Forbidden builds a Forbidden error.
func Forbidden(msg string) ErrorInfo {
	return ErrorInfo{Category: category.Forbidden, Message: msg}
}

// Internal builds an InternalServerError error.
func Internal(msg string) ErrorInfo {
	return ErrorInfo{Category: category.InternalServerError, Message: msg}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<category>: <message>
//
// or, when Code is present:
//
//	<category>:<code>: <message>
func (e ErrorInfo) Error() string {
	c := e.Category
	if c == "" {
		c = category.None
	}
	if e.Code != "" {
		return fmt.Sprintf("%s:%s: %s", c, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", c, e.Message)
}

// HasInnerErrors reports whether e carries nested causes.
func (e ErrorInfo) HasInnerErrors() bool { return len(e.InnerErrors) > 0 }

// WithCode returns a copy of e with the given code.
func (e ErrorInfo) WithCode(code string) ErrorInfo {
	cp := e.clone()
	cp.Code = code
	return cp
}

// WithMessage returns a copy of e with a replaced human message.
func (e ErrorInfo) WithMessage(msg string) ErrorInfo {
	cp := e.clone()
	cp.Message = msg
	return cp
}

// WithData returns a copy of e with the given data attached.
func (e ErrorInfo) WithData(v any) ErrorInfo {
	cp := e.clone()
	cp.Data = v
	return cp
}

// WithInnerErrors returns a copy of e with inner appended to its nested
// causes. The receiver's slice is never modified.
func (e ErrorInfo) WithInnerErrors(inner ...ErrorInfo) ErrorInfo {
	if len(inner) == 0 {
		return e
	}
	cp := e.clone()
	m := make([]ErrorInfo, 0, len(e.InnerErrors)+len(inner))
	m = append(m, e.InnerErrors...)
	m = append(m, inner...)
	cp.InnerErrors = m
	return cp
}

// clone returns a copy that does not share the InnerErrors backing array.
func (e ErrorInfo) clone() ErrorInfo {
	cp := e
	if len(e.InnerErrors) > 0 {
		cp.InnerErrors = append([]ErrorInfo(nil), e.InnerErrors...)
	}
	return cp
}

// cloneAll copies a list of errors.
func cloneAll(errs []ErrorInfo) []ErrorInfo {
	if len(errs) == 0 {
		return nil
	}
	out := make([]ErrorInfo, len(errs))
	for i, e := range errs {
		out[i] = e.clone()
	}
	return out
}

// ErrorCategory implements apis.CategorizedError.
func (e ErrorInfo) ErrorCategory() category.Category { return e.Category }

// ErrorCode implements apis.CodedError.
func (e ErrorInfo) ErrorCode() string { return e.Code }
