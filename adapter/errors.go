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

package adapter

import (
	"context"

	"github.com/jmgilman/go/errors"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
)

// platformCategories maps platform error codes onto categories. Codes not
// listed here are internal errors.
var platformCategories = map[errors.ErrorCode]category.Category{
	errors.CodeNotFound:      category.NotFound,
	errors.CodeInvalidInput:  category.Validation,
	errors.CodeSchemaFailed:  category.Validation,
	errors.CodeUnauthorized:  category.Unauthorized,
	errors.CodeForbidden:     category.Forbidden,
	errors.CodeConflict:      category.Conflict,
	errors.CodeAlreadyExists: category.Conflict,
	errors.CodeTimeout:       category.Timeout,
	errors.CodeNetwork:       category.Network,
	errors.CodeUnavailable:   category.ServiceUnavailable,
	errors.CodeRateLimit:     category.RateLimit,
	errors.CodeDatabase:      category.Database,
}

// FromError classifies a Go error as an ErrorInfo.
//
// Resolution order: an ErrorInfo anywhere in the chain is returned as is;
// then errors exposing a category (apis.CategorizedError, with an optional
// apis.CodedError code); then platform errors, by code, keeping the code and
// any attached context as data; then context deadline and cancellation.
// Everything else is an internal server error carrying err.Error().
//
// A nil error yields the zero ErrorInfo.
func FromError(err error) outcome.ErrorInfo {
	if err == nil {
		return outcome.ErrorInfo{}
	}

	var info outcome.ErrorInfo
	if errors.As(err, &info) {
		return info
	}

	var ce apis.CategorizedError
	if errors.As(err, &ce) {
		e := outcome.E(ce.ErrorCategory(), err.Error())
		if cc, ok := ce.(apis.CodedError); ok {
			e.Code = cc.ErrorCode()
		}
		return e
	}

	var pe errors.PlatformError
	if errors.As(err, &pe) {
		c, ok := platformCategories[pe.Code()]
		if !ok {
			c = category.InternalServerError
		}
		e := outcome.E(c, pe.Message(), outcome.WithCode(string(pe.Code())))
		if ctx := pe.Context(); len(ctx) > 0 {
			e.Data = ctx
		}
		return e
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return outcome.E(category.Timeout, err.Error())
	case errors.Is(err, context.Canceled):
		return outcome.E(category.Request, err.Error())
	}
	return outcome.Internal(err.Error())
}

// FailureFrom returns a failure carrying the classification of err. The
// status is derived from the resulting category. A nil err yields a failure
// without errors, which resolves to 500.
func FailureFrom[T any](err error) outcome.Outcome[T] {
	if err == nil {
		return outcome.Fail[T]()
	}
	return outcome.Fail[T](FromError(err))
}
