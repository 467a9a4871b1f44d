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

package category

import "strings"

// Built-in categories.
//
// The HTTP status noted on each constant is the library default applied by
// package mapper; services can override it there.
const (
	// None marks an error that carries no classification. Resolves to 500.
	None Category = "None"

	// General is a catch-all for failures that fit no other category. Resolves to 500.
	General Category = "General"

	// Validation reports input that violates a structural or semantic rule.
	// Errors of this category are grouped per field in problem documents.
	// Resolves to 400.
	Validation Category = "Validation"

	// Request reports a malformed or unacceptable request that is not tied to
	// a particular field. Resolves to 400.
	Request Category = "Request"

	// NotFound reports a missing target resource. Resolves to 404.
	NotFound Category = "NotFound"

	// Conflict reports a clash with the current state of a resource. Resolves to 409.
	Conflict Category = "Conflict"

	// Concurrency reports an optimistic-lock or version mismatch. Resolves to 409.
	Concurrency Category = "Concurrency"

	// UnprocessableEntity reports a well-formed request whose content cannot
	// be processed. Resolves to 422.
	UnprocessableEntity Category = "UnprocessableEntity"

	// Authentication reports missing or invalid credentials. Resolves to 401.
	Authentication Category = "Authentication"

	// Unauthorized is an alias-like sibling of Authentication. Resolves to 401.
	Unauthorized Category = "Unauthorized"

	// Forbidden reports an authenticated caller lacking permission. Resolves to 403.
	Forbidden Category = "Forbidden"

	// Security reports a policy or security rule rejecting the call. Resolves to 403.
	Security Category = "Security"

	// RateLimit reports a caller exceeding a rate or quota. Resolves to 429.
	RateLimit Category = "RateLimit"

	// Timeout reports an operation exceeding its time budget. Resolves to 408.
	Timeout Category = "Timeout"

	// Network reports an unreachable dependency. Resolves to 503.
	Network Category = "Network"

	// ServiceUnavailable reports a service that cannot take work right now. Resolves to 503.
	ServiceUnavailable Category = "ServiceUnavailable"

	// Database reports a storage failure. Resolves to 500.
	Database Category = "Database"

	// Exception reports an unexpected fault captured as data. Resolves to 500.
	Exception Category = "Exception"

	// InternalServerError reports a generic server-side failure. Resolves to 500.
	InternalServerError Category = "InternalServerError"
)

// builtins is the ordered set of categories shipped with the package.
var builtins = []Category{
	None,
	General,
	Validation,
	Request,
	NotFound,
	Conflict,
	Concurrency,
	UnprocessableEntity,
	Authentication,
	Unauthorized,
	Forbidden,
	Security,
	RateLimit,
	Timeout,
	Network,
	ServiceUnavailable,
	Database,
	Exception,
	InternalServerError,
}

// lookup indexes builtins by lower-cased name.
var lookup = func() map[string]Category {
	m := make(map[string]Category, len(builtins))
	for _, c := range builtins {
		m[strings.ToLower(string(c))] = c
	}
	return m
}()

// Builtins returns a copy of the built-in categories in declaration order.
func Builtins() []Category {
	out := make([]Category, len(builtins))
	copy(out, builtins)
	return out
}
