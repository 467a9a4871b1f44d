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

package apis

import "dirpx.dev/outcome/category"

// CategorizedError is an error that classifies itself into a category.
//
// Boundary adapters use it to turn arbitrary Go errors returned by handlers
// into failure outcomes without knowing the concrete error type.
type CategorizedError interface {
	error

	// ErrorCategory returns the failure category. An empty value is treated
	// as category.None.
	ErrorCategory() category.Category
}

// CodedError is an error that exposes a stable, machine-readable code in
// addition to its category, e.g. "PRODUCT_NOT_FOUND".
type CodedError interface {
	error

	// ErrorCode returns the code. It MAY be empty.
	ErrorCode() string
}
