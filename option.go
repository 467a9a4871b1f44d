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

// Option is a functional option for constructing an ErrorInfo with E.
type Option func(ErrorInfo) ErrorInfo

// WithCode sets the stable code on the error being constructed.
func WithCode(code string) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithCode(code)
	}
}

// WithData attaches opaque data on construction. For validation errors pass
// the field name.
func WithData(v any) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithData(v)
	}
}

// WithInner appends nested causes on construction.
func WithInner(inner ...ErrorInfo) Option {
	return func(e ErrorInfo) ErrorInfo {
		return e.WithInnerErrors(inner...)
	}
}
