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

package problem

import (
	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
)

// ErrorViews serializes an ordered error list, recursing into inner errors.
// It returns nil for an empty list.
func ErrorViews(errs []outcome.ErrorInfo) []apis.ErrorView {
	if len(errs) == 0 {
		return nil
	}
	out := make([]apis.ErrorView, len(errs))
	for i, e := range errs {
		out[i] = ErrorView(e)
	}
	return out
}

// ErrorView serializes a single error and its nested causes.
func ErrorView(e outcome.ErrorInfo) apis.ErrorView {
	v := apis.ErrorView{
		Category: e.Category.Lower(),
		Message:  e.Message,
		Data:     e.Data,
	}
	if e.Code != "" {
		code := e.Code
		v.Code = &code
	}
	if len(e.InnerErrors) > 0 {
		v.InnerErrors = ErrorViews(e.InnerErrors)
	}
	return v
}
