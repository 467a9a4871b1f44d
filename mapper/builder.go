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
	"net/http"

	"dirpx.dev/outcome/category"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpDefaults holds per-category HTTP defaults, seeded from the library table.
	httpDefaults map[category.Category]int
	// grpcDefaults holds per-category gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[category.Category]int

	// httpOverride holds exact per-category HTTP overrides (higher than defaults).
	httpOverride map[category.Category]int
	// grpcOverride holds exact per-category gRPC overrides as ints.
	grpcOverride map[category.Category]int

	// global fallbacks used when a category has no rule at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized to hold the
// built-in defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[category.Category]int, len(defaultHTTP)),
		grpcDefaults: make(map[category.Category]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[category.Category]int),
		grpcOverride: make(map[category.Category]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
