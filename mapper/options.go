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
	"dirpx.dev/outcome/category"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for the given
// category. Use it to give custom categories a status.
func WithHTTPDefault(c category.Category, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for the given
// category.
func WithGRPCDefault(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given category.
// Overrides take precedence over defaults.
func WithHTTPOverride(c category.Category, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given category.
func WithGRPCOverride(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithFallbackHTTP replaces the HTTP status used for categories that have
// no rule at all.
func WithFallbackHTTP(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}
