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

// Package mapper provides deterministic, immutable mappings from failure
// categories (dirpx.dev/outcome/category) to transport-level statuses for
// HTTP and gRPC, and the Resolver that derives the status of an outcome.
//
// # Resolution model
//
// A Mapper resolves a category in the following order:
//
//  1. exact override for the category;
//  2. per-category default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// The zero category is looked up as category.None.
//
// # Library defaults
//
// Validation and Request map to 400, NotFound to 404, Conflict and
// Concurrency to 409, UnprocessableEntity to 422, Authentication and
// Unauthorized to 401, Forbidden and Security to 403, RateLimit to 429,
// Timeout to 408, Network and ServiceUnavailable to 503. Everything else,
// including custom categories, falls back to 500.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(category.Timeout, http.StatusGatewayTimeout),
//	    mapper.WithHTTPDefault("PaymentDeclined", http.StatusPaymentRequired),
//	)
//	if err != nil {
//	    // out-of-range status, etc.
//	}
//	st := m.Status(category.Timeout) // st.HTTP == 504
//
// # Resolving outcomes
//
// Resolver applies a Mapper to an outcome.Result: successes keep their own
// status, failures keep an explicitly declared status and otherwise derive
// one from the category of their first error. An empty error list resolves
// to 500.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction the
// Mapper is safe to share across handlers, goroutines and requests.
package mapper
