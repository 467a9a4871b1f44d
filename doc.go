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

// Package outcome defines the value types that application code hands to the
// outcome translation engine at a request boundary.
//
// An Outcome is a tagged union: either a success carrying an optional payload
// of type T, or a failure carrying an ordered list of ErrorInfo values. The
// engine (packages mapper, problem, httpx and grpcx) only relies on the
// non-generic Result and Typed contracts, so endpoints with heterogeneous
// payload types can share one dispatcher.
//
// Usage:
//
//	func getProduct(id int) outcome.Outcome[Product] {
//	    if id <= 0 {
//	        return outcome.Fail[Product](outcome.Validation("id", "Product ID must be positive."))
//	    }
//	    p, ok := store[id]
//	    if !ok {
//	        return outcome.Fail[Product](outcome.NotFound("PRODUCT_NOT_FOUND",
//	            fmt.Sprintf("Product %d not found.", id)))
//	    }
//	    return outcome.Success(p)
//	}
//
// Both ErrorInfo and Outcome are immutable values; every WithX helper returns
// a copy, so they can be shared across goroutines freely.
package outcome
