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

// Package problem builds RFC 9457 ("problem details") documents from failed
// outcomes.
//
// # Document shape
//
//	{"type":"<base>/<suffix>","title":"...","status":404,"detail":"...",
//	 "instance":"/products/99","traceId":"...",
//	 "zentientErrors":[{"category":"notfound","code":"PRODUCT_NOT_FOUND",
//	                    "message":"...","innerErrors":[...]}],
//	 "errors":{"id":["..."]}}
//
// The "errors" member is only present on validation-shaped documents, i.e.
// when any error is categorized as Validation or the resolved status is 422.
// It groups the messages of Validation errors by field (the error's data when
// it is a non-blank string), then by code, then under "General".
//
// # Type URIs
//
// The type is the configured base URI followed by a stable suffix:
// "validation" for validation failures, otherwise the slug of the first
// error's code, otherwise the slug of its category, otherwise the numeric
// status. Slugs keep only lower-cased ASCII letters and digits, so
// "PRODUCT_NOT_FOUND" becomes "productnotfound".
//
// # Customization
//
// Customizers registered with WithCustomizer run in registration order after
// the document is assembled. Afterwards the builder only fills "instance"
// and "traceId" if the customizers left them empty.
//
// A Builder is immutable after NewBuilder and safe for concurrent use; each
// Build call returns a fresh Document owned by the caller.
package problem
