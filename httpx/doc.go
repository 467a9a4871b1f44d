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

// Package httpx projects outcomes onto net/http.
//
// A Dispatcher turns a Result and a resolved status into a response.Response:
// failures become problem+json documents, successes become one of the success
// shapes chosen by status and payload presence. Handler is the request
// boundary that resolves the status, derives a trace id and writes the
// response, converting any contract violation into a 500 problem document.
//
//	d, _ := httpx.NewDispatcher(problem.NewBuilder(), mapper.NewResolver(nil))
//	h, _ := httpx.NewHandler(d, httpx.WithLogger(logger))
//	mux.Handle("GET /products/{id}", h.Wrap(getProduct))
package httpx
