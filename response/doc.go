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

// Package response defines the success-shaped HTTP responses produced by the
// outcome dispatcher:
//
//   - OK[T]       200 with a JSON body;
//   - Created[T]  201 with a Location header and a JSON body;
//   - NoContent   204 without a body;
//   - StatusOnly  any status without a body.
//
// Body shapes are generic over the payload type. A Shaper captures a payload
// together with its static type so that code holding only a non-generic view
// of an outcome can still build the type-correct body response.
package response
