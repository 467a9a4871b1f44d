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

// ErrorView is the serialized form of one failure cause inside a problem
// document's "zentientErrors" extension.
//
// It mirrors outcome.ErrorInfo with wire-friendly types: the category is
// lower-cased, a blank code is encoded as null, and data/innerErrors are
// omitted when absent.
type ErrorView struct {
	Category    string      `json:"category"`
	Code        *string     `json:"code"`
	Message     string      `json:"message"`
	Data        any         `json:"data,omitempty"`
	InnerErrors []ErrorView `json:"innerErrors,omitempty"`
}

// FieldErrors is one validation group: the messages collected under a single
// field, code or the literal "General" key, in input order.
type FieldErrors struct {
	Key      string
	Messages []string
}
