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

package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jmgilman/go/errors"

	"dirpx.dev/outcome/problem"
)

// RetryAfterExtension names a problem extension that, when set by a
// customizer to a positive number of seconds, is echoed as Retry-After.
const RetryAfterExtension = "retryAfter"

// ProblemResponse is an application/problem+json error response.
type ProblemResponse struct {
	Status   int
	Document *problem.Document
}

// StatusCode implements response.Response.
func (r ProblemResponse) StatusCode() int { return r.Status }

// Body implements response.Response.
func (r ProblemResponse) Body() (any, bool) { return r.Document, r.Document != nil }

// Write implements response.Response. The document is encoded before any
// header is written.
func (r ProblemResponse) Write(rw http.ResponseWriter) error {
	b, err := json.Marshal(r.Document)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "httpx: encode problem document")
	}

	h := rw.Header()
	h.Set("Content-Type", problem.ContentType)
	if s := retryAfter(r.Document); s != "" {
		h.Set("Retry-After", s)
	}
	rw.WriteHeader(r.Status)
	_, err = rw.Write(b)
	return err
}

func retryAfter(doc *problem.Document) string {
	if doc == nil {
		return ""
	}
	v, ok := doc.Extensions.Get(RetryAfterExtension)
	if !ok {
		return ""
	}
	switch n := v.(type) {
	case int:
		if n > 0 {
			return strconv.Itoa(n)
		}
	case int32:
		if n > 0 {
			return strconv.Itoa(int(n))
		}
	case int64:
		if n > 0 {
			return strconv.FormatInt(n, 10)
		}
	}
	return ""
}
