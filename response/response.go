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

package response

import (
	"encoding/json"
	"net/http"

	"github.com/jmgilman/go/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ContentTypeJSON is the media type of success bodies.
const ContentTypeJSON = "application/json"

// Response is a fully shaped HTTP response ready to be written.
type Response interface {
	// StatusCode returns the HTTP status the response is written with.
	StatusCode() int

	// Body returns the payload carried by the response, if any.
	Body() (any, bool)

	// Write emits headers, status and body. The body is encoded before the
	// status line is written, so an encoding error leaves rw untouched.
	Write(rw http.ResponseWriter) error
}

// OK is a 200 response carrying a body of type T.
type OK[T any] struct {
	Value T
}

// StatusCode implements Response.
func (OK[T]) StatusCode() int { return http.StatusOK }

// Body implements Response.
func (r OK[T]) Body() (any, bool) { return r.Value, true }

// Write implements Response.
func (r OK[T]) Write(rw http.ResponseWriter) error {
	return writeBody(rw, http.StatusOK, r.Value)
}

// Created is a 201 response carrying a Location header and a body of type T.
type Created[T any] struct {
	Location string
	Value    T
}

// StatusCode implements Response.
func (Created[T]) StatusCode() int { return http.StatusCreated }

// Body implements Response.
func (r Created[T]) Body() (any, bool) { return r.Value, true }

// Write implements Response.
func (r Created[T]) Write(rw http.ResponseWriter) error {
	if r.Location != "" {
		rw.Header().Set("Location", r.Location)
	}
	return writeBody(rw, http.StatusCreated, r.Value)
}

// NoContent is a 204 response.
type NoContent struct{}

// StatusCode implements Response.
func (NoContent) StatusCode() int { return http.StatusNoContent }

// Body implements Response.
func (NoContent) Body() (any, bool) { return nil, false }

// Write implements Response.
func (NoContent) Write(rw http.ResponseWriter) error {
	rw.WriteHeader(http.StatusNoContent)
	return nil
}

// StatusOnly is a bare status response without a body.
type StatusOnly struct {
	Code int
}

// StatusCode implements Response.
func (r StatusOnly) StatusCode() int { return r.Code }

// Body implements Response.
func (StatusOnly) Body() (any, bool) { return nil, false }

// Write implements Response.
func (r StatusOnly) Write(rw http.ResponseWriter) error {
	rw.WriteHeader(r.Code)
	return nil
}

// Encode serializes a payload. Protobuf messages go through protojson so
// json_name mappings and well-known types are honored; everything else uses
// encoding/json.
func Encode(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		b, err := protojson.Marshal(m)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "response: encode protobuf body")
		}
		return b, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "response: encode json body")
	}
	return b, nil
}

func writeBody(rw http.ResponseWriter, status int, v any) error {
	b, err := Encode(v)
	if err != nil {
		return err
	}
	rw.Header().Set("Content-Type", ContentTypeJSON)
	rw.WriteHeader(status)
	_, err = rw.Write(b)
	return err
}
