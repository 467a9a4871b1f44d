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

package problem

import (
	"bytes"
	"encoding/json"

	"dirpx.dev/outcome/apis"
)

// ContentType is the media type of serialized problem documents.
const ContentType = "application/problem+json"

// Extension names set by the builder.
const (
	TraceIDExtension = "traceId"
	ErrorsExtension  = "zentientErrors"
)

// reserved member names cannot be used as extensions.
var reserved = map[string]struct{}{
	"type": {}, "title": {}, "status": {}, "detail": {}, "instance": {}, "errors": {},
}

// Document is a problem details document.
type Document struct {
	Type     string
	Title    string
	Status   int
	Detail   string
	Instance string

	// Extensions holds additional members in insertion order.
	Extensions Extensions

	// Validation marks a validation-shaped document. When set, FieldErrors
	// is serialized as the "errors" member, even when empty.
	Validation  bool
	FieldErrors []apis.FieldErrors
}

// Field returns the validation messages grouped under key.
func (d *Document) Field(key string) ([]string, bool) {
	for _, g := range d.FieldErrors {
		if g.Key == key {
			return g.Messages, true
		}
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler.
//
// Members are written in a fixed order: type, title, status, detail and
// instance (the last two only when non-empty), then extensions in insertion
// order, then "errors" for validation-shaped documents. Extensions named
// like a standard member are skipped.
func (d *Document) MarshalJSON() ([]byte, error) {
	w := objectWriter{}
	w.member("type", d.Type)
	w.member("title", d.Title)
	w.member("status", d.Status)
	if d.Detail != "" {
		w.member("detail", d.Detail)
	}
	if d.Instance != "" {
		w.member("instance", d.Instance)
	}
	for _, k := range d.Extensions.keys {
		if _, ok := reserved[k]; ok {
			continue
		}
		w.member(k, d.Extensions.values[k])
	}
	if d.Validation {
		w.member("errors", groups(d.FieldErrors))
	}
	return w.close()
}

// groups serializes validation groups as a JSON object preserving order.
type groups []apis.FieldErrors

func (g groups) MarshalJSON() ([]byte, error) {
	w := objectWriter{}
	for _, fe := range g {
		msgs := fe.Messages
		if msgs == nil {
			msgs = []string{}
		}
		w.member(fe.Key, msgs)
	}
	return w.close()
}

// objectWriter writes a JSON object member by member. The first encoding
// error sticks and is reported by close.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (w *objectWriter) member(key string, v any) {
	if w.err != nil {
		return
	}
	kb, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return
	}
	vb, err := json.Marshal(v)
	if err != nil {
		w.err = err
		return
	}
	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	w.buf.Write(kb)
	w.buf.WriteByte(':')
	w.buf.Write(vb)
	w.n++
}

func (w *objectWriter) close() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.n == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

// Extensions is an insertion-ordered set of extension members.
// The zero value is empty and ready to use.
type Extensions struct {
	keys   []string
	values map[string]any
}

// Set adds or replaces an extension. Replacing keeps the original position.
func (x *Extensions) Set(key string, v any) {
	if x.values == nil {
		x.values = make(map[string]any)
	}
	if _, ok := x.values[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.values[key] = v
}

// Get returns the extension stored under key.
func (x *Extensions) Get(key string) (any, bool) {
	v, ok := x.values[key]
	return v, ok
}

// Delete removes an extension.
func (x *Extensions) Delete(key string) {
	if _, ok := x.values[key]; !ok {
		return
	}
	delete(x.values, key)
	for i, k := range x.keys {
		if k == key {
			x.keys = append(x.keys[:i:i], x.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the extension names in insertion order.
func (x *Extensions) Keys() []string {
	return append([]string(nil), x.keys...)
}

// Len returns the number of extensions.
func (x *Extensions) Len() int { return len(x.keys) }
