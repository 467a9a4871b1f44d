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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmgilman/go/errors"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/mapper"
)

// DefaultBaseURI is used when no base URI is configured. It points at the
// status code section of RFC 9110.
const DefaultBaseURI = "https://tools.ietf.org/html/rfc9110#section-15"

// generalKey groups validation errors that name neither a field nor a code.
const generalKey = "General"

var (
	// ErrSuccessOutcome is returned when a problem document is requested for
	// a successful outcome. This is a caller bug, not a recoverable state.
	ErrSuccessOutcome = errors.New(errors.CodeInvalidInput, "problem: outcome is not a failure")

	// ErrNilOutcome is returned when Build is called without an outcome.
	ErrNilOutcome = errors.New(errors.CodeInvalidInput, "problem: nil outcome")
)

// Customizer adjusts a document before it is returned by Build. It receives
// the outcome the document was built from.
type Customizer func(doc *Document, res outcome.Result)

// Option configures a Builder.
type Option func(*Builder)

// WithBaseURI sets the base URI of problem type links. A blank value selects
// DefaultBaseURI; a trailing "/" is added when missing.
func WithBaseURI(uri string) Option {
	return func(b *Builder) { b.baseURI = normalizeBaseURI(uri) }
}

// WithResolver sets the status resolver. A nil resolver keeps the default.
func WithResolver(r *mapper.Resolver) Option {
	return func(b *Builder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithCustomizer appends a customizer. Customizers run in registration
// order; nil customizers are ignored.
func WithCustomizer(c Customizer) Option {
	return func(b *Builder) {
		if c != nil {
			b.customizers = append(b.customizers, c)
		}
	}
}

// Builder constructs problem documents from failed outcomes.
type Builder struct {
	baseURI     string
	resolver    *mapper.Resolver
	customizers []Customizer
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		baseURI:  normalizeBaseURI(""),
		resolver: mapper.NewResolver(nil),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.customizers = append([]Customizer(nil), b.customizers...)
	return b
}

// BaseURI returns the normalized base URI.
func (b *Builder) BaseURI() string { return b.baseURI }

// Resolver returns the status resolver used by the builder.
func (b *Builder) Resolver() *mapper.Resolver { return b.resolver }

// Build creates the problem document for a failed outcome.
//
// requestPath becomes the "instance" member and traceID the "traceId"
// extension unless a customizer has set them. Building for a successful
// outcome returns ErrSuccessOutcome.
func (b *Builder) Build(res outcome.Result, requestPath, traceID string) (*Document, error) {
	if res == nil {
		return nil, ErrNilOutcome
	}
	if res.IsSuccess() {
		return nil, errors.Wrap(ErrSuccessOutcome, errors.CodeInvalidInput,
			"problem: cannot build a problem document")
	}

	status := b.resolver.Resolve(res)
	errs := res.Errors()
	validation := hasValidation(errs)

	doc := &Document{
		Type:   b.baseURI + typeSuffix(errs, status, validation),
		Title:  res.Description(),
		Status: status,
		Detail: res.ErrorMessage(),
	}
	if strings.TrimSpace(doc.Title) == "" {
		doc.Title = fmt.Sprintf("HTTP %d Error", status)
	}
	if strings.TrimSpace(doc.Detail) == "" {
		doc.Detail = fmt.Sprintf("An error occurred with status code %d.", status)
	}

	if validation || status == http.StatusUnprocessableEntity {
		doc.Validation = true
		doc.FieldErrors = groupValidation(errs)
	}

	doc.Extensions.Set(TraceIDExtension, traceID)
	if len(errs) > 0 {
		doc.Extensions.Set(ErrorsExtension, ErrorViews(errs))
	}

	for _, c := range b.customizers {
		c(doc, res)
	}

	if doc.Instance == "" {
		doc.Instance = requestPath
	}
	if _, ok := doc.Extensions.Get(TraceIDExtension); !ok {
		doc.Extensions.Set(TraceIDExtension, traceID)
	}
	return doc, nil
}

// normalizeBaseURI substitutes DefaultBaseURI for blank input and ensures a
// trailing "/".
func normalizeBaseURI(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		uri = DefaultBaseURI
	}
	if !strings.HasSuffix(uri, "/") {
		uri += "/"
	}
	return uri
}

// typeSuffix picks the type URI suffix. Only the first error is consulted
// unless a validation error is present anywhere.
func typeSuffix(errs []outcome.ErrorInfo, status int, validation bool) string {
	if validation {
		return "validation"
	}
	if len(errs) > 0 {
		first := errs[0]
		if s := slug(first.Code); s != "" {
			return s
		}
		if first.Category.IsDefined() {
			if s := slug(string(first.Category)); s != "" {
				return s
			}
		}
	}
	return strconv.Itoa(status)
}

// slug lower-cases s and keeps only ASCII letters and digits.
func slug(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func hasValidation(errs []outcome.ErrorInfo) bool {
	for _, e := range errs {
		if e.Category == category.Validation {
			return true
		}
	}
	return false
}

// groupValidation collects Validation messages per key in first-seen order.
func groupValidation(errs []outcome.ErrorInfo) []apis.FieldErrors {
	var out []apis.FieldErrors
	index := make(map[string]int)
	for _, e := range errs {
		if e.Category != category.Validation {
			continue
		}
		key := groupKey(e)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, apis.FieldErrors{Key: key})
		}
		out[i].Messages = append(out[i].Messages, e.Message)
	}
	return out
}

func groupKey(e outcome.ErrorInfo) string {
	if s, ok := e.Data.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	if strings.TrimSpace(e.Code) != "" {
		return e.Code
	}
	return generalKey
}
