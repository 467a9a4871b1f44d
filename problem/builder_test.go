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
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/mapper"
)

const base = "https://errors.example.com/problems/"

func TestBuild_NotFound(t *testing.T) {
	b := NewBuilder(WithBaseURI(base))
	res := outcome.Fail[int](outcome.NotFound("PRODUCT_NOT_FOUND", "Product 99 not found."))

	doc, err := b.Build(res, "/products/99", "trace-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, doc.Status)
	assert.True(t, strings.HasSuffix(doc.Type, "/productnotfound"), doc.Type)
	assert.Equal(t, base+"productnotfound", doc.Type)
	assert.Equal(t, "Product 99 not found.", doc.Detail)
	assert.Equal(t, "HTTP 404 Error", doc.Title)
	assert.Equal(t, "/products/99", doc.Instance)
	assert.False(t, doc.Validation)

	trace, ok := doc.Extensions.Get(TraceIDExtension)
	require.True(t, ok)
	assert.Equal(t, "trace-1", trace)
}

func TestBuild_Validation(t *testing.T) {
	b := NewBuilder(WithBaseURI(base))
	res := outcome.Fail[int](outcome.Validation("id", "Product ID must be positive."))

	doc, err := b.Build(res, "/products/-1", "t")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, doc.Status)
	assert.True(t, strings.HasSuffix(doc.Type, "/validation"), doc.Type)
	require.True(t, doc.Validation)
	assert.Equal(t, []apis.FieldErrors{{Key: "id", Messages: []string{"Product ID must be positive."}}}, doc.FieldErrors)
}

func TestBuild_EmptyFailure(t *testing.T) {
	b := NewBuilder()
	doc, err := b.Build(outcome.Fail[int](), "/x", "t")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, doc.Status)
	assert.Equal(t, "HTTP 500 Error", doc.Title)
	assert.Equal(t, "An error occurred with status code 500.", doc.Detail)
	assert.Equal(t, DefaultBaseURI+"/500", doc.Type)

	_, ok := doc.Extensions.Get(ErrorsExtension)
	assert.False(t, ok, "no errors, no zentientErrors extension")
	_, ok = doc.Extensions.Get(TraceIDExtension)
	assert.True(t, ok)
}

func TestBuild_TypeSuffixPrecedence(t *testing.T) {
	b := NewBuilder(WithBaseURI(base))
	tests := []struct {
		name string
		res  outcome.Result
		want string
	}{
		{
			name: "validation anywhere wins over first code",
			res:  outcome.Fail[int](outcome.NotFound("MISSING", "a"), outcome.Validation("f", "b")),
			want: "validation",
		},
		{
			name: "code wins over category",
			res:  outcome.Fail[int](outcome.Conflict("Order-Shipped", "a")),
			want: "ordershipped",
		},
		{
			name: "category when no code",
			res:  outcome.Fail[int](outcome.E(category.ServiceUnavailable, "down")),
			want: "serviceunavailable",
		},
		{
			name: "status when category is None",
			res:  outcome.Fail[int](outcome.E(category.None, "odd")),
			want: "500",
		},
		{
			name: "status when category is empty",
			res:  outcome.FailStatus[int](http.StatusTeapot, "", outcome.ErrorInfo{Message: "odd"}),
			want: "418",
		},
		{
			name: "code made of separators only falls through",
			res:  outcome.Fail[int](outcome.E(category.Timeout, "slow", outcome.WithCode("__"))),
			want: "timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := b.Build(tt.res, "/", "t")
			require.NoError(t, err)
			assert.Equal(t, base+tt.want, doc.Type)
		})
	}
}

func TestBuild_BaseURINormalization(t *testing.T) {
	res := outcome.Fail[int](outcome.NotFound("X", "x"))

	doc, err := NewBuilder(WithBaseURI("https://e.example/p")).Build(res, "/", "t")
	require.NoError(t, err)
	assert.Equal(t, "https://e.example/p/x", doc.Type)

	doc, err = NewBuilder(WithBaseURI("   ")).Build(res, "/", "t")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURI+"/x", doc.Type)
}

func TestBuild_TitleFromDescription(t *testing.T) {
	res := outcome.FailStatus[int](http.StatusConflict, "Conflict", outcome.Conflict("DUP", "duplicate"))
	doc, err := NewBuilder().Build(res, "/", "t")
	require.NoError(t, err)
	assert.Equal(t, "Conflict", doc.Title)
	assert.Equal(t, http.StatusConflict, doc.Status)
}

func TestBuild_ValidationGrouping(t *testing.T) {
	res := outcome.Fail[int](
		outcome.Validation("name", "Name is required."),
		outcome.E(category.Validation, "Code-keyed.", outcome.WithCode("RANGE")),
		outcome.Validation("name", "Name is too long."),
		outcome.E(category.Validation, "Unkeyed."),
		outcome.E(category.Validation, "Blank data.", outcome.WithData("  ")),
		outcome.E(category.Validation, "Non-string data.", outcome.WithData(42)),
		outcome.NotFound("IGNORED", "not a validation error"),
	)
	doc, err := NewBuilder().Build(res, "/", "t")
	require.NoError(t, err)

	require.True(t, doc.Validation)
	assert.Equal(t, []apis.FieldErrors{
		{Key: "name", Messages: []string{"Name is required.", "Name is too long."}},
		{Key: "RANGE", Messages: []string{"Code-keyed."}},
		{Key: "General", Messages: []string{"Unkeyed.", "Blank data.", "Non-string data."}},
	}, doc.FieldErrors)

	msgs, ok := doc.Field("name")
	require.True(t, ok)
	assert.Len(t, msgs, 2)
	_, ok = doc.Field("IGNORED")
	assert.False(t, ok)
}

func TestBuild_422WithoutValidationErrors(t *testing.T) {
	res := outcome.FailStatus[int](http.StatusUnprocessableEntity, "", outcome.NotFound("X", "x"))
	doc, err := NewBuilder().Build(res, "/", "t")
	require.NoError(t, err)

	assert.True(t, doc.Validation)
	assert.Empty(t, doc.FieldErrors)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"errors":{}`)
}

func TestBuild_SuccessIsUsageError(t *testing.T) {
	_, err := NewBuilder().Build(outcome.Success(1), "/", "t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSuccessOutcome))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	_, err = NewBuilder().Build(nil, "/", "t")
	assert.True(t, errors.Is(err, ErrNilOutcome))
}

func TestBuild_CustomizersInOrder(t *testing.T) {
	var calls []string
	b := NewBuilder(
		WithCustomizer(func(doc *Document, _ outcome.Result) {
			calls = append(calls, "first")
			doc.Extensions.Set("tenant", "acme")
			doc.Title = "first"
		}),
		WithCustomizer(nil),
		WithCustomizer(func(doc *Document, res outcome.Result) {
			calls = append(calls, "second")
			doc.Title += "+second"
			doc.Extensions.Set("errorCount", len(res.Errors()))
		}),
	)

	doc, err := b.Build(outcome.Fail[int](outcome.Internal("boom")), "/p", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "first+second", doc.Title)

	v, _ := doc.Extensions.Get("errorCount")
	assert.Equal(t, 1, v)
}

func TestBuild_CustomizerTraceAndInstanceAreKept(t *testing.T) {
	b := NewBuilder(WithCustomizer(func(doc *Document, _ outcome.Result) {
		doc.Extensions.Set(TraceIDExtension, "custom-trace")
		doc.Instance = "urn:custom"
	}))
	doc, err := b.Build(outcome.Fail[int](outcome.Internal("boom")), "/p", "boundary-trace")
	require.NoError(t, err)

	v, _ := doc.Extensions.Get(TraceIDExtension)
	assert.Equal(t, "custom-trace", v)
	assert.Equal(t, "urn:custom", doc.Instance)
}

func TestBuild_TraceRestoredWhenCustomizerDeletesIt(t *testing.T) {
	b := NewBuilder(WithCustomizer(func(doc *Document, _ outcome.Result) {
		doc.Extensions.Delete(TraceIDExtension)
	}))
	doc, err := b.Build(outcome.Fail[int](outcome.Internal("boom")), "/p", "boundary-trace")
	require.NoError(t, err)

	v, ok := doc.Extensions.Get(TraceIDExtension)
	require.True(t, ok)
	assert.Equal(t, "boundary-trace", v)
}

func TestBuild_Idempotent(t *testing.T) {
	b := NewBuilder(WithBaseURI(base))
	res := outcome.Fail[int](
		outcome.Validation("id", "bad id"),
		outcome.NotFound("X", "missing"),
	)
	d1, err := b.Build(res, "/p", "t")
	require.NoError(t, err)
	d2, err := b.Build(res, "/p", "t")
	require.NoError(t, err)

	assert.Equal(t, d1.Type, d2.Type)
	assert.Equal(t, d1.Title, d2.Title)
	assert.Equal(t, d1.Detail, d2.Detail)
	assert.Equal(t, d1.Status, d2.Status)
	assert.Equal(t, d1.Instance, d2.Instance)

	j1, err := json.Marshal(d1)
	require.NoError(t, err)
	j2, err := json.Marshal(d2)
	require.NoError(t, err)
	assert.Equal(t, string(j1), string(j2))
}

func TestBuild_UsesResolver(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPOverride(category.NotFound, http.StatusGone))
	require.NoError(t, err)

	b := NewBuilder(WithResolver(mapper.NewResolver(m)))
	doc, err := b.Build(outcome.Fail[int](outcome.NotFound("", "gone")), "/", "t")
	require.NoError(t, err)
	assert.Equal(t, http.StatusGone, doc.Status)
	assert.Equal(t, "HTTP 410 Error", doc.Title)
}

func TestDocument_JSONShape(t *testing.T) {
	res := outcome.Fail[int](
		outcome.Validation("id", "Product ID must be positive."),
		outcome.E(category.Database, "write failed",
			outcome.WithCode("DB_WRITE"),
			outcome.WithInner(outcome.Internal("disk full")),
		),
	)
	doc, err := NewBuilder(WithBaseURI(base)).Build(res, "/products/-1", "abc123")
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "https://errors.example.com/problems/validation",
		"title": "HTTP 400 Error",
		"status": 400,
		"detail": "Product ID must be positive.",
		"instance": "/products/-1",
		"traceId": "abc123",
		"zentientErrors": [
			{"category": "validation", "code": null, "message": "Product ID must be positive.", "data": "id"},
			{"category": "database", "code": "DB_WRITE", "message": "write failed",
			 "innerErrors": [{"category": "internalservererror", "code": null, "message": "disk full"}]}
		],
		"errors": {"id": ["Product ID must be positive."]}
	}`, string(raw))

	// member order is deterministic
	s := string(raw)
	assert.Less(t, strings.Index(s, `"type"`), strings.Index(s, `"instance"`))
	assert.Less(t, strings.Index(s, `"traceId"`), strings.Index(s, `"zentientErrors"`))
	assert.Less(t, strings.Index(s, `"zentientErrors"`), strings.Index(s, `"errors":{`))
}
