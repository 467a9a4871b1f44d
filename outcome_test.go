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

package outcome

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/response"
)

type product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestSuccess_Defaults(t *testing.T) {
	o := Success(product{ID: 42, Name: "Widget"})

	require.True(t, o.IsSuccess())
	require.False(t, o.IsFailure())
	require.Equal(t, http.StatusOK, o.StatusCode())
	require.True(t, o.HasPayload())
	require.Empty(t, o.Errors())
	require.Empty(t, o.ErrorMessage())

	v, ok := o.Value()
	require.True(t, ok)
	require.Equal(t, 42, v.ID)
}

func TestZeroValue_IsEmptySuccess(t *testing.T) {
	var o Outcome[product]
	require.True(t, o.IsSuccess())
	require.Equal(t, http.StatusOK, o.StatusCode())
	require.False(t, o.HasPayload())
}

func TestSuccess_NilPayloads(t *testing.T) {
	require.False(t, Success[*product](nil).HasPayload())
	require.False(t, Success[[]int](nil).HasPayload())
	require.False(t, Success[map[string]int](nil).HasPayload())
	require.False(t, Success[any](nil).HasPayload())
	require.True(t, Success(0).HasPayload())
	require.True(t, Success([]int{}).HasPayload())
}

func TestStatusConstructors(t *testing.T) {
	require.Equal(t, http.StatusCreated, Created(product{}, "/products/1").StatusCode())
	require.Equal(t, "/products/1", Created(product{}, "/products/1").Location())
	require.Equal(t, http.StatusNoContent, NoContent[product]().StatusCode())
	require.Equal(t, http.StatusOK, Empty[product]().StatusCode())
	require.Equal(t, http.StatusAccepted, SuccessStatus(product{}, http.StatusAccepted).StatusCode())
}

func TestFail(t *testing.T) {
	o := Fail[product](
		Validation("name", ""),
		NotFound("PRODUCT_NOT_FOUND", "Product 99 not found."),
	)

	require.True(t, o.IsFailure())
	require.False(t, o.IsSuccess())
	require.Zero(t, o.StatusCode(), "failure status is derived unless set")
	require.False(t, o.HasPayload())
	require.Equal(t, "Product 99 not found.", o.ErrorMessage(), "blank messages are skipped")

	_, ok := o.Payload()
	require.False(t, ok)
	_, ok = o.Value()
	require.False(t, ok)
}

func TestFailStatus(t *testing.T) {
	o := FailStatus[product](http.StatusUnprocessableEntity, "Unprocessable")
	require.Equal(t, http.StatusUnprocessableEntity, o.StatusCode())
	require.Equal(t, "Unprocessable", o.Description())
	require.Empty(t, o.Errors())
}

func TestErrors_ReturnsCopy(t *testing.T) {
	o := Fail[product](Internal("boom"))
	errs := o.Errors()
	errs[0].Message = "changed"
	require.Equal(t, "boom", o.Errors()[0].Message)
}

func TestFail_CopiesInput(t *testing.T) {
	in := []ErrorInfo{Internal("boom")}
	o := Fail[product](in...)
	in[0].Message = "changed"
	require.Equal(t, "boom", o.ErrorMessage())
}

func TestFromFailure(t *testing.T) {
	src := FailStatus[int](http.StatusConflict, "Conflict", Conflict("DUP", "duplicate"))
	o, ok := FromFailure[product](src)
	require.True(t, ok)
	require.True(t, o.IsFailure())
	require.Equal(t, http.StatusConflict, o.StatusCode())
	require.Equal(t, category.Conflict, o.Errors()[0].Category)

	_, ok = FromFailure[product](Success(1))
	require.False(t, ok)
	_, ok = FromFailure[product](nil)
	require.False(t, ok)
}

func TestPayload_KeepsStaticType(t *testing.T) {
	var r Result = Created(product{ID: 7, Name: "Bolt"}, "/products/7")

	typed, ok := r.(Typed)
	require.True(t, ok)

	s, ok := typed.Payload()
	require.True(t, ok)

	created, ok := s.Created("/products/7").(response.Created[product])
	require.True(t, ok, "shaper must build a response instantiated with the payload type")
	require.Equal(t, 7, created.Value.ID)

	_, ok = s.OK().(response.OK[product])
	require.True(t, ok)
}

func TestWithDescriptionAndLocation(t *testing.T) {
	o := Success(1).WithLocation("/x").WithDescription("fine")
	require.Equal(t, "/x", o.Location())
	require.Equal(t, "fine", o.Description())
}
