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
	"errors"
	"strings"
	"testing"

	"dirpx.dev/outcome/category"
)

func TestErrorInfo_Basics(t *testing.T) {
	e := E(category.NotFound, "Product 99 not found.",
		WithCode("PRODUCT_NOT_FOUND"),
		WithData(99),
	)

	if e.Category != category.NotFound {
		t.Fatal("category mismatch")
	}
	if e.Code != "PRODUCT_NOT_FOUND" {
		t.Fatal("code must be set")
	}
	if e.Data != 99 {
		t.Fatal("data missing")
	}

	s := e.Error()
	for _, sub := range []string{"NotFound", "PRODUCT_NOT_FOUND", "Product 99 not found."} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestErrorInfo_ErrorWithoutCategory(t *testing.T) {
	e := ErrorInfo{Message: "boom"}
	if got := e.Error(); got != "None: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestErrorInfo_Immutability_CopyOnWrite(t *testing.T) {
	leaf := Internal("disk full")
	e1 := E(category.Database, "write failed").WithInnerErrors(leaf)
	e2 := e1.WithInnerErrors(Internal("retry failed"))

	if len(e1.InnerErrors) != 1 || len(e2.InnerErrors) != 2 {
		t.Fatal("inner errors size mismatch")
	}

	e3 := e2.WithMessage("changed")
	e3.InnerErrors[0].Message = "mutated"
	if e2.InnerErrors[0].Message != "disk full" {
		t.Fatal("original mutated through copy")
	}
	if e2.Message != "write failed" {
		t.Fatal("WithMessage mutated the receiver")
	}
}

func TestErrorInfo_AsError(t *testing.T) {
	var err error = Conflict("VERSION", "stale version")
	var info ErrorInfo
	if !errors.As(err, &info) {
		t.Fatal("errors.As failed")
	}
	if info.Category != category.Conflict || info.Code != "VERSION" {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestValidation_FieldAsData(t *testing.T) {
	e := Validation("id", "Product ID must be positive.")
	if e.Data != "id" || e.Category != category.Validation {
		t.Fatalf("unexpected %+v", e)
	}
	if Validation("", "x").Data != nil {
		t.Fatal("blank field must not set data")
	}
}
