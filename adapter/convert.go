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

package adapter

import (
	"encoding/json"

	"github.com/jmgilman/go/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/outcome"
	"dirpx.dev/outcome/apis"
	"dirpx.dev/outcome/category"
	"dirpx.dev/outcome/problem"
)

// ToStruct converts a problem document into a protobuf Struct with the same
// members as its JSON form.
func ToStruct(doc *problem.Document) (*structpb.Struct, error) {
	if doc == nil {
		return nil, errors.New(errors.CodeInvalidInput, "adapter: nil problem document")
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "adapter: encode problem document")
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "adapter: decode problem struct")
	}
	return s, nil
}

// FromViews walks serialized error views back into ErrorInfo values,
// preserving order and nesting. Category names are parsed leniently: an
// unparseable name yields category.None.
func FromViews(views []apis.ErrorView) []outcome.ErrorInfo {
	if len(views) == 0 {
		return nil
	}
	out := make([]outcome.ErrorInfo, len(views))
	for i, v := range views {
		out[i] = fromView(v)
	}
	return out
}

func fromView(v apis.ErrorView) outcome.ErrorInfo {
	c, err := category.Parse(v.Category)
	if err != nil {
		c = category.None
	}
	e := outcome.ErrorInfo{
		Category:    c,
		Message:     v.Message,
		Data:        v.Data,
		InnerErrors: FromViews(v.InnerErrors),
	}
	if v.Code != nil {
		e.Code = *v.Code
	}
	return e
}
