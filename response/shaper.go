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

// Shaper builds body responses for one captured payload.
//
// Implementations know the payload's static type, so the responses they
// return are instantiated with that type rather than with any.
type Shaper interface {
	// Value returns the captured payload.
	Value() any

	// OK returns a 200 response carrying the payload.
	OK() Response

	// Created returns a 201 response carrying the payload and location.
	Created(location string) Response
}

// Payload is the Shaper for a value of type T.
type Payload[T any] struct {
	V T
}

// Of captures v together with its static type.
func Of[T any](v T) Payload[T] {
	return Payload[T]{V: v}
}

// Value implements Shaper.
func (p Payload[T]) Value() any { return p.V }

// OK implements Shaper.
func (p Payload[T]) OK() Response { return OK[T]{Value: p.V} }

// Created implements Shaper.
func (p Payload[T]) Created(location string) Response {
	return Created[T]{Location: location, Value: p.V}
}
