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

package category

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Category is the canonical representation of an error category.
//
// The zero value ("") means "not classified" and behaves like None
// everywhere a category is interpreted.
type Category string

// MaxLength is the maximum length of a category name.
const MaxLength = 64

// nameFmt is the canonical format for category names: an ASCII letter
// followed by letters, digits or underscores, 1..64 characters in total.
const nameFmt = `^[A-Za-z][A-Za-z0-9_]{0,63}$`

var nameRe = regexp.MustCompile(nameFmt)

var (
	// ErrInvalid is returned when a value cannot be parsed as a category.
	ErrInvalid = errors.New("category: invalid category")
)

var (
	_ encoding.TextMarshaler   = (*Category)(nil)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// Normalize trims surrounding spaces and maps dashes to underscores.
// Case is preserved; Parse matches built-in names case-insensitively.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes s and returns the matching category.
//
// Built-in categories match case-insensitively, so "notfound", "NOTFOUND"
// and "NotFound" all yield NotFound. Other well-formed names are returned
// as custom categories. The empty string is rejected.
func Parse(s string) (Category, error) {
	s = Normalize(s)
	if c, ok := lookup[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !nameRe.MatchString(s) {
		return "", ErrInvalid
	}
	return Category(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Category {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical name.
func (c Category) String() string {
	return string(c)
}

// Lower returns the lower-cased name used in wire documents.
// The zero value is reported as "none".
func (c Category) Lower() string {
	if c == "" {
		return strings.ToLower(string(None))
	}
	return strings.ToLower(string(c))
}

// IsDefined reports whether c carries a real classification, i.e. it is
// neither the zero value nor None.
func (c Category) IsDefined() bool {
	return c != "" && c != None
}

// IsBuiltin reports whether c is one of the categories shipped with this
// package.
func (c Category) IsBuiltin() bool {
	b, ok := lookup[strings.ToLower(string(c))]
	return ok && b == c
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if c == "" {
		return []byte(None), nil
	}
	if !nameRe.MatchString(string(c)) {
		return nil, ErrInvalid
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
