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

// Package category defines the closed classification of failure causes used
// by the outcome translation engine.
//
// A Category answers "what kind of failure is this?" at a level that is
// coarse enough to pick a transport status from, e.g. Validation, NotFound,
// Conflict or ServiceUnavailable. Every outcome.ErrorInfo carries exactly one
// category.
//
// The built-in set is closed, but the type is a string so services may
// declare their own categories (the "other" bucket). Custom categories are
// valid as long as they match the canonical format; transport mappers treat
// them as unrecognized unless an explicit rule is registered for them.
//
// Canonical names are PascalCase ("NotFound"). Wire representations use the
// lower-cased form ("notfound"), see Category.Lower.
package category
