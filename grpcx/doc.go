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

// Package grpcx projects outcomes onto gRPC.
//
// UnaryServerInterceptor lets unary handlers return an outcome.Result (or a
// plain error). Failures become gRPC statuses whose code is resolved from
// the first error's category and whose details carry the problem document
// as a google.protobuf.Struct. ExtractProblem reads it back on the client.
package grpcx
