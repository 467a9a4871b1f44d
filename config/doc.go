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

// Package config loads engine settings from YAML.
//
//	problem:
//	  base_uri: https://errors.example.com/problems/
//	status:
//	  http:
//	    NotFound: 410
//	  grpc:
//	    NotFound: 5
//	  fallback_http: 500
//	trace:
//	  header: X-Correlation-ID
//
// Status tables are keyed by category name; unknown keys are rejected, as
// are out-of-range statuses.
package config
