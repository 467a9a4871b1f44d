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

// Package traceparent reads the trace-id field of W3C trace context
// "traceparent" values, shared by the HTTP and gRPC boundaries.
package traceparent

import (
	"encoding/hex"
	"strings"
)

// TraceID returns the lower-cased trace-id of a traceparent value:
//
//	<version:2 hex>-<trace-id:32 hex>-<parent-id:16 hex>-<flags:2 hex>[-...]
//
// Version "ff" is invalid, as are all-zero trace and parent ids. Later
// versions may append fields, so extra segments are tolerated for any
// version other than "00".
func TraceID(v string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(v), "-")
	if len(parts) < 4 {
		return "", false
	}
	version, id, parent, flags := parts[0], parts[1], parts[2], parts[3]
	if !isHex(version, 2) || strings.EqualFold(version, "ff") {
		return "", false
	}
	if version == "00" && len(parts) != 4 {
		return "", false
	}
	if !isHex(id, 32) || !isHex(parent, 16) || !isHex(flags, 2) {
		return "", false
	}
	if allZero(id) || allZero(parent) {
		return "", false
	}
	return strings.ToLower(id), true
}

func isHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func allZero(s string) bool { return strings.Trim(s, "0") == "" }
