// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lines splits text into lines.
package lines

import "strings"

// Split splits s after every '\n' and returns the lines including the newline character. If s
// doesn't end in a newline character, the last line is returned without it and missingNewline is
// true.
func Split(s string) (lines []string, missingNewline bool) {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
		missingNewline = true
	}
	if n == 0 {
		return nil, false
	}
	a := make([]string, n)
	for i := range n {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			a[i] = s
			break
		}
		a[i] = s[:m+1]
		s = s[m+1:]
	}
	return a, missingNewline
}
