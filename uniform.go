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

package hunks

import "iter"

// uniform reports whether all elements of seq are equal to each other. An empty sequence is
// uniform.
//
// uniform stops consuming seq at the first element that's different from the first one.
func uniform[E comparable](seq iter.Seq[E]) bool {
	var first E
	seen := false
	for e := range seq {
		if !seen {
			first, seen = e, true
			continue
		}
		if e != first {
			return false
		}
	}
	return true
}

// chain returns a sequence that yields all elements of a followed by all elements of b.
func chain[E any](a, b iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range a {
			if !yield(e) {
				return
			}
		}
		for e := range b {
			if !yield(e) {
				return
			}
		}
	}
}
