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

import (
	"iter"
	"slices"
)

// Lines is an immutable sequence of line contents.
//
// Copies of a Lines value share the same underlying buffer. The zero value is an empty sequence.
type Lines struct {
	s []string
}

// NewLines returns a Lines value holding a copy of lines. Every element is expected to contain a
// single line including its terminator, if it has one.
func NewLines(lines ...string) Lines {
	if len(lines) == 0 {
		return Lines{}
	}
	return Lines{slices.Clone(lines)}
}

// Len returns the number of lines.
func (l Lines) Len() int { return len(l.s) }

// At returns the i-th line.
func (l Lines) At(i int) string { return l.s[i] }

// All returns an iterator over all lines.
func (l Lines) All() iter.Seq[string] { return slices.Values(l.s) }

// Block is one side of a [Hunk].
type Block struct {
	// Start is the 1-based line number where the block begins. For an empty block, it's the number
	// of the line after which the block sits, 0 means before the first line. This is the same
	// convention that unified diffs use.
	Start int

	// Lines contains the lines of this block.
	Lines Lines

	// TrailingNewline reports whether the last line of the block ends in a newline.
	TrailingNewline bool
}

// Len returns the number of lines in b.
func (b Block) Len() int { return b.Lines.Len() }

// Empty reports whether b contains no lines.
func (b Block) Empty() bool { return b.Lines.Len() == 0 }

// Hunk describes a single contiguous edit: Removed is replaced by Added.
type Hunk struct {
	Removed Block // Lines removed, positioned in the original file.
	Added   Block // Lines added, positioned in the resulting file.
}

// Clone returns a copy of h. The copy shares the line buffers with h.
func (h Hunk) Clone() Hunk { return h }
