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

// Package text constructs hunks from two versions of a text and formats hunks as unified diffs.
package text

import (
	"fmt"
	"strings"

	"znkr.io/diff"
	"znkr.io/hunks"
	"znkr.io/hunks/internal/config"
	"znkr.io/hunks/internal/lines"
)

const (
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\n\\ No newline at end of file\n"

// Hunks compares the lines in x and y and returns the hunks necessary to convert from one to the
// other.
//
// The hunks contain no context lines. They are positioned like the hunks of a unified diff, the
// removed side in x and the added side in y. Every line includes its newline character. A line
// without a newline character is only ever the last line of x or y, the block containing it has
// TrailingNewline unset.
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [Minimal]
func Hunks(x, y string, opts ...Option) []hunks.Hunk {
	cfg := config.FromOptions(opts)

	xlines, xmissing := lines.Split(x)
	ylines, ymissing := lines.Split(y)

	dopts := []diff.Option{diff.Context(0)}
	if cfg.Minimal {
		dopts = append(dopts, diff.Minimal())
	}
	dhunks := diff.Hunks(xlines, ylines, dopts...)
	if len(dhunks) == 0 {
		return nil
	}

	out := make([]hunks.Hunk, 0, len(dhunks))
	for _, h := range dhunks {
		removed := make([]string, 0, h.EndX-h.PosX)
		added := make([]string, 0, h.EndY-h.PosY)
		for _, edit := range h.Edits {
			switch edit.Op {
			case diff.Delete:
				removed = append(removed, edit.X)
			case diff.Insert:
				added = append(added, edit.Y)
			}
		}
		out = append(out, hunks.Hunk{
			Removed: block(h.PosX, removed, xmissing && h.EndX == len(xlines)),
			Added:   block(h.PosY, added, ymissing && h.EndY == len(ylines)),
		})
	}
	return out
}

func block(pos int, ls []string, atMissingNewline bool) hunks.Block {
	if len(ls) == 0 {
		return hunks.Block{Start: pos, TrailingNewline: true}
	}
	return hunks.Block{
		Start:           pos + 1,
		Lines:           hunks.NewLines(ls...),
		TrailingNewline: !atMissingNewline,
	}
}

// Unified formats hunks in unified format without any context lines.
func Unified(hs ...hunks.Hunk) string {
	var b strings.Builder
	for _, h := range hs {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.Removed.Start, h.Removed.Len(), h.Added.Start, h.Added.Len())
		writeBlock(&b, prefixDelete, h.Removed)
		writeBlock(&b, prefixInsert, h.Added)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, prefix string, blk hunks.Block) {
	for line := range blk.Lines.All() {
		b.WriteString(prefix)
		b.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			b.WriteString(missingNewline)
		}
	}
}
