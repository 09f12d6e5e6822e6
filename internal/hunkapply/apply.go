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

// Package hunkapply applies hunks to text.
//
// This package is only for testing.
package hunkapply

import (
	"fmt"
	"slices"
	"strings"

	"znkr.io/hunks"
	"znkr.io/hunks/internal/lines"
)

// Apply applies the hunks to text, one after the other. Every hunk is positioned relative to the
// text that results from applying the hunks before it.
func Apply(text string, hs ...hunks.Hunk) (string, error) {
	ls, _ := lines.Split(text)
	for i, h := range hs {
		var err error
		ls, err = ApplyLines(ls, h)
		if err != nil {
			return "", fmt.Errorf("hunk %d: %v", i, err)
		}
	}
	return strings.Join(ls, ""), nil
}

// ApplyLines replaces the removed lines of h in ls with the added lines.
func ApplyLines(ls []string, h hunks.Hunk) ([]string, error) {
	i := h.Removed.Start - 1
	if h.Removed.Empty() {
		i = h.Removed.Start
	}
	n := h.Removed.Len()
	if i < 0 || i+n > len(ls) {
		return nil, fmt.Errorf("lines %d to %d out of range, have %d lines", i+1, i+n, len(ls))
	}
	for j, want := range slices.Collect(h.Removed.Lines.All()) {
		if ls[i+j] != want {
			return nil, fmt.Errorf("line %d is %q, want %q", i+j+1, ls[i+j], want)
		}
	}
	out := make([]string, 0, len(ls)-n+h.Added.Len())
	out = append(out, ls[:i]...)
	out = slices.AppendSeq(out, h.Added.Lines.All())
	out = append(out, ls[i+n:]...)
	return out, nil
}
