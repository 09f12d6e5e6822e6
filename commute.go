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
	"errors"
	"fmt"
)

// Verdict describes the outcome of [Commute].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Verdict
type Verdict int

const (
	Unordered     Verdict = iota // The hunks are positioned inconsistently, see [ErrUnordered]
	CannotCommute                // The hunks overlap and can't be reordered
	Commuted                     // The hunks were reordered
)

// ErrUnordered is returned by [Commute] if the hunks are above each other on one side of the diff,
// but below each other on the other side. Hunks from a well-formed patch are never positioned like that.
var ErrUnordered = errors.New("inconsistent hunk order")

// Result is the outcome of [Commute].
//
// If Verdict is Commuted, First and Second contain the rewritten forms of the first and second
// hunk passed to Commute. Note that the order in which they need to be applied is now reversed,
// Second is applied first. Otherwise, First and Second are unset.
type Result struct {
	Verdict       Verdict
	First, Second Hunk
}

// Order returns the commuted hunks in the order in which they need to be applied.
func (r Result) Order() (Hunk, Hunk) { return r.Second, r.First }

// Commute attempts to swap the order in which two hunks are applied. The second hunk is expected to
// be positioned relative to the file that results from applying the first hunk.
//
// If both hunks can be applied in the opposite order with the same outcome, Commute returns a
// [Commuted] result with rewritten line numbers. Overlapping hunks can't be reordered, in this case
// the verdict is [CannotCommute]. That's a regular outcome, not an error.
//
// There is one exception to the overlap rule: If both hunks only insert or both hunks only delete
// lines, and all those lines are identical, the hunks can be interleaved in any order and always
// commute.
//
// If the relative position of the hunks is different on the removed and the added side, Commute
// returns an error wrapping [ErrUnordered].
func Commute(first, second Hunk) (Result, error) {
	// Represent hunks in content order rather than application order.
	firstAbove := position(first.Added) <= position(second.Added)
	if firstAbove != (position(first.Removed) <= position(second.Removed)) {
		return Result{Verdict: Unordered}, fmt.Errorf("%w: first hunk at -%d +%d, second hunk at -%d +%d",
			ErrUnordered, first.Removed.Start, first.Added.Start, second.Removed.Start, second.Added.Start)
	}
	above, below := second, first
	if firstAbove {
		above, below = first, second
	}

	var interleavable bool
	switch {
	case above.Added.Empty() && below.Added.Empty():
		interleavable = uniform(chain(above.Removed.Lines.All(), below.Removed.Lines.All()))
	case above.Removed.Empty() && below.Removed.Empty():
		interleavable = uniform(chain(above.Added.Lines.All(), below.Added.Lines.All()))
	}

	// There has to be at least one unchanged line between the hunks in the file they share, that's
	// the added side of first and the removed side of second.
	a, b := AnchorsOf(above), AnchorsOf(below)
	aboveAnchor, belowAnchor := a.RemovedAfter, b.AddedBefore
	if firstAbove {
		aboveAnchor, belowAnchor = a.AddedAfter, b.RemovedBefore
	}
	if aboveAnchor > belowAnchor && !interleavable {
		return Result{Verdict: CannotCommute}, nil
	}

	Δ := above.Added.Len() - above.Removed.Len()
	if firstAbove {
		Δ = -Δ
	}
	below.Added.Start += Δ
	below.Removed.Start += Δ
	if interleavable {
		// Any position inside a run of identical lines is as good as any other.
		below.Added.Start = max(below.Added.Start, above.Added.Start)
		below.Removed.Start = max(below.Removed.Start, above.Removed.Start)
	}

	if firstAbove {
		return Result{Verdict: Commuted, First: above, Second: below}, nil
	}
	return Result{Verdict: Commuted, First: below, Second: above}, nil
}

// position returns the line number used to order blocks. An empty block sits between two lines, it
// is ordered like the line following it.
func position(b Block) int {
	if b.Empty() {
		return b.Start + 1
	}
	return b.Start
}
