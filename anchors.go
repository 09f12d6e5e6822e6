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

// Anchors are the unchanged lines around a hunk.
//
// A hunk that only inserts or only deletes lines has no extent on the other side, the anchors on
// that side are adjacent lines around the point where the edit happens.
type Anchors struct {
	RemovedBefore int // Last unchanged line before the hunk, on the removed side.
	RemovedAfter  int // First unchanged line after the hunk, on the removed side.
	AddedBefore   int // Last unchanged line before the hunk, on the added side.
	AddedAfter    int // First unchanged line after the hunk, on the added side.
}

// AnchorsOf returns the anchors of h.
//
// A hunk without any lines is treated as sitting at the very beginning of the file on both sides.
func AnchorsOf(h Hunk) Anchors {
	rs, as := h.Removed.Start, h.Added.Start
	rn, an := h.Removed.Len(), h.Added.Len()
	switch {
	case rn == 0 && an == 0:
		return Anchors{0, 1, 0, 1}
	case an == 0:
		return Anchors{rs - 1, rs + rn, rs - 1, rs}
	case rn == 0:
		return Anchors{as - 1, as, as - 1, as + an}
	default:
		return Anchors{rs - 1, rs + rn, as - 1, as + an}
	}
}
