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

// Package hunks decides whether two hunks of a line based patch can be reordered and computes how
// they look after the reordering.
//
// Two hunks commute if applying them in either order produces the same file. [Commute] answers
// that question for one pair of hunks and, if the answer is yes, rewrites the line numbers of both
// hunks so that they can be applied in the opposite order. This is the building block for tools
// that split patches, reorder commits, or apply a subset of the hunks of a larger patch without
// computing a new diff.
//
// Hunks are plain values. Their line contents are stored in an immutable [Lines] buffer that is
// shared between copies, so rewriting a hunk never copies line data. All functions in this package
// are pure and safe for concurrent use.
//
// Note: To construct hunks from two versions of a text, please see [znkr.io/hunks/text].
//
// [znkr.io/hunks/text]: https://pkg.go.dev/znkr.io/hunks/text
package hunks
