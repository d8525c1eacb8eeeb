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

// Package align computes a minimum-cost alignment between two slices under a pluggable cost
// model and reconstructs the edit operations that realize it.
//
// The computation is split into two stages. [Compute] fills an (n+1)×(m+1) [Matrix] of [Cost]
// cells using the classical edit distance recurrence, delegating every price and every tie-break
// to a [Policy]. [Backtrace] then walks the matrix from the bottom-right cell to the origin and
// returns one [Edit] per step in input order. [Edits] and [Distance] combine both stages for the
// common case of the [Levenshtein] policy.
//
// Ties are resolved once, while the matrix is built, and stored in each cell. The backtrace makes
// no further choices, so the output is a pure function of the inputs and the policy.
//
// Performance: O(N·M) time and space where N = len(x) and M = len(y). The full matrix is kept
// because the backtrace needs it. This package is intended for short inputs such as words,
// identifiers or single lines.
//
// Note: For a human readable rendering of the edits, please see [znkr.io/align/render].
//
// [znkr.io/align/render]: https://pkg.go.dev/znkr.io/align/render
package align
