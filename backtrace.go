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

package align

import (
	"fmt"
	"slices"
)

// Backtrace walks an alignment matrix produced by [Compute] for x and y from the bottom-right cell
// to the origin and returns the recorded edits in input order.
//
// Every step moves to the neighbor implied by the kind of the current cell, so the walk takes at
// most len(x)+len(y) steps and makes no decisions of its own.
//
// Backtrace panics if m doesn't have the shape (len(x)+1)×(len(y)+1) or if it contains a move that
// leaves the matrix. Neither can happen for a matrix returned by [Compute].
func Backtrace[T any](m *Matrix[Cost], x, y []T) []Edit[T] {
	n, k := len(x), len(y)
	if m.Rows() != n+1 || m.Cols() != k+1 {
		panic(fmt.Sprintf("matrix is %d×%d, want %d×%d", m.Rows(), m.Cols(), n+1, k+1))
	}

	out := make([]Edit[T], 0, max(n, k))
	for i, j := n, k; i > 0 || j > 0; {
		c, _ := m.Get(i, j)
		switch {
		case c.Kind == NoAction && i > 0 && j > 0:
			out = append(out, Edit[T]{Op: Keep, X: x[i-1], Y: y[j-1]})
			i--
			j--
		case c.Kind == Substitution && i > 0 && j > 0:
			out = append(out, Edit[T]{Op: Substitute, X: x[i-1], Y: y[j-1]})
			i--
			j--
		case c.Kind == Deletion && i > 0:
			out = append(out, Edit[T]{Op: Delete, X: x[i-1]})
			i--
		case c.Kind == Insertion && j > 0:
			out = append(out, Edit[T]{Op: Insert, Y: y[j-1]})
			j--
		default:
			panic(fmt.Sprintf("invalid cell %v at (%d, %d)", c, i, j))
		}
	}
	slices.Reverse(out)
	return out
}
