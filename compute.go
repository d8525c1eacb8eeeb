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

// Compute fills the alignment matrix for x and y using the costs and tie-breaks of p.
//
// The result has len(x)+1 rows and len(y)+1 columns. Cell (i, j) holds the minimum cost to
// transform x[:i] into y[:j] together with the kind of the last step on the recorded path:
//
//   - Row 0 holds insertions only: building y[:j] from nothing.
//   - Column 0 holds deletions only: removing all of x[:i].
//   - Every other cell is derived from its upper, left and diagonal neighbors. If p selects a
//     substitution that doesn't add any cost, the cell is recorded as [NoAction].
//
// Compute is total: it works for any two slices, including empty ones.
func Compute[T any](p Policy[T], x, y []T) *Matrix[Cost] {
	n, m := len(x), len(y)
	mat := NewMatrix(n+1, m+1, Cost{NoAction, 0})

	// Row-major sweep, the upper, left and diagonal neighbors are always computed first.
	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			var c Cost
			switch {
			case i == 0 && j == 0:
				c = Cost{Insertion, 0}
			case i == 0:
				c = Cost{Insertion, value(mat, i, j-1) + p.InsertionCost(y[j-1])}
			case j == 0:
				c = Cost{Deletion, value(mat, i-1, j) + p.DeletionCost(x[i-1])}
			default:
				c = costOf(p, x[i-1], y[j-1], mat, i, j)
			}
			mat.Set(i, j, c)
		}
	}
	return mat
}

// costOf computes the cost of cell (i, j) where a = x[i-1] and b = y[j-1]:
//
//	(i-1, j-1)  (i-1, j)
//	(i,   j-1)  (i,   j)
//
// Going from (i-1, j) to (i, j) deletes a, going from (i, j-1) to (i, j) inserts b, and going
// from (i-1, j-1) to (i, j) substitutes a with b.
func costOf[T any](p Policy[T], a, b T, mat *Matrix[Cost], i, j int) Cost {
	diag := value(mat, i-1, j-1)
	del := value(mat, i-1, j) + p.DeletionCost(a)
	ins := value(mat, i, j-1) + p.InsertionCost(b)
	sub := diag + p.SubstitutionCost(a, b)

	c := p.LowerCost(a, b, del, sub, ins)
	if c.Kind == Substitution && c.Value == diag {
		// Nothing was added on the diagonal, a and b are the same as far as p is concerned.
		c.Kind = NoAction
	}
	return c
}

func value(mat *Matrix[Cost], i, j int) int {
	c, ok := mat.Get(i, j)
	if !ok {
		panic("never reached")
	}
	return c.Value
}
