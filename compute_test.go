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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rows converts m into a slice of rows for easier comparisons.
func rows[T any](m *Matrix[T]) [][]T {
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			out[i][j], _ = m.Get(i, j)
		}
	}
	return out
}

var (
	ins = func(v int) Cost { return Cost{Insertion, v} }
	del = func(v int) Cost { return Cost{Deletion, v} }
	sub = func(v int) Cost { return Cost{Substitution, v} }
	nop = func(v int) Cost { return Cost{NoAction, v} }
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		p    Policy[rune]
		want [][]Cost
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			p:    Levenshtein[rune]{},
			want: [][]Cost{{ins(0)}},
		},
		{
			name: "x-empty",
			x:    "",
			y:    "abc",
			p:    Levenshtein[rune]{},
			want: [][]Cost{{ins(0), ins(1), ins(2), ins(3)}},
		},
		{
			name: "y-empty",
			x:    "abc",
			y:    "",
			p:    Levenshtein[rune]{},
			want: [][]Cost{{ins(0)}, {del(1)}, {del(2)}, {del(3)}},
		},
		{
			name: "hello-hey",
			x:    "hello",
			y:    "hey",
			p:    Levenshtein[rune]{},
			want: [][]Cost{
				{ins(0), ins(1), ins(2), ins(3)},
				{del(1), nop(0), ins(1), ins(2)},
				{del(2), del(1), nop(0), ins(1)},
				{del(3), del(2), del(1), sub(1)},
				{del(4), del(3), del(2), sub(2)},
				{del(5), del(4), del(3), sub(3)},
			},
		},
		{
			name: "ab-ba",
			x:    "ab",
			y:    "ba",
			p:    Levenshtein[rune]{},
			want: [][]Cost{
				{ins(0), ins(1), ins(2)},
				{del(1), sub(1), nop(1)},
				{del(2), nop(1), sub(2)},
			},
		},
		{
			name: "weighted-boundaries",
			x:    "ab",
			y:    "abc",
			p:    Weighted[rune]{Insert: 2, Delete: 3, Substitute: 1},
			want: [][]Cost{
				{ins(0), ins(2), ins(4), ins(6)},
				{del(3), nop(0), ins(2), ins(4)},
				{del(6), del(3), nop(0), ins(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rows(Compute(tt.p, []rune(tt.x), []rune(tt.y)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestComputeCollapsesEquivalentSubstitutions(t *testing.T) {
	p := LevenshteinFunc(func(a, b rune) bool { return a|0x20 == b|0x20 })
	m := Compute(p, []rune("Go"), []rune("gO"))
	want := [][]Cost{
		{ins(0), ins(1), ins(2)},
		{del(1), nop(0), ins(1)},
		{del(2), del(1), nop(0)},
	}
	if diff := cmp.Diff(want, rows(m)); diff != "" {
		t.Errorf("Compute(...) result is different [-want,+got]:\n%s", diff)
	}
}
