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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// opString encodes the operations of edits as a string with one letter per edit.
func opString[T any](edits []Edit[T]) string {
	var sb strings.Builder
	for _, e := range edits {
		switch e.Op {
		case Keep:
			sb.WriteByte('K')
		case Delete:
			sb.WriteByte('D')
		case Insert:
			sb.WriteByte('I')
		case Substitute:
			sb.WriteByte('S')
		default:
			panic("never reached")
		}
	}
	return sb.String()
}

func TestBacktrace(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{name: "empty", x: "", y: "", want: ""},
		{name: "x-empty", x: "", y: "abc", want: "III"},
		{name: "y-empty", x: "abc", y: "", want: "DDD"},
		{name: "identical", x: "abc", y: "abc", want: "KKK"},
		{name: "single-substitution", x: "a", y: "b", want: "S"},
		{name: "hello-hey", x: "hello", y: "hey", want: "KKDDS"},
		{name: "ab-ba", x: "ab", y: "ba", want: "SS"},
		{name: "append", x: "a", y: "aa", want: "KI"},
		{name: "truncate", x: "aa", y: "a", want: "KD"},
		{name: "kitten-sitting", x: "kitten", y: "sitting", want: "SKKKSKI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := []rune(tt.x), []rune(tt.y)
			got := opString(Backtrace(Compute(Levenshtein[rune]{}, x, y), x, y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Backtrace(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestBacktraceElements(t *testing.T) {
	x, y := []rune("hello"), []rune("hey")
	got := Backtrace(Compute(Levenshtein[rune]{}, x, y), x, y)
	want := []Edit[rune]{
		{Keep, 'h', 'h'},
		{Keep, 'e', 'e'},
		{Delete, 'l', 0},
		{Delete, 'l', 0},
		{Substitute, 'o', 'y'},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Backtrace(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestBacktraceWeighted(t *testing.T) {
	// A substitution is more expensive than a deletion followed by an insertion.
	p := Weighted[rune]{Insert: 1, Delete: 1, Substitute: 3}
	x, y := []rune("a"), []rune("b")
	got := Backtrace(Compute(p, x, y), x, y)
	want := []Edit[rune]{
		{Insert, 0, 'b'},
		{Delete, 'a', 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Backtrace(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestBacktracePanics(t *testing.T) {
	tests := []struct {
		name string
		m    *Matrix[Cost]
		x, y string
	}{
		{
			name: "shape-mismatch",
			m:    Compute(Levenshtein[rune]{}, []rune("ab"), []rune("c")),
			x:    "abc",
			y:    "c",
		},
		{
			name: "deletion-in-row-0",
			m: func() *Matrix[Cost] {
				m := NewMatrix(1, 2, Cost{Insertion, 0})
				m.Set(0, 1, Cost{Deletion, 1})
				return m
			}(),
			x: "",
			y: "a",
		},
		{
			name: "insertion-in-column-0",
			m: func() *Matrix[Cost] {
				m := NewMatrix(2, 1, Cost{Insertion, 0})
				m.Set(1, 0, Cost{Insertion, 1})
				return m
			}(),
			x: "a",
			y: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Backtrace(...) didn't panic")
				}
			}()
			Backtrace(tt.m, []rune(tt.x), []rune(tt.y))
		})
	}
}
