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

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Keep       Op = iota // An element of the left slice is kept
	Delete               // A deletion of an element from the left slice
	Insert               // An insertion of an element from the right slice
	Substitute           // An element of the left slice is replaced by one from the right slice
)

// Edit describes a single edit of an alignment.
//
//   - For Keep, X and Y contain the aligned elements. They are equal unless the policy considers
//     different elements to be equivalent.
//   - For Substitute, X contains the replaced element and Y its replacement.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Edits aligns x and y using the [Levenshtein] policy and returns the edits necessary to convert
// from one to the other.
//
// If x and y are identical, the output consists of a keep edit for every element.
func Edits[T comparable](x, y []T) []Edit[T] {
	return EditsPolicy(Levenshtein[T]{}, x, y)
}

// EditsPolicy aligns x and y using the policy p and returns the edits necessary to convert from
// one to the other.
func EditsPolicy[T any](p Policy[T], x, y []T) []Edit[T] {
	return Backtrace(Compute(p, x, y), x, y)
}

// Distance returns the Levenshtein distance between x and y.
func Distance[T comparable](x, y []T) int {
	return DistancePolicy(Levenshtein[T]{}, x, y)
}

// DistancePolicy returns the minimum cost to convert x into y under the policy p.
func DistancePolicy[T any](p Policy[T], x, y []T) int {
	return Total(Compute(p, x, y))
}

// Total returns the cost stored in the bottom-right cell of an alignment matrix produced by
// [Compute], i.e., the total cost of the alignment.
func Total(m *Matrix[Cost]) int {
	c, ok := m.Get(m.Rows()-1, m.Cols()-1)
	if !ok {
		panic("empty alignment matrix")
	}
	return c.Value
}

// EditCost returns the cost p assigns to the single edit e.
//
// For a list of edits produced with p, the sum of all edit costs equals the total cost of the
// alignment.
func EditCost[T any](p Policy[T], e Edit[T]) int {
	switch e.Op {
	case Keep, Substitute:
		return p.SubstitutionCost(e.X, e.Y)
	case Delete:
		return p.DeletionCost(e.X)
	case Insert:
		return p.InsertionCost(e.Y)
	default:
		panic("never reached")
	}
}
