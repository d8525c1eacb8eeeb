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

import "strconv"

// Kind describes the step that was taken to reach a cell of the alignment matrix.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Insertion    Kind = iota // Reached from the left neighbor by inserting an element of y
	Deletion                 // Reached from the upper neighbor by deleting an element of x
	Substitution             // Reached from the diagonal neighbor by replacing an element
	NoAction                 // Reached from the diagonal neighbor without adding any cost
)

// Cost is the cumulative cost of reaching a cell together with the kind of the last step.
type Cost struct {
	Kind  Kind
	Value int
}

// String returns a compact representation of c, e.g. "+ 3" for an insertion with cost 3.
func (c Cost) String() string {
	var prefix string
	switch c.Kind {
	case Insertion:
		prefix = "+ "
	case Deletion:
		prefix = "- "
	case Substitution:
		prefix = "~ "
	case NoAction:
		prefix = "o "
	default:
		prefix = c.Kind.String() + " "
	}
	return prefix + strconv.Itoa(c.Value)
}

// Policy assigns costs to edit operations on elements of type T and decides which operation to
// record for a cell when there are several candidates.
//
// All methods must be pure and return non-negative values. A Policy is selected at the call site,
// so different policies can be used at the same time without shared state.
type Policy[T any] interface {
	// InsertionCost returns the cost of inserting t.
	InsertionCost(t T) int

	// DeletionCost returns the cost of deleting t.
	DeletionCost(t T) int

	// SubstitutionCost returns the cost of replacing a with b.
	SubstitutionCost(a, b T) int

	// LowerCost selects the cost to record for a cell that aligns a (from x) with b (from y),
	// given the cumulative deletion, substitution and insertion candidates.
	LowerCost(a, b T, del, sub, ins int) Cost
}

// Levenshtein is the classical unit cost policy: every insertion or deletion costs 1 and a
// substitution costs 0 if both elements are equal and 1 otherwise.
//
// Ties are broken in the order insertion, deletion, substitution: an insertion is chosen if it's
// strictly cheaper than a deletion and either strictly cheaper than the substitution or as cheap
// as the substitution of two equal elements. Otherwise, a deletion is chosen under the same rule
// and if that fails too, the substitution.
type Levenshtein[T comparable] struct{}

func (Levenshtein[T]) InsertionCost(T) int { return 1 }
func (Levenshtein[T]) DeletionCost(T) int  { return 1 }

func (Levenshtein[T]) SubstitutionCost(a, b T) int {
	if a == b {
		return 0
	}
	return 1
}

func (Levenshtein[T]) LowerCost(a, b T, del, sub, ins int) Cost {
	return lowerCost(a == b, del, sub, ins)
}

// LevenshteinFunc returns the [Levenshtein] policy for elements that are compared with eq
// instead of ==.
//
// Elements that are equal according to eq are considered unchanged, e.g., with a case insensitive
// comparison, aligning "Go" with "GO" results in two [Keep] edits.
func LevenshteinFunc[T any](eq func(a, b T) bool) Policy[T] {
	return levenshteinFunc[T]{eq}
}

type levenshteinFunc[T any] struct {
	eq func(a, b T) bool
}

func (levenshteinFunc[T]) InsertionCost(T) int { return 1 }
func (levenshteinFunc[T]) DeletionCost(T) int  { return 1 }

func (p levenshteinFunc[T]) SubstitutionCost(a, b T) int {
	if p.eq(a, b) {
		return 0
	}
	return 1
}

func (p levenshteinFunc[T]) LowerCost(a, b T, del, sub, ins int) Cost {
	return lowerCost(p.eq(a, b), del, sub, ins)
}

// Weighted is a policy with configurable costs for each operation. Substituting equal elements is
// always free. The tie-break order is the same as for [Levenshtein].
//
// Note that distances are only symmetric if Insert == Delete.
type Weighted[T comparable] struct {
	Insert, Delete, Substitute int
}

func (w Weighted[T]) InsertionCost(T) int { return w.Insert }
func (w Weighted[T]) DeletionCost(T) int  { return w.Delete }

func (w Weighted[T]) SubstitutionCost(a, b T) int {
	if a == b {
		return 0
	}
	return w.Substitute
}

func (Weighted[T]) LowerCost(a, b T, del, sub, ins int) Cost {
	return lowerCost(a == b, del, sub, ins)
}

// lowerCost implements the tie-break shared by all policies in this package. The order of the
// comparisons determines which of several optimal alignments is produced.
func lowerCost(equal bool, del, sub, ins int) Cost {
	if ins < del {
		if ins < sub || ins == sub && equal {
			return Cost{Insertion, ins}
		}
		return Cost{Substitution, sub}
	}
	if del < sub || del == sub && equal {
		return Cost{Deletion, del}
	}
	return Cost{Substitution, sub}
}
