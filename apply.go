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

import "fmt"

// Apply replays edits against x and returns the resulting slice.
//
// For edits returned by [Edits] or [EditsPolicy] with a policy that only considers equal elements
// equivalent, Apply(x, edits) returns a copy of y. Apply returns an error if an edit refers to an
// element that doesn't match x or if the edits don't consume all of x.
func Apply[T comparable](x []T, edits []Edit[T]) ([]T, error) {
	out := make([]T, 0, len(edits))
	s := 0 // current index into x
	for k, e := range edits {
		switch e.Op {
		case Keep, Substitute, Delete:
			if s >= len(x) {
				return nil, fmt.Errorf("edit %d (%v): end of input reached", k, e.Op)
			}
			if x[s] != e.X {
				return nil, fmt.Errorf("edit %d (%v): element %d is %v, want %v", k, e.Op, s, x[s], e.X)
			}
			s++
			switch e.Op {
			case Keep:
				out = append(out, e.X)
			case Substitute:
				out = append(out, e.Y)
			}
		case Insert:
			out = append(out, e.Y)
		default:
			return nil, fmt.Errorf("edit %d: unknown operation %v", k, e.Op)
		}
	}
	if s != len(x) {
		return nil, fmt.Errorf("%d trailing elements not covered by edits", len(x)-s)
	}
	return out, nil
}
