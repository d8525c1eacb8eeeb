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

// Package spans groups changes in a sequence of edits into spans with surrounding context. It's
// used to shorten long runs of unchanged elements when rendering edits.
package spans

import "iter"

// Span describes a range of edits that contains changes and their context.
type Span struct {
	Start, End int // Start and end of the span in the edits.
	Changes    int // Number of changed edits in this span.
}

// Spans finds all spans in changed and returns them in order.
//
// A span contains a run of changes together with up to context unchanged elements before and
// after. Spans whose context windows would overlap or touch are merged, so between two spans
// there's always at least one unchanged element that isn't part of any span.
func Spans(changed []bool, context int) iter.Seq[Span] {
	context = max(0, context)
	return func(yield func(Span) bool) {
		n := len(changed)
		s0 := -1     // start of the current span
		last := -1   // index after the last change in the current span
		nchange := 0 // number of changes in the current span
		for k := range n {
			if !changed[k] {
				continue
			}
			// The gap between the previous change and this one is too large to be covered by
			// context, finish the current span.
			if s0 >= 0 && k-last > 2*context {
				if !yield(Span{s0, min(n, last+context), nchange}) {
					return
				}
				s0 = -1
			}
			if s0 < 0 {
				s0 = max(0, k-context)
				nchange = 0
			}
			last = k + 1
			nchange++
		}
		if s0 >= 0 {
			yield(Span{s0, min(n, last+context), nchange})
		}
	}
}
