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

func TestApply(t *testing.T) {
	x := []rune("hello")
	got, err := Apply(x, Edits(x, []rune("hey")))
	if err != nil {
		t.Fatalf("Apply(...) failed: %v", err)
	}
	if diff := cmp.Diff("hey", string(got)); diff != "" {
		t.Errorf("Apply(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		x     string
		edits []Edit[rune]
	}{
		{
			name:  "mismatch",
			x:     "a",
			edits: []Edit[rune]{{Keep, 'b', 'b'}},
		},
		{
			name:  "delete-past-end",
			x:     "a",
			edits: []Edit[rune]{{Keep, 'a', 'a'}, {Delete, 'a', 0}},
		},
		{
			name:  "trailing",
			x:     "ab",
			edits: []Edit[rune]{{Substitute, 'a', 'c'}},
		},
		{
			name:  "unknown-op",
			x:     "a",
			edits: []Edit[rune]{{Op(42), 'a', 'a'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Apply([]rune(tt.x), tt.edits); err == nil {
				t.Errorf("Apply(%q, %v) = %q, want error", tt.x, tt.edits, string(got))
			}
		})
	}
}
