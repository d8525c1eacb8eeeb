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

// levdiff aligns pairs of strings and prints their edit distance together with a rendering of the
// edits.
//
// Two strings can be passed as arguments:
//
//	levdiff hello hey
//
// Alternatively, pairs can be read from a file. Every pair consists of a line starting with '>'
// followed by a line starting with '<':
//
//	>hello
//	<hey
//	>kitten
//	<sitting
//
// Pairs from a file are aligned in parallel, the output is written in input order.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
