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
	"strings"
)

// Matrix is a dense rectangular grid of values addressed by 0-based row and column.
type Matrix[T any] struct {
	rows, cols int
	data       []T // row-major
}

// NewMatrix returns a rows×cols matrix with every cell set to fill.
func NewMatrix[T any](rows, cols int, fill T) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid matrix dimensions %d×%d", rows, cols))
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &Matrix[T]{rows, cols, data}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Get returns the value at (i, j). If (i, j) is outside of the matrix, it returns the zero value
// and false.
func (m *Matrix[T]) Get(i, j int) (T, bool) {
	if !m.inBounds(i, j) {
		var zero T
		return zero, false
	}
	return m.data[m.index(i, j)], true
}

// Set stores v at (i, j). It panics if (i, j) is outside of the matrix.
func (m *Matrix[T]) Set(i, j int, v T) {
	if !m.inBounds(i, j) {
		panic(fmt.Sprintf("index (%d, %d) out of bounds for %d×%d matrix", i, j, m.rows, m.cols))
	}
	m.data[m.index(i, j)] = v
}

// String formats the matrix with one line per row and tab separated cells.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := range m.rows {
		for j := range m.cols {
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprint(&sb, m.data[m.index(i, j)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Matrix[T]) inBounds(i, j int) bool {
	return 0 <= i && i < m.rows && 0 <= j && j < m.cols
}

func (m *Matrix[T]) index(i, j int) int {
	return m.cols*i + j
}
