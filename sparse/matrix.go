// SPDX-License-Identifier: MIT

// Package sparse - constructor and safe accessors.
//
// Bounds are enforced on writes only: At returns 0 for any coordinate the
// matrix does not cover, while Set rejects it with ErrOutOfRange. Reads
// therefore never fail, which keeps the arithmetic kernels branch-light.

package sparse

import (
	"fmt"
	"sort"
)

// New returns an empty rows×cols matrix. Zero dimensions are legal (an
// empty shape still round-trips through the codec); negative dimensions
// return ErrInvalidDimensions.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix{rows: rows, cols: cols, cells: make(map[coord]int64)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored (non-zero) cells. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.cells) }

// At returns the value at (row, col), or 0 when the cell is absent or the
// coordinate lies outside the matrix.
// Complexity: O(1) expected.
func (m *Matrix) At(row, col int) int64 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0
	}

	return m.cells[coord{row, col}]
}

// Set stores value at (row, col). A zero value removes the cell
// (idempotent); an out-of-bounds coordinate returns ErrOutOfRange and
// leaves m unchanged.
// Complexity: O(1) expected.
func (m *Matrix) Set(row, col int, value int64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	k := coord{row, col}
	if value == 0 {
		delete(m.cells, k)
		return nil
	}
	m.cells[k] = value

	return nil
}

// Clone returns a deep copy sharing no state with m.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, cells: make(map[coord]int64, len(m.cells))}
	for k, v := range m.cells {
		out.cells[k] = v
	}

	return out
}

// Equal reports whether m and other have the same shape and the same
// non-zero cells.
// Complexity: O(nnz).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.cells) != len(other.cells) {
		return false
	}
	for k, v := range m.cells {
		if other.cells[k] != v {
			return false
		}
	}

	return true
}

// Entries returns a snapshot of the stored cells in row-major ascending
// order. The slice is freshly allocated; mutating it does not touch m.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.cells))
	for k, v := range m.cells {
		out = append(out, Entry{Row: k.row, Col: k.col, Val: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}
