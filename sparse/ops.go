// SPDX-License-Identifier: MIT

// Package sparse - elementary algebra over sparse matrices.
//
// All three operations are pure: operands are read, never mutated, and a
// result shares no storage with either operand. Loops run over stored
// cells only, so cost scales with the number of non-zeros rather than
// rows×cols. Cells that cancel to exact zero are dropped, keeping the
// sparsity invariant intact.

package sparse

import "fmt"

// checkOperands rejects nil operands before any shape inspection.
func checkOperands(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}

// Add returns a + b. Shapes must match exactly, else ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) { return combine(a, b, 1) }

// Sub returns a - b. Shapes must match exactly, else ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) { return combine(a, b, -1) }

// combine merges b into a copy of a with the given sign (+1 add, -1 sub).
// Equivalent to the dense grid walk over every (r,c), but touches only the
// union of the operands' stored cells.
func combine(a, b *Matrix, sign int64) (*Matrix, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("sparse: %dx%d vs %dx%d: %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	out := a.Clone()
	for k, v := range b.cells {
		sum := out.cells[k] + sign*v
		if sum == 0 {
			delete(out.cells, k)
			continue
		}
		out.cells[k] = sum
	}

	return out, nil
}

// Mul returns the matrix product a·b. The inner dimensions must agree
// (a.Cols() == b.Rows()), else ErrDimensionMismatch; the result is
// a.Rows()×b.Cols(). Only non-zero cells of a are visited, and for each
// only the non-zero cells of the matching row of b, so fully sparse
// inputs multiply far below the dense O(r·k·c) bound. Products
// accumulate in int64 and wrap on overflow.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("sparse: inner dimensions %d vs %d: %w",
			a.cols, b.rows, ErrDimensionMismatch)
	}

	// Bucket b's cells by row once so each a-cell scans only the row it needs.
	bRows := make(map[int][]Entry, b.rows)
	for k, v := range b.cells {
		bRows[k.row] = append(bRows[k.row], Entry{Row: k.row, Col: k.col, Val: v})
	}

	acc := make(map[coord]int64)
	for k, av := range a.cells {
		for _, be := range bRows[k.col] {
			acc[coord{k.row, be.Col}] += av * be.Val
		}
	}

	out := &Matrix{rows: a.rows, cols: b.cols, cells: make(map[coord]int64, len(acc))}
	for k, v := range acc {
		if v != 0 { // exact cancellation stays unstored
			out.cells[k] = v
		}
	}

	return out, nil
}
