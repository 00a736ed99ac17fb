// File: sparse/example_test.go
package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/spmx/sparse"
)

// ExampleParse demonstrates decoding the textual representation.
// Scenario:
//
//   - Two header lines declare a 2×2 shape.
//   - Two entry lines populate the diagonal.
//   - Everything else is implicitly zero.
func ExampleParse() {
	m, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 5)\n(1, 1, 3)\n")

	fmt.Println("shape:", m.Rows(), "x", m.Cols())
	fmt.Println("stored:", m.NNZ())
	fmt.Println("at(0,0):", m.At(0, 0))
	fmt.Println("at(0,1):", m.At(0, 1))

	// Output:
	// shape: 2 x 2
	// stored: 2
	// at(0,0): 5
	// at(0,1): 0
}

// ExampleApply demonstrates the full parse → operate → serialize pipeline
// with the dispatcher, exactly the contract a CLI or service drives.
func ExampleApply() {
	a, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 5)\n(1, 1, 3)\n")
	b, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 5)\n(1, 1, 3)\n")

	op, _ := sparse.ParseOp("1") // the historical menu digit for addition
	sum, _ := sparse.Apply(op, a, b)

	fmt.Print(sum.Serialize())

	// Output:
	// rows=2
	// cols=2
	// (0, 0, 10)
	// (1, 1, 6)
}

// ExampleMul demonstrates sparse multiplication of rectangular shapes.
func ExampleMul() {
	a, _ := sparse.Parse("rows=2\ncols=3\n(0, 0, 1)\n(0, 2, 2)\n(1, 1, 3)\n")
	b, _ := sparse.Parse("rows=3\ncols=1\n(0, 0, 4)\n(1, 0, 5)\n(2, 0, 6)\n")

	prod, _ := sparse.Mul(a, b)
	fmt.Print(prod.Serialize())

	// Output:
	// rows=2
	// cols=1
	// (0, 0, 16)
	// (1, 0, 15)
}
