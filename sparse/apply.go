// SPDX-License-Identifier: MIT

// Package sparse - operation dispatch.
//
// Apply decouples "which operation" from terminal and file concerns: a
// caller resolves an Op once (ParseOp accepts both names and the 1/2/3
// menu digits of the historical prompt) and hands it two matrices.

package sparse

import (
	"fmt"
	"strings"
)

// Op selects one of the three binary operations.
type Op int

const (
	// OpAdd requests element-wise addition.
	OpAdd Op = iota + 1
	// OpSub requests element-wise subtraction.
	OpSub
	// OpMul requests matrix multiplication.
	OpMul
)

// String returns the short lowercase name, also used in result file naming.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// ParseOp resolves s into an Op. It accepts operation names ("add",
// "sub"/"subtract", "mul"/"multiply", plus the long menu labels) and the
// menu digits "1", "2", "3"; anything else returns ErrUnknownOp.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition":
		return OpAdd, nil
	case "2", "sub", "subtract", "subtraction":
		return OpSub, nil
	case "3", "mul", "multiply", "multiplication":
		return OpMul, nil
	default:
		return 0, fmt.Errorf("sparse: %q: %w", s, ErrUnknownOp)
	}
}

// Apply runs op over (a, b) and returns the freshly allocated result.
// Unrecognized ops return ErrUnknownOp.
func Apply(op Op, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	default:
		return nil, fmt.Errorf("sparse: op %d: %w", int(op), ErrUnknownOp)
	}
}
