package sparse_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spmx/sparse"
)

// TestParseOp covers names, long menu labels, digits, and rejects.
func TestParseOp(t *testing.T) {
	cases := []struct {
		in   string
		want sparse.Op
		err  error
	}{
		{"add", sparse.OpAdd, nil},
		{"Addition", sparse.OpAdd, nil},
		{"1", sparse.OpAdd, nil},
		{"sub", sparse.OpSub, nil},
		{"subtract", sparse.OpSub, nil},
		{"2", sparse.OpSub, nil},
		{"MUL", sparse.OpMul, nil},
		{"multiply", sparse.OpMul, nil},
		{" 3 ", sparse.OpMul, nil},
		{"", 0, sparse.ErrUnknownOp},
		{"4", 0, sparse.ErrUnknownOp},
		{"divide", 0, sparse.ErrUnknownOp},
	}
	for _, tc := range cases {
		got, err := sparse.ParseOp(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseOp(%q) error = %v; want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseOp(%q) = (%v, %v); want (%v, nil)", tc.in, got, err, tc.want)
		}
	}
}

// TestOpString pins the names used in result file naming.
func TestOpString(t *testing.T) {
	pairs := map[sparse.Op]string{
		sparse.OpAdd: "add",
		sparse.OpSub: "sub",
		sparse.OpMul: "mul",
	}
	for op, want := range pairs {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q; want %q", int(op), got, want)
		}
	}
}

// TestApply_Dispatch checks that each Op reaches its operation.
func TestApply_Dispatch(t *testing.T) {
	a, _ := sparse.New(1, 1)
	_ = a.Set(0, 0, 6)
	b, _ := sparse.New(1, 1)
	_ = b.Set(0, 0, 2)

	want := map[sparse.Op]int64{
		sparse.OpAdd: 8,
		sparse.OpSub: 4,
		sparse.OpMul: 12,
	}
	for op, v := range want {
		res, err := sparse.Apply(op, a, b)
		if err != nil {
			t.Fatalf("Apply(%v) error: %v", op, err)
		}
		if got := res.At(0, 0); got != v {
			t.Errorf("Apply(%v) = %d; want %d", op, got, v)
		}
	}
}

// TestApply_UnknownOp rejects values outside the enum.
func TestApply_UnknownOp(t *testing.T) {
	a, _ := sparse.New(1, 1)
	b, _ := sparse.New(1, 1)
	if _, err := sparse.Apply(sparse.Op(99), a, b); !errors.Is(err, sparse.ErrUnknownOp) {
		t.Errorf("Apply(99) error = %v; want ErrUnknownOp", err)
	}
}
