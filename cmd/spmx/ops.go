package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spmx/sparse"
)

func init() {
	rootCmd.AddCommand(
		newOpCommand(sparse.OpAdd, "add", "Add two sparse matrices"),
		newOpCommand(sparse.OpSub, "sub", "Subtract the second sparse matrix from the first"),
		newOpCommand(sparse.OpMul, "mul", "Multiply two sparse matrices"),
	)
}

// newOpCommand builds one "spmx <op> <matrixA> <matrixB>" subcommand.
func newOpCommand(op sparse.Op, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <matrixA> <matrixB>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(op, args[0], args[1])
		},
	}
}

// runOp parses both input files, applies op, and writes the derived
// result file under the configured output directory.
func runOp(op sparse.Op, firstPath, secondPath string) error {
	a, err := loadMatrix(firstPath)
	if err != nil {
		return err
	}
	b, err := loadMatrix(secondPath)
	if err != nil {
		return err
	}

	result, err := sparse.Apply(op, a, b)
	if err != nil {
		return err
	}

	outPath := filepath.Join(viper.GetString("output_dir"), resultFileName(op, firstPath, secondPath))
	if err = writeMatrix(result, outPath); err != nil {
		return err
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("%s: wrote %s (%d non-zero cells)", op, outPath, result.NNZ())))

	return nil
}

// codecOptions translates CLI configuration into core codec options.
func codecOptions() []sparse.Option {
	if viper.GetBool("strict_header") {
		return []sparse.Option{sparse.WithStrictHeader()}
	}
	return nil
}

// loadMatrix parses one matrix file through the core codec.
func loadMatrix(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := sparse.ParseReader(f, codecOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// writeMatrix creates the output directory if needed and serializes m.
func writeMatrix(m *sparse.Matrix, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err = m.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// resultFileName derives "result_<op>_<file1>_<file2>" from the input
// base names, mirroring the historical naming scheme.
func resultFileName(op sparse.Op, firstPath, secondPath string) string {
	return fmt.Sprintf("result_%s_%s_%s", op, filepath.Base(firstPath), filepath.Base(secondPath))
}
