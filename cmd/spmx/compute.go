package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spmx/sparse"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Interactive operation menu over two matrix files",
	Long: `compute reproduces the classic prompt loop: it shows the operation
menu, reads a choice, applies it to the two configured input files, and
writes the result under the output directory. A failed operation is
reported once and the menu is shown again; the same input is never
retried automatically.`,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().String("first", "matrix1.txt", "first input matrix file")
	computeCmd.Flags().String("second", "matrix2.txt", "second input matrix file")
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, _ []string) error {
	firstPath, _ := cmd.Flags().GetString("first")
	secondPath, _ := cmd.Flags().GetString("second")

	in := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Println(menuStyle.Render(strings.Join([]string{
			"Select a matrix operation:",
			"  1. Matrix Addition",
			"  2. Matrix Subtraction",
			"  3. Matrix Multiplication",
			"  q. Quit",
		}, "\n")))
		fmt.Print("Enter your choice (1/2/3/q): ")

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return nil
			}
			return err
		}
		choice := strings.TrimSpace(line)
		if choice == "q" || choice == "quit" {
			return nil
		}

		op, parseErr := sparse.ParseOp(choice)
		if parseErr != nil {
			fmt.Println(errStyle.Render("Invalid input. Please select 1, 2, 3 or q."))
			continue
		}
		if opErr := runOp(op, firstPath, secondPath); opErr != nil {
			fmt.Println(errStyle.Render(opErr.Error()))
		}
	}
}
