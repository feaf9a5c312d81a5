package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jharlow/unitcalc/pkg/calc"
	"github.com/spf13/cobra"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate one or more expressions and print the resulting quantity",
	Long: `Evaluate expressions through the full pipeline (tokenize, groupify,
treeify, normalize, evaluate) and print each result.

Examples:
  # Evaluate a single inline expression
  calc eval -e "3 ft to m"

  # Evaluate each line of a file, sharing variable definitions across lines
  calc eval script.calc

  # Evaluate each line of stdin
  echo "x := 5" | calc eval`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate a single inline expression instead of reading lines")
}

func runEval(_ *cobra.Command, args []string) error {
	engine := calc.New()

	if evalExpr != "" {
		return evalLine(engine, evalExpr)
	}

	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	failures := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := evalLine(engine, line); err != nil {
			failures++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	if failures > 0 {
		return fmt.Errorf("%d expression(s) failed", failures)
	}
	return nil
}

func evalLine(engine *calc.Engine, line string) error {
	out, err := engine.EvalString(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return err
	}
	fmt.Println(out)
	return nil
}
