package cmd

import (
	"fmt"

	"github.com/jharlow/unitcalc/pkg/calc"
	"github.com/spf13/cobra"
)

var substituteExpression bool

var substituteCmd = &cobra.Command{
	Use:   "substitute [file]",
	Short: "Rewrite an expression's common surface shorthands",
	Long: `Apply Substitute's text rewrite table (e.g. "sqrt" -> "√", "pi" -> "π",
"<=" -> "≤") without tokenizing or evaluating the result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubstitute,
}

func init() {
	rootCmd.AddCommand(substituteCmd)
	substituteCmd.Flags().BoolVarP(&substituteExpression, "expression", "e", false, "substitute an expression given on the command line")
}

func runSubstitute(_ *cobra.Command, args []string) error {
	input, err := readInput(substituteExpression, args)
	if err != nil {
		return err
	}
	fmt.Println(calc.New().Substitute(input))
	return nil
}
