package cmd

import (
	"fmt"
	"os"

	"github.com/jharlow/unitcalc/internal/token"
	"github.com/jharlow/unitcalc/pkg/calc"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an expression and print its normalized operator tree",
	Long: `Run the pipeline through Normalize (tokenize, groupify, treeify,
normalize) and print the resulting tree, without evaluating it.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression given on the command line")
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := readInput(parseExpression, args)
	if err != nil {
		return err
	}

	tree, err := calc.ParseNoContext(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parse failed")
	}

	dumpTree(tree, 0)
	return nil
}

func dumpTree(t token.Token, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	switch n := t.(type) {
	case token.OperatorNode:
		if n.Name != "" {
			fmt.Printf("%s%s(%s)\n", prefix, n.Op, n.Name)
		} else {
			fmt.Printf("%s%s\n", prefix, n.Op)
		}
		for _, c := range n.Children {
			dumpTree(c, indent+1)
		}
	case token.Quantity:
		fmt.Printf("%s%s\n", prefix, n.Value)
	case token.Constant:
		fmt.Printf("%s%s\n", prefix, n.Name)
	case token.Variable:
		fmt.Printf("%s%s\n", prefix, n.Name)
	default:
		fmt.Printf("%s%T\n", prefix, t)
	}
}
