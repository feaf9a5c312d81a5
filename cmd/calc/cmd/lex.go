package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jharlow/unitcalc/internal/lexer"
	"github.com/jharlow/unitcalc/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexExpression bool
	lexShowPos    bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an expression and print the resulting pre-tokens",
	Long: `Tokenize (lex) an expression and print the pre-tokens Tokenize produces,
before groupify resolves words or inserts implicit multiplication.

If no file is provided, reads from stdin. Use -e to tokenize a single
expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVarP(&lexExpression, "expression", "e", false, "tokenize an expression given on the command line")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's source span")
}

func runLex(_ *cobra.Command, args []string) error {
	input, err := readInput(lexExpression, args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(input, token.NewContext())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("tokenize failed")
	}

	for _, t := range toks {
		printToken(t)
	}
	return nil
}

func readInput(expression bool, args []string) (string, error) {
	if expression {
		if len(args) == 0 {
			return "", fmt.Errorf("no expression provided")
		}
		return args[0], nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

func printToken(t token.Token) {
	label := describeToken(t)
	if lexShowPos {
		fmt.Printf("%-24s @%d+%d\n", label, t.Span().Pos, t.Span().Len)
		return
	}
	fmt.Println(label)
}

func describeToken(t token.Token) string {
	switch v := t.(type) {
	case token.PreNumber:
		return fmt.Sprintf("NUMBER %q", v.Digits)
	case token.PreWord:
		return fmt.Sprintf("WORD %q", v.Text)
	case token.PreOperator:
		if v.Name != "" {
			return fmt.Sprintf("OPERATOR %s(%s)", v.Op, v.Name)
		}
		return fmt.Sprintf("OPERATOR %s", v.Op)
	case token.PreGroupStart:
		return "GROUP_START"
	case token.PreGroupEnd:
		return "GROUP_END"
	case token.Quantity:
		return fmt.Sprintf("QUANTITY %s", v.Value)
	case token.Constant:
		return fmt.Sprintf("CONSTANT %s", v.Name)
	default:
		return fmt.Sprintf("%T", t)
	}
}
