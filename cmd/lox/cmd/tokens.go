package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var evalExpr string

// tokensCmd is a debug subcommand that scans a program and prints its
// token stream.
var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Lox file or expression",
	Long: `Tokenize (scan) a Lox program and print the resulting token stream.

Examples:
  lox tokens script.lox
  lox tokens -e "var x = 1;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func runTokens(_ *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	tokens := l.ScanTokens()
	for _, tok := range tokens {
		fmt.Printf("[%-12s] %q @%d\n", tok.Type, tok.Lexeme, tok.Line)
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Line, e.Message)
		}
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}
	return nil
}

// readSource picks up source either from the -e flag or from the
// first positional file argument.
func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
