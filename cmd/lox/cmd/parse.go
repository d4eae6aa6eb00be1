package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

// parseCmd is a debug subcommand that prints the statement tree a
// program parses to.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file and display its statement tree",
	Long: `Parse Lox source code and display its statement tree.

Use -e to parse an inline expression instead of a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l.ScanTokens())
	stmts := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(65)
	}

	for _, s := range stmts {
		dumpStmt(s, 0)
	}
	return nil
}

func dumpStmt(stmt ast.Stmt, indent int) {
	pad := indentOf(indent)
	switch s := stmt.(type) {
	case *ast.PrintStmt:
		fmt.Printf("%sPrint\n", pad)
	case *ast.ExpressionStmt:
		fmt.Printf("%sExpressionStmt\n", pad)
	case *ast.VarStmt:
		fmt.Printf("%sVar %s\n", pad, s.Name.Lexeme)
	case *ast.BlockStmt:
		fmt.Printf("%sBlock (%d statements)\n", pad, len(s.Stmts))
		for _, inner := range s.Stmts {
			dumpStmt(inner, indent+1)
		}
	case *ast.IfStmt:
		fmt.Printf("%sIf\n", pad)
		dumpStmt(s.Then, indent+1)
		if s.Else != nil {
			dumpStmt(s.Else, indent+1)
		}
	case *ast.WhileStmt:
		fmt.Printf("%sWhile\n", pad)
		dumpStmt(s.Body, indent+1)
	case *ast.FunctionStmt:
		fmt.Printf("%sFunction %s/%d\n", pad, s.Name.Lexeme, len(s.Params))
	case *ast.ReturnStmt:
		fmt.Printf("%sReturn\n", pad)
	case *ast.ClassStmt:
		fmt.Printf("%sClass %s (%d methods)\n", pad, s.Name.Lexeme, len(s.Methods))
	}
}

func indentOf(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "  "
	}
	return s
}
