// Package lox is the embeddable facade wiring the lexer, parser,
// resolver, and interpreter into three entry points: running a file,
// running the REPL, and running an inline source string. It is a thin
// public API in front of internal/*.
package lox

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/loxerr"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitCompile = 65
	ExitRuntime = 70
)

// Runner drives lexing, parsing, resolving, and interpreting a Lox
// program against a fixed stdout/stderr pair. A single Runner's
// Interpreter persists across calls to Run, so a REPL session shares
// one global environment across lines.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	interp *interp.Interpreter
}

// NewRunner creates a Runner writing program output to stdout and
// diagnostics to stderr.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr, interp: interp.New(stdout)}
}

// Run lexes, parses, resolves, and interprets source, reporting any
// compile or runtime errors to the Runner's stderr. The returned exit
// code is 0 on success, 65 on a lex/parse/resolve error, 70 on a
// runtime error.
func (r *Runner) Run(source string) int {
	l := lexer.New(source)
	tokens := l.ScanTokens()

	p := parser.New(tokens)
	stmts := p.ParseProgram()

	hadError := false
	for _, lexErr := range l.Errors() {
		fmt.Fprintf(r.stderr, "[line %d] Error: %s\n", lexErr.Line, lexErr.Message)
		hadError = true
	}
	for _, parseErr := range p.Errors() {
		r.reportCompileError(parseErr)
		hadError = true
	}
	if hadError {
		return ExitCompile
	}

	res := resolver.New()
	res.Resolve(stmts)
	if len(res.Errors()) > 0 {
		for _, resErr := range res.Errors() {
			r.reportCompileError(resErr)
		}
		return ExitCompile
	}

	r.interp.SetLocals(res.Locals())
	if err := r.interp.Interpret(stmts); err != nil {
		fmt.Fprintln(r.stderr, err.Error())
		return ExitRuntime
	}
	return ExitOK
}

func (r *Runner) reportCompileError(err *loxerr.CompileError) {
	fmt.Fprintln(r.stderr, err.Error())
}

// RunFile reads path and runs it as a standalone script. It returns
// the process exit code.
func RunFile(path string, stdout, stderr io.Writer) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: could not read file '%s'.\n", path)
		return ExitUsage
	}
	return NewRunner(stdout, stderr).Run(string(content))
}

// RunPrompt runs an interactive REPL reading from in and writing to
// stdout/stderr: a "> " prompt, EOF terminates, and a compile error on
// one line does not kill the session; it clears and moves on to the
// next prompt.
func RunPrompt(in io.Reader, stdout, stderr io.Writer) {
	runner := NewRunner(stdout, stderr)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return
		}
		runner.Run(scanner.Text())
	}
}
