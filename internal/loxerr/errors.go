// Package loxerr formats the compiler and runtime errors produced by
// the parser, resolver, and evaluator, in the `[line N] Error<where>:
// <message>` shape every diagnostic uses. Lox's error model is
// single-line: no multi-line source context or carets, just a line
// number.
package loxerr

import "fmt"

// CompileError is a parse-time or resolution-time diagnostic.
// Where is the token-context suffix: "" (line-only), " at end", or
// " at '<lexeme>'".
type CompileError struct {
	Line    int
	Where   string
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// RuntimeError is raised by the evaluator and terminates the current
// script. It is a distinct type from CompileError so the driver can
// tell which exit code to use (65 vs 70) without parsing the message.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// NewRuntimeError constructs a RuntimeError at the given line.
func NewRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
