// Package resolver performs a single static pass: a depth-first walk
// over the parsed statement list that, for every variable and `this`
// reference, counts how many enclosing block scopes separate the use
// from its declaration and records that distance for the evaluator.
package resolver

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/loxerr"
	"github.com/cwbudde/go-lox/pkg/token"
)

type functionKind int

const (
	functionNone functionKind = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
)

// scope maps a name declared in one block to whether its initializer
// has finished running yet. A name present but false is "declared but
// not yet defined", used to catch `var a = a;`.
type scope map[string]bool

// Resolver performs the static resolution pass. Construct with New,
// run Resolve once per program, then read Locals for the evaluator's
// side-table.
type Resolver struct {
	scopes          []scope
	locals          map[int]int
	errors          []*loxerr.CompileError
	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver ready to walk a freshly parsed program.
func New() *Resolver {
	return &Resolver{locals: make(map[int]int)}
}

// Errors returns every resolution error collected during Resolve.
func (r *Resolver) Errors() []*loxerr.CompileError {
	return r.errors
}

// Locals returns the expression-id-to-scope-distance side-table built
// by Resolve. An expression id absent from this map was not resolved
// to a local scope and must be looked up in the global environment.
func (r *Resolver) Locals() map[int]int {
	return r.locals
}

// Resolve walks the full statement list once.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present in the innermost scope but not yet
// initialized, reporting an error if that scope already has a local of
// the same name: redeclaring a name already declared in the same
// block is an error.
func (r *Resolver) declare(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, ok := sc[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = true
}

// resolveLocal walks outward from the innermost scope looking for
// name, recording the hop count (0 = innermost) against exprID. No
// entry is recorded if name is never found in any scope; the
// evaluator then treats it as global.
func (r *Resolver) resolveLocal(exprID int, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	where := " at '" + tok.Lexeme + "'"
	r.errors = append(r.errors, &loxerr.CompileError{Line: tok.Line, Where: where, Message: message})
}
