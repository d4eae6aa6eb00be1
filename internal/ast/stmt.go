package ast

import "github.com/cwbudde/go-lox/pkg/token"

func (BlockStmt) stmtNode()      {}
func (ExpressionStmt) stmtNode() {}
func (PrintStmt) stmtNode()      {}
func (VarStmt) stmtNode()        {}
func (IfStmt) stmtNode()         {}
func (WhileStmt) stmtNode()      {}
func (FunctionStmt) stmtNode()   {}
func (ReturnStmt) stmtNode()     {}
func (ClassStmt) stmtNode()      {}

// BlockStmt is a `{ ... }` sequence introducing a new lexical scope.
type BlockStmt struct {
	Stmts []Stmt
}

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its stringified form
// to standard output.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a variable, optionally with an initializer.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

// WhileStmt re-evaluates Condition before every iteration of Body.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function or, reused unmodified for
// method bodies, a class method.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ReturnStmt raises the ReturnSignal control condition.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

// ClassStmt declares a class and its ordered method list.
type ClassStmt struct {
	Name    token.Token
	Methods []*FunctionStmt
}
