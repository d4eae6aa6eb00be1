// Package ast defines the Abstract Syntax Tree node types for Lox.
//
// Every Expr carries a stable identity (ID) assigned once at
// construction by a monotone counter. The resolver keys its
// scope-distance side-table by this identity; cloning a node must
// never mint a new one, and code that rewrites the tree (for-loop
// desugaring, see parser/statements.go) must allocate fresh nodes, and
// therefore fresh identities, rather than copy existing ones.
package ast

import "github.com/cwbudde/go-lox/pkg/token"

var nextID int

func newID() int {
	nextID++
	return nextID
}

// Expr is any node that produces a value.
type Expr interface {
	ID() int
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	stmtNode()
}

type exprBase struct {
	id int
}

func (e exprBase) ID() int   { return e.id }
func (exprBase) exprNode()   {}

func newExprBase() exprBase {
	return exprBase{id: newID()}
}

// LiteralExpr holds a literal's already-decoded value: nil, bool,
// float64, or string.
type LiteralExpr struct {
	exprBase
	Value interface{}
}

func NewLiteralExpr(value interface{}) *LiteralExpr {
	return &LiteralExpr{exprBase: newExprBase(), Value: value}
}

// LogicalExpr is `and`/`or`, which short-circuit.
type LogicalExpr struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewLogicalExpr(left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// UnaryExpr is `!x` or `-x`.
type UnaryExpr struct {
	exprBase
	Op    token.Token
	Right Expr
}

func NewUnaryExpr(op token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: newExprBase(), Op: op, Right: right}
}

// BinaryExpr is an arithmetic, comparison, or equality operator.
type BinaryExpr struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

func NewBinaryExpr(left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: newExprBase(), Left: left, Op: op, Right: right}
}

// CallExpr is a function or method call. Paren is the closing `)`,
// kept for its line number when reporting arity errors.
type CallExpr struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCallExpr(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	exprBase
	Inner Expr
}

func NewGroupingExpr(inner Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: newExprBase(), Inner: inner}
}

// VariableExpr reads a named variable.
type VariableExpr struct {
	exprBase
	Name token.Token
}

func NewVariableExpr(name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: newExprBase(), Name: name}
}

// AssignExpr assigns to a named variable.
type AssignExpr struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssignExpr(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: newExprBase(), Name: name, Value: value}
}

// GetExpr reads a property off an instance.
type GetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGetExpr(object Expr, name token.Token) *GetExpr {
	return &GetExpr{exprBase: newExprBase(), Object: object, Name: name}
}

// SetExpr writes a property on an instance.
type SetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSetExpr(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

// ThisExpr resolves to the receiver inside a method body.
type ThisExpr struct {
	exprBase
	Keyword token.Token
}

func NewThisExpr(keyword token.Token) *ThisExpr {
	return &ThisExpr{exprBase: newExprBase(), Keyword: keyword}
}
