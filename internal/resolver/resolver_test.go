package resolver

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

func resolveSrc(t *testing.T, src string) (*Resolver, []ast.Stmt) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l.ScanTokens())
	stmts := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	r := New()
	r.Resolve(stmts)
	return r, stmts
}

func TestResolveLocalVariableDistance(t *testing.T) {
	r, stmts := resolveSrc(t, `{ var a = 1; { print a; } }`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Stmts[1].(*ast.BlockStmt)
	printStmt := inner.Stmts[0].(*ast.PrintStmt)
	varExpr := printStmt.Expr.(*ast.VariableExpr)

	dist, ok := r.Locals()[varExpr.ID()]
	if !ok || dist != 1 {
		t.Errorf("distance = %d, ok=%v; want 1, true", dist, ok)
	}
}

func TestResolveGlobalIsNotInLocals(t *testing.T) {
	r, stmts := resolveSrc(t, `var a = 1; print a;`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
	printStmt := stmts[1].(*ast.PrintStmt)
	varExpr := printStmt.Expr.(*ast.VariableExpr)
	if _, ok := r.Locals()[varExpr.ID()]; ok {
		t.Errorf("expected global variable reference to be absent from Locals")
	}
}

func TestResolveSelfInitializerIsError(t *testing.T) {
	r, _ := resolveSrc(t, `{ var a = a; }`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
}

func TestResolveDuplicateLocalIsError(t *testing.T) {
	r, _ := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	r, _ := resolveSrc(t, `return 1;`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
}

func TestResolveReturnValueInInitializerIsError(t *testing.T) {
	r, _ := resolveSrc(t, `class C { init() { return 1; } }`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	r, _ := resolveSrc(t, `print this;`)
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(r.Errors()), r.Errors())
	}
}

func TestResolveThisInsideMethodResolves(t *testing.T) {
	r, _ := resolveSrc(t, `class C { getThis() { return this; } }`)
	if len(r.Errors()) > 0 {
		t.Fatalf("unexpected resolve errors: %v", r.Errors())
	}
}
