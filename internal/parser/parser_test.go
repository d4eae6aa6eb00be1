package parser

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	l := lexer.New(src)
	p := New(l.ScanTokens())
	stmts := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return stmts
}

func TestParsePrintStatement(t *testing.T) {
	stmts := parse(t, `print 1 + 2;`)
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	printStmt, ok := stmts[0].(*ast.PrintStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.PrintStmt", stmts[0])
	}
	bin, ok := printStmt.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpr", printStmt.Expr)
	}
	if bin.Left.(*ast.LiteralExpr).Value != 1.0 {
		t.Errorf("left operand = %v, want 1", bin.Left.(*ast.LiteralExpr).Value)
	}
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parse(t, `var a = "hi";`)
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.VarStmt", stmts[0])
	}
	if v.Name.Lexeme != "a" {
		t.Errorf("name = %q, want a", v.Name.Lexeme)
	}
	if v.Initializer.(*ast.LiteralExpr).Value != "hi" {
		t.Errorf("initializer = %v, want hi", v.Initializer.(*ast.LiteralExpr).Value)
	}
}

func TestParseClassWithMethods(t *testing.T) {
	stmts := parse(t, `class Point { init(x) { this.x = x; } getX() { return this.x; } }`)
	cls, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[0])
	}
	if len(cls.Methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(cls.Methods))
	}
	if cls.Methods[0].Name.Lexeme != "init" {
		t.Errorf("first method = %q, want init", cls.Methods[0].Name.Lexeme)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt", stmts[0])
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2", len(block.Stmts))
	}
	if _, ok := block.Stmts[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement = %T, want *ast.VarStmt", block.Stmts[0])
	}
	whileStmt, ok := block.Stmts[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement = %T, want *ast.WhileStmt", block.Stmts[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok || len(body.Stmts) != 2 {
		t.Fatalf("while body not desugared to [print; increment]: %#v", whileStmt.Body)
	}
}

func TestParseForWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts := parse(t, `for (;;) print 1;`)
	block := stmts[0].(*ast.BlockStmt)
	whileStmt := block.Stmts[0].(*ast.WhileStmt)
	lit, ok := whileStmt.Condition.(*ast.LiteralExpr)
	if !ok || lit.Value != true {
		t.Errorf("missing for-condition should desugar to literal true, got %#v", whileStmt.Condition)
	}
}

func TestParseInvalidAssignmentTargetReportsErrorButContinues(t *testing.T) {
	l := lexer.New(`1 = 2; print "after";`)
	p := New(l.ScanTokens())
	stmts := p.ParseProgram()
	if len(p.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(p.Errors()), p.Errors())
	}
	found := false
	for _, s := range stmts {
		if _, ok := s.(*ast.PrintStmt); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("parsing should continue after the invalid assignment target")
	}
}

func TestParseArityLimitReportsErrorButContinues(t *testing.T) {
	src := "fun f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + string(rune('A'+i%26))
	}
	src += ") {}"

	l := lexer.New(src)
	p := New(l.ScanTokens())
	stmts := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected an arity-limit error")
	}
	if len(stmts) != 1 {
		t.Errorf("got %d statements, want the function declaration still parsed", len(stmts))
	}
}

func TestParseExpressionIdentityIsStable(t *testing.T) {
	stmts := parse(t, `print 1;`)
	printStmt := stmts[0].(*ast.PrintStmt)
	id1 := printStmt.Expr.ID()
	id2 := printStmt.Expr.ID()
	if id1 != id2 {
		t.Errorf("expression id changed across calls: %d vs %d", id1, id2)
	}
}
