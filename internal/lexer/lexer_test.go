package lexer

import (
	"testing"

	"github.com/cwbudde/go-lox/pkg/token"
)

func TestScanTokensPunctuation(t *testing.T) {
	l := New("(){},.-+;*")
	tokens := l.ScanTokens()

	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS,
		token.SEMICOLON, token.STAR, token.EOF,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, typ)
		}
	}
}

func TestScanTokensTwoCharacterOperators(t *testing.T) {
	l := New("! != = == > >= < <=")
	tokens := l.ScanTokens()

	want := []token.Type{
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, typ)
		}
	}
}

func TestScanTokensKeywordsAndIdent(t *testing.T) {
	l := New("class myVar and false")
	tokens := l.ScanTokens()

	want := []token.Type{token.CLASS, token.IDENT, token.AND, token.FALSE, token.EOF}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, typ)
		}
	}
}

func TestScanTokensNumberLiteral(t *testing.T) {
	l := New("123.45")
	tokens := l.ScanTokens()
	if tokens[0].Type != token.NUMBER {
		t.Fatalf("got %s, want NUMBER", tokens[0].Type)
	}
	if tokens[0].Literal.(float64) != 123.45 {
		t.Errorf("got %v, want 123.45", tokens[0].Literal)
	}
}

func TestScanTokensStringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tokens := l.ScanTokens()
	if tokens[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "hello world" {
		t.Errorf("got %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	l := New(`"oops`)
	l.ScanTokens()
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
}

func TestScanTokensLineTracking(t *testing.T) {
	l := New("var a = 1;\nvar b = 2;")
	tokens := l.ScanTokens()

	var secondVarLine int
	count := 0
	for _, tok := range tokens {
		if tok.Type == token.VAR {
			count++
			if count == 2 {
				secondVarLine = tok.Line
			}
		}
	}
	if secondVarLine != 2 {
		t.Errorf("second var on line %d, want 2", secondVarLine)
	}
}

func TestScanTokensSkipsLineComments(t *testing.T) {
	l := New("// a comment\nvar x = 1;")
	tokens := l.ScanTokens()
	if tokens[0].Type != token.VAR {
		t.Errorf("first token is %s, want VAR (comment should be skipped)", tokens[0].Type)
	}
}

func TestScanTokensIllegalCharacter(t *testing.T) {
	l := New("@")
	tokens := l.ScanTokens()
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		t.Errorf("expected scanning to continue to EOF")
	}
}
