package lexer

import (
	"testing"

	"github.com/goscheme/goscheme/internal/token"
)

func TestNext(t *testing.T) {
	input := `(define (add x y) (+ x y)) "hi\n" 'a ,b ,@c`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.ATOM, "define"},
		{token.LPAREN, "("},
		{token.ATOM, "add"},
		{token.ATOM, "x"},
		{token.ATOM, "y"},
		{token.RPAREN, ")"},
		{token.LPAREN, "("},
		{token.ATOM, "+"},
		{token.ATOM, "x"},
		{token.ATOM, "y"},
		{token.RPAREN, ")"},
		{token.RPAREN, ")"},
		{token.STRING, "hi\n"},
		{token.QUOTE, "'"},
		{token.ATOM, "a"},
		{token.UNQUOTE, ","},
		{token.ATOM, "b"},
		{token.UNQUOTE_SPLICE, ",@"},
		{token.ATOM, "c"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestComments(t *testing.T) {
	input := "; a comment\n(foo) ; trailing"
	l := New(input)
	if tok := l.Next(); tok.Type != token.LPAREN {
		t.Fatalf("expected ( after skipping comment, got %s", tok.Type)
	}
}

func TestUnicodeColumns(t *testing.T) {
	input := "(λ x)"
	l := New(input)
	l.Next() // (
	tok := l.Next()
	if tok.Literal != "λ" {
		t.Fatalf("expected λ atom, got %q", tok.Literal)
	}
	if tok.Pos.Column != 2 {
		t.Fatalf("expected column 2, got %d", tok.Pos.Column)
	}
}

func TestDotToken(t *testing.T) {
	input := "(a . b)"
	l := New(input)
	l.Next() // (
	l.Next() // a
	tok := l.Next()
	if tok.Type != token.DOT {
		t.Fatalf("expected DOT, got %s", tok.Type)
	}
}

func TestDotPrefixedAtom(t *testing.T) {
	input := ".5"
	l := New(input)
	tok := l.Next()
	if tok.Type != token.ATOM || tok.Literal != ".5" {
		t.Fatalf("expected atom %q, got %s %q", ".5", tok.Type, tok.Literal)
	}
}
