package parser

import (
	"testing"

	"github.com/goscheme/goscheme/internal/ast"
)

func parseOne(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := New(src, "<test>")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return expr
}

func TestParseSelfEvaluating(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"3.5", "3.5"},
		{`"hello"`, `"hello"`},
	}
	for _, tt := range tests {
		expr := parseOne(t, tt.src)
		if _, ok := expr.(*ast.SelfEvaluating); !ok {
			t.Fatalf("%q: expected SelfEvaluating, got %T", tt.src, expr)
		}
		if got := expr.String(); got != tt.want {
			t.Errorf("%q: String() = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	expr := parseOne(t, "x")
	id, ok := expr.(*ast.Identifier)
	if !ok || id.Name != "x" {
		t.Fatalf("expected Identifier(x), got %#v", expr)
	}
}

func TestParseQuote(t *testing.T) {
	expr := parseOne(t, "'(1 2 3)")
	q, ok := expr.(*ast.Quote)
	if !ok {
		t.Fatalf("expected Quote, got %T", expr)
	}
	if q.Datum.String() != "(1 2 3)" {
		t.Errorf("Datum.String() = %q", q.Datum.String())
	}
}

func TestParseQuoteShorthandWithSpecialFormKeywordHead(t *testing.T) {
	// 'x reads with the datum grammar: a quoted list whose first symbol
	// happens to spell a special form keyword is still just a list of
	// symbols, the same as (quote (if a b)).
	expr := parseOne(t, "'(if a b)")
	q, ok := expr.(*ast.Quote)
	if !ok {
		t.Fatalf("expected Quote, got %T", expr)
	}
	if got := q.Datum.String(); got != "(if a b)" {
		t.Errorf("Datum.String() = %q, want (if a b)", got)
	}
}

func TestParseDottedPairQuote(t *testing.T) {
	expr := parseOne(t, "'(1 . 2)")
	q := expr.(*ast.Quote)
	if q.Datum.String() != "(1 . 2)" {
		t.Errorf("Datum.String() = %q", q.Datum.String())
	}
}

func TestParseQuasiquoteIsApplication(t *testing.T) {
	expr := parseOne(t, "`x")
	app, ok := expr.(*ast.Application)
	if !ok {
		t.Fatalf("expected Application, got %T", expr)
	}
	if op, ok := app.Operator.(*ast.Identifier); !ok || op.Name != "quasiquote" {
		t.Fatalf("expected operator quasiquote, got %#v", app.Operator)
	}
}

func TestParseDefinitionShorthand(t *testing.T) {
	expr := parseOne(t, "(define (add x y) (+ x y))")
	def, ok := expr.(*ast.Definition)
	if !ok || def.Name != "add" {
		t.Fatalf("expected Definition(add), got %#v", expr)
	}
	lambda, ok := def.Value.(*ast.Lambda)
	if !ok || len(lambda.Parameters) != 2 {
		t.Fatalf("expected 2-parameter Lambda, got %#v", def.Value)
	}
}

func TestParseLambdaStrategies(t *testing.T) {
	expr := parseOne(t, "(lambda (x (y l) (z m)) x)")
	lambda := expr.(*ast.Lambda)
	want := []ast.Strategy{ast.Strict, ast.Lazy, ast.LazyMemo}
	for i, p := range lambda.Parameters {
		if p.Strategy != want[i] {
			t.Errorf("parameter %d: strategy = %v, want %v", i, p.Strategy, want[i])
		}
	}
}

func TestParseIf(t *testing.T) {
	expr := parseOne(t, "(if #t 1 2)")
	ifExpr, ok := expr.(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %T", expr)
	}
	if ifExpr.Alternative == nil {
		t.Fatal("expected non-nil Alternative")
	}
}

func TestParseIfNoAlternative(t *testing.T) {
	expr := parseOne(t, "(if #t 1)")
	ifExpr := expr.(*ast.If)
	if ifExpr.Alternative != nil {
		t.Fatalf("expected nil Alternative, got %#v", ifExpr.Alternative)
	}
}

func TestParseCondDesugarsToNestedIf(t *testing.T) {
	expr := parseOne(t, "(cond ((< x 0) 'neg) ((> x 0) 'pos) (else 'zero))")
	ifExpr, ok := expr.(*ast.If)
	if !ok {
		t.Fatalf("expected cond to desugar to If, got %T", expr)
	}
	inner, ok := ifExpr.Alternative.(*ast.If)
	if !ok {
		t.Fatalf("expected nested If as second clause, got %T", ifExpr.Alternative)
	}
	if _, ok := inner.Alternative.(*ast.Quote); !ok {
		t.Fatalf("expected else clause to be the final alternative, got %T", inner.Alternative)
	}
}

func TestParseBegin(t *testing.T) {
	expr := parseOne(t, "(begin 1 2 3)")
	begin, ok := expr.(*ast.Begin)
	if !ok || len(begin.Sequence) != 3 {
		t.Fatalf("expected 3-element Begin, got %#v", expr)
	}
}

func TestParseApplication(t *testing.T) {
	expr := parseOne(t, "(f 1 2)")
	app, ok := expr.(*ast.Application)
	if !ok || len(app.Operands) != 2 {
		t.Fatalf("expected 2-operand Application, got %#v", expr)
	}
}

func TestParseProgramMultipleForms(t *testing.T) {
	p := New("(define x 1) (define y 2) (+ x y)", "<test>")
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}
	if len(program) != 3 {
		t.Fatalf("expected 3 top-level forms, got %d", len(program))
	}
}

func TestParseErrorUnmatchedParen(t *testing.T) {
	p := New("(+ 1 2", "<test>")
	if _, err := p.ParseExpression(); err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestParseErrorUnknownStrategyTag(t *testing.T) {
	p := New("(lambda ((x q)) x)", "<test>")
	if _, err := p.ParseExpression(); err == nil {
		t.Fatal("expected an error for an unknown strategy tag")
	}
}
