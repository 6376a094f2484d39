package eval_test

import (
	"bytes"
	"testing"

	"github.com/goscheme/goscheme/internal/eval"
	"github.com/goscheme/goscheme/internal/parser"
	"github.com/goscheme/goscheme/internal/value"
)

// run evaluates every top-level form in src against a fresh global
// environment and returns the last result.
func run(t *testing.T, src string) value.Value {
	t.Helper()
	p := parser.New(src, "<test>")
	env := eval.NewGlobalEnvironment(&bytes.Buffer{}, parser.DatumAnalyzer{})
	var last value.Value
	for !p.AtEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		v, err := eval.Evaluate(expr, env)
		if err != nil {
			t.Fatalf("eval %q: %v", src, err)
		}
		last = v
	}
	return last
}

func TestSelfEvaluating(t *testing.T) {
	if got := run(t, "42").String(); got != "42" {
		t.Errorf("= %q", got)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(- 10 3 2)", "5"},
		{"(* 2 3 4)", "24"},
		{"(/ 10 2)", "5"},
		{"(/ 1 3)", "0.3333333333333333"},
		{"(- 5)", "-5"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(= 1 1 1)", "#t"},
		{"(> 3 2 1)", "#t"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestIfBranches(t *testing.T) {
	if got := run(t, "(if (< 1 2) 'yes 'no)").String(); got != "yes" {
		t.Errorf("= %q", got)
	}
	if got := run(t, "(if (< 2 1) 'yes 'no)").String(); got != "no" {
		t.Errorf("= %q", got)
	}
	if got := run(t, "(if #f 1)").String(); got != "#f" {
		t.Errorf("missing-alternative if = %q, want #f", got)
	}
}

func TestDefineAndLookup(t *testing.T) {
	if got := run(t, "(define x 10) (+ x 5)").String(); got != "15" {
		t.Errorf("= %q", got)
	}
}

func TestSetMutatesEnclosingScope(t *testing.T) {
	src := `
		(define x 1)
		(define (bump!) (set! x (+ x 1)))
		(bump!)
		(bump!)
		x`
	if got := run(t, src).String(); got != "3" {
		t.Errorf("= %q", got)
	}
}

func TestLambdaAndApplication(t *testing.T) {
	src := "(define (square x) (* x x)) (square 9)"
	if got := run(t, src).String(); got != "81" {
		t.Errorf("= %q", got)
	}
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	src := `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(add5 10)`
	if got := run(t, src).String(); got != "15" {
		t.Errorf("= %q", got)
	}
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	if got := run(t, "(quote (+ 1 2))").String(); got != "(+ 1 2)" {
		t.Errorf("= %q", got)
	}
}

func TestCondDesugaring(t *testing.T) {
	src := `
		(define (classify x)
		  (cond ((< x 0) 'negative)
		        ((= x 0) 'zero)
		        (else 'positive)))
		(list (classify -1) (classify 0) (classify 1))`
	if got := run(t, src).String(); got != "(negative zero positive)" {
		t.Errorf("= %q", got)
	}
}

func TestListAndPairOperations(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(cons 1 (list 2 3))", "(1 2 3)"},
		{"(cons 1 2)", "(1 . 2)"},
		{"(car (list 1 2 3))", "1"},
		{"(cdr (list 1 2 3))", "(2 3)"},
		{"(null? (list))", "#t"},
		{"(null? (list 1))", "#f"},
		{"(pair? (cons 1 2))", "#t"},
		{"(length (list 1 2 3))", "3"},
		{"(append (list 1 2) (list 3 4))", "(1 2 3 4)"},
		{"(reverse (list 1 2 3))", "(3 2 1)"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestApplyPrimitive(t *testing.T) {
	if got := run(t, "(apply + (list 1 2 3))").String(); got != "6" {
		t.Errorf("= %q", got)
	}
}

func TestEvalPrimitive(t *testing.T) {
	if got := run(t, "(eval (list '+ 1 2))").String(); got != "3" {
		t.Errorf("= %q", got)
	}
}

func TestUndefinedIdentifierError(t *testing.T) {
	p := parser.New("undefined-name", "<test>")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	env := eval.NewGlobalEnvironment(&bytes.Buffer{}, parser.DatumAnalyzer{})
	if _, err := eval.Evaluate(expr, env); err == nil {
		t.Fatal("expected an UndefinedIdentifier error")
	} else if _, ok := err.(*eval.UndefinedIdentifier); !ok {
		t.Fatalf("expected *eval.UndefinedIdentifier, got %T", err)
	}
}

func TestApplyNonProcedureError(t *testing.T) {
	p := parser.New("(1 2 3)", "<test>")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	env := eval.NewGlobalEnvironment(&bytes.Buffer{}, parser.DatumAnalyzer{})
	if _, err := eval.Evaluate(expr, env); err == nil {
		t.Fatal("expected an ApplyError")
	} else if _, ok := err.(*eval.ApplyError); !ok {
		t.Fatalf("expected *eval.ApplyError, got %T", err)
	}
}

func TestArityMismatchError(t *testing.T) {
	src := "(define (one-arg x) x) (one-arg 1 2)"
	p := parser.New(src, "<test>")
	env := eval.NewGlobalEnvironment(&bytes.Buffer{}, parser.DatumAnalyzer{})
	var lastErr error
	for !p.AtEOF() {
		expr, err := p.ParseExpression()
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		_, lastErr = eval.Evaluate(expr, env)
	}
	if _, ok := lastErr.(*eval.ArityMismatch); !ok {
		t.Fatalf("expected *eval.ArityMismatch, got %T (%v)", lastErr, lastErr)
	}
}

func TestDeepTailRecursionDoesNotOverflowStack(t *testing.T) {
	src := `
		(define (count-to n acc)
		  (if (= n acc) acc (count-to n (+ acc 1))))
		(count-to 1000000 0)`
	if got := run(t, src).String(); got != "1000000" {
		t.Errorf("= %q, want 1000000", got)
	}
}

func TestLazyParameterNotEvaluatedUnlessUsed(t *testing.T) {
	src := `
		(define (ignore-it (x l)) 'ok)
		(ignore-it (car (list)))`
	// car of an empty list would be a TypeError if forced; the Lazy
	// parameter must never force it since the body never references x.
	if got := run(t, src).String(); got != "ok" {
		t.Errorf("= %q", got)
	}
}

func TestLazyMemoParameterEvaluatesOnce(t *testing.T) {
	src := `
		(define calls 0)
		(define (bump!) (set! calls (+ calls 1)) calls)
		(define (use-twice (x m)) (+ x x))
		(use-twice (bump!))
		calls`
	if got := run(t, src).String(); got != "1" {
		t.Errorf("calls after a single LazyMemo use = %q, want 1", got)
	}
}

func TestNotEqualIsPairwise(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(!= 1 2)", "#t"},
		{"(!= 1 1)", "#f"},
		{"(!= 1 2 1)", "#t"},
		{"(!= 1 1 2)", "#f"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestDivisionFallsThroughToFloat(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(/ 10 4)", "2.5"},
		{"(/ 6 3 2)", "1"},
		{"(/ 10 4 5)", "0.5"},
	}
	for _, tt := range tests {
		if got := run(t, tt.src).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestEvalUsesCurrentEnvironment(t *testing.T) {
	src := `
		(define (local-x) (define x 7) (eval 'x))
		(local-x)`
	if got := run(t, src).String(); got != "7" {
		t.Errorf("= %q, want 7", got)
	}
}

func TestProcedureExternalRepresentation(t *testing.T) {
	if got := run(t, "car").String(); got != "#<primitive procedure>" {
		t.Errorf("primitive = %q", got)
	}
	if got := run(t, "(lambda (x) x)").String(); got != "#<compound procedure>" {
		t.Errorf("compound = %q", got)
	}
}

func TestStrictParameterAlwaysEvaluatesOnce(t *testing.T) {
	src := `
		(define calls 0)
		(define (bump!) (set! calls (+ calls 1)) calls)
		(define (use-twice x) (+ x x))
		(use-twice (bump!))
		calls`
	if got := run(t, src).String(); got != "1" {
		t.Errorf("calls after a single Strict use = %q, want 1", got)
	}
}
