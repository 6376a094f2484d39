package ast

import (
	"testing"

	"github.com/goscheme/goscheme/internal/value"
)

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{Strict, "s"},
		{Lazy, "l"},
		{LazyMemo, "m"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestParameterString(t *testing.T) {
	if got := (Parameter{Name: "x", Strategy: Strict}).String(); got != "x" {
		t.Errorf("strict param = %q", got)
	}
	if got := (Parameter{Name: "x", Strategy: Lazy}).String(); got != "(x l)" {
		t.Errorf("lazy param = %q", got)
	}
}

func TestIfStringWithAndWithoutAlternative(t *testing.T) {
	withAlt := &If{
		Predicate:   &Identifier{Name: "p"},
		Consequent:  &Identifier{Name: "c"},
		Alternative: &Identifier{Name: "a"},
	}
	if got := withAlt.String(); got != "(if p c a)" {
		t.Errorf("= %q", got)
	}

	withoutAlt := &If{Predicate: &Identifier{Name: "p"}, Consequent: &Identifier{Name: "c"}}
	if got := withoutAlt.String(); got != "(if p c)" {
		t.Errorf("= %q", got)
	}
}

func TestQuoteString(t *testing.T) {
	q := &Quote{Datum: value.List{value.Integer(1), value.Integer(2)}}
	if got := q.String(); got != "(quote (1 2))" {
		t.Errorf("= %q", got)
	}
}

func TestApplicationString(t *testing.T) {
	app := &Application{
		Operator: &Identifier{Name: "+"},
		Operands: []Expression{&Identifier{Name: "x"}, &Identifier{Name: "y"}},
	}
	if got := app.String(); got != "(+ x y)" {
		t.Errorf("= %q", got)
	}
}
