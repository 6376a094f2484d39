// Package value defines the Scheme value algebra: the tagged variants
// that SelfEvaluating data, Quote data, and Primitive/Compound procedures
// all conform to. It has no dependency on the AST or the evaluator so
// that both can depend on it without a cycle.
package value

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// Type identifies the runtime tag of a Value.
type Type string

const (
	BooleanType   Type = "BOOLEAN"
	IntegerType   Type = "INTEGER"
	FloatType     Type = "FLOAT"
	ComplexType   Type = "COMPLEX"
	StringType    Type = "STRING"
	SymbolType    Type = "SYMBOL"
	PairType      Type = "PAIR"
	ListType      Type = "LIST"
	PrimitiveType Type = "PRIMITIVE"
	CompoundType  Type = "COMPOUND"
)

// Value is any first-class Scheme datum. Concrete types below implement it;
// Primitive and Compound procedures (internal/eval) implement it too.
type Value interface {
	Type() Type
	// String renders the external representation shown to the user.
	String() string
}

// Boolean is #t or #f.
type Boolean bool

func (Boolean) Type() Type { return BooleanType }
func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Integer is an exact host integer.
type Integer int64

func (Integer) Type() Type { return IntegerType }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a host double.
type Float float64

func (Float) Type() Type { return FloatType }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Complex is a host complex128. Its external representation is "a+bi"
// (no parentheses, imaginary unit "i" not "j").
type Complex complex128

func (Complex) Type() Type { return ComplexType }
func (c Complex) String() string {
	re, im := real(c), imag(c)
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s%s%si", formatFloat(re), sign, formatFloat(im))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Abs returns the magnitude of a Complex, exposed for primitives that need it.
func (c Complex) Abs() float64 { return cmplx.Abs(complex128(c)) }

// String is a Scheme string; external representation includes the quotes.
type String string

func (String) Type() Type { return StringType }
func (s String) String() string { return "\"" + string(s) + "\"" }

// Symbol is an interned-by-value identifier datum, distinct from a Go
// string used as an environment key.
type Symbol string

func (Symbol) Type() Type { return SymbolType }
func (s Symbol) String() string { return string(s) }

// Pair is a single cons cell whose cdr is not constrained to be a List.
type Pair struct {
	Car Value
	Cdr Value
}

func (*Pair) Type() Type { return PairType }
func (p *Pair) String() string {
	return fmt.Sprintf("(%s . %s)", p.Car.String(), p.Cdr.String())
}

// List is an ordered, possibly-empty sequence of values, distinguishable
// from Pair. The empty list is a distinct singleton.
type List []Value

func (List) Type() Type { return ListType }
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Empty is the canonical empty-list value; null? tests against it by length.
var Empty = List{}

// IsNull reports whether v is the empty list.
func IsNull(v Value) bool {
	l, ok := v.(List)
	return ok && len(l) == 0
}
