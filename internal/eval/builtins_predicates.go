package eval

import "github.com/goscheme/goscheme/internal/value"

func installPredicates(env *Environment) {
	env.Define("not", &Primitive{Name: "not", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "not", Expected: 1, Got: len(args)}
		}
		return value.Boolean(!isTruthy(args[0])), nil
	}})

	env.Define("eq?", &Primitive{Name: "eq?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 2 {
			return nil, &ArityMismatch{Context: "eq?", Expected: 2, Got: len(args)}
		}
		return value.Boolean(identical(args[0], args[1])), nil
	}})

	env.Define("eqv?", &Primitive{Name: "eqv?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 2 {
			return nil, &ArityMismatch{Context: "eqv?", Expected: 2, Got: len(args)}
		}
		return value.Boolean(equalValues(args[0], args[1])), nil
	}})

	env.Define("equal?", &Primitive{Name: "equal?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 2 {
			return nil, &ArityMismatch{Context: "equal?", Expected: 2, Got: len(args)}
		}
		return value.Boolean(equalValues(args[0], args[1])), nil
	}})

	env.Define("procedure?", &Primitive{Name: "procedure?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "procedure?", Expected: 1, Got: len(args)}
		}
		_, ok := args[0].(Procedure)
		return value.Boolean(ok), nil
	}})

	env.Define("number?", &Primitive{Name: "number?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "number?", Expected: 1, Got: len(args)}
		}
		_, ok := rank(args[0])
		return value.Boolean(ok), nil
	}})

	env.Define("symbol?", &Primitive{Name: "symbol?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "symbol?", Expected: 1, Got: len(args)}
		}
		_, ok := args[0].(value.Symbol)
		return value.Boolean(ok), nil
	}})

	env.Define("string?", &Primitive{Name: "string?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "string?", Expected: 1, Got: len(args)}
		}
		_, ok := args[0].(value.String)
		return value.Boolean(ok), nil
	}})

	env.Define("boolean?", &Primitive{Name: "boolean?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "boolean?", Expected: 1, Got: len(args)}
		}
		_, ok := args[0].(value.Boolean)
		return value.Boolean(ok), nil
	}})
}

// identical is eq?: pointer identity for the reference types (Pair,
// Primitive, Compound), value identity for everything else. Two distinct
// List slices with the same contents are not eq? even though they are
// equal? — identity is distinct from structural equality.
func identical(a, b value.Value) bool {
	switch av := a.(type) {
	case *value.Pair:
		bv, ok := b.(*value.Pair)
		return ok && av == bv
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av == bv
	case *Compound:
		bv, ok := b.(*Compound)
		return ok && av == bv
	case value.List:
		// Lists are slices, not comparable with ==; two lists are eq?
		// only when both are the empty list (the one List singleton) —
		// distinct non-empty lists are never identical even with equal
		// contents, since eq? is identity, not structural equality.
		bv, ok := b.(value.List)
		return ok && len(av) == 0 && len(bv) == 0
	default:
		return equalScalar(a, b)
	}
}

// equalValues is equal?/eqv?: deep structural equality over lists and
// pairs, scalar equality otherwise. This core makes no distinction
// between eqv? and equal? beyond what identical already covers for
// references, since it has no mutable compound data wider than pairs and
// lists.
func equalValues(a, b value.Value) bool {
	switch av := a.(type) {
	case value.List:
		bv, ok := b.(value.List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *value.Pair:
		bv, ok := b.(*value.Pair)
		return ok && equalValues(av.Car, bv.Car) && equalValues(av.Cdr, bv.Cdr)
	default:
		return equalScalar(a, b)
	}
}

func equalScalar(a, b value.Value) bool {
	if ra, ok := rank(a); ok {
		if rb, ok := rank(b); ok {
			if ra == rankComplex || rb == rankComplex {
				return asComplex(a) == asComplex(b)
			}
			return asFloat(a) == asFloat(b)
		}
		return false
	}
	switch av := a.(type) {
	case value.Boolean:
		bv, ok := b.(value.Boolean)
		return ok && av == bv
	case value.String:
		bv, ok := b.(value.String)
		return ok && av == bv
	case value.Symbol:
		bv, ok := b.(value.Symbol)
		return ok && av == bv
	default:
		return a == b
	}
}
