package eval

import "github.com/goscheme/goscheme/internal/value"

func installLists(env *Environment) {
	env.Define("cons", &Primitive{Name: "cons", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 2 {
			return nil, &ArityMismatch{Context: "cons", Expected: 2, Got: len(args)}
		}
		return cons(args[0], args[1]), nil
	}})

	env.Define("car", &Primitive{Name: "car", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "car", Expected: 1, Got: len(args)}
		}
		switch v := args[0].(type) {
		case *value.Pair:
			return v.Car, nil
		case value.List:
			if len(v) == 0 {
				return nil, &TypeError{Context: "car: empty list", Value: v}
			}
			return v[0], nil
		default:
			return nil, &TypeError{Context: "car", Value: args[0]}
		}
	}})

	env.Define("cdr", &Primitive{Name: "cdr", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "cdr", Expected: 1, Got: len(args)}
		}
		switch v := args[0].(type) {
		case *value.Pair:
			return v.Cdr, nil
		case value.List:
			if len(v) == 0 {
				return nil, &TypeError{Context: "cdr: empty list", Value: v}
			}
			return v[1:], nil
		default:
			return nil, &TypeError{Context: "cdr", Value: args[0]}
		}
	}})

	env.Define("list", &Primitive{Name: "list", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if args == nil {
			return value.Empty, nil
		}
		return value.List(append([]value.Value{}, args...)), nil
	}})

	env.Define("append", &Primitive{Name: "append", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		var result value.List
		for _, a := range args {
			l, ok := a.(value.List)
			if !ok {
				return nil, &TypeError{Context: "append", Value: a}
			}
			result = append(result, l...)
		}
		if result == nil {
			return value.Empty, nil
		}
		return result, nil
	}})

	env.Define("length", &Primitive{Name: "length", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "length", Expected: 1, Got: len(args)}
		}
		l, ok := args[0].(value.List)
		if !ok {
			return nil, &TypeError{Context: "length", Value: args[0]}
		}
		return value.Integer(len(l)), nil
	}})

	env.Define("reverse", &Primitive{Name: "reverse", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "reverse", Expected: 1, Got: len(args)}
		}
		l, ok := args[0].(value.List)
		if !ok {
			return nil, &TypeError{Context: "reverse", Value: args[0]}
		}
		out := make(value.List, len(l))
		for i, v := range l {
			out[len(l)-1-i] = v
		}
		return out, nil
	}})

	env.Define("pair?", &Primitive{Name: "pair?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "pair?", Expected: 1, Got: len(args)}
		}
		switch v := args[0].(type) {
		case *value.Pair:
			return value.Boolean(true), nil
		case value.List:
			return value.Boolean(len(v) > 0), nil
		default:
			return value.Boolean(false), nil
		}
	}})

	env.Define("null?", &Primitive{Name: "null?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "null?", Expected: 1, Got: len(args)}
		}
		return value.Boolean(value.IsNull(args[0])), nil
	}})

	env.Define("list?", &Primitive{Name: "list?", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "list?", Expected: 1, Got: len(args)}
		}
		_, ok := args[0].(value.List)
		return value.Boolean(ok), nil
	}})
}

// cons builds a Pair in the general case, but prepending to a proper List
// (including the empty list) yields a proper List rather than a Pair
// wrapping one: a chain of cons cells ending in '() is itself a List, not
// nested Pairs.
func cons(car, cdr value.Value) value.Value {
	if l, ok := cdr.(value.List); ok {
		out := make(value.List, 0, len(l)+1)
		out = append(out, car)
		out = append(out, l...)
		return out
	}
	return &value.Pair{Car: car, Cdr: cdr}
}
