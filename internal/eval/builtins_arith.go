package eval

import "github.com/goscheme/goscheme/internal/value"

func installArithmetic(env *Environment) {
	env.Define("+", &Primitive{Name: "+", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return numericFold("+", args, 0,
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b },
			func(a, b complex128) complex128 { return a + b })
	}})

	env.Define("*", &Primitive{Name: "*", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return numericFold("*", args, 1,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b },
			func(a, b complex128) complex128 { return a * b })
	}})

	env.Define("-", &Primitive{Name: "-", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) == 0 {
			return nil, &ArityMismatch{Context: "-", Expected: 1, Got: 0}
		}
		if len(args) == 1 {
			return negate(args[0])
		}
		return numericFold("-", args, 0,
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b },
			func(a, b complex128) complex128 { return a - b })
	}})

	env.Define("/", &Primitive{Name: "/", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) == 0 {
			return nil, &ArityMismatch{Context: "/", Expected: 1, Got: 0}
		}
		if len(args) == 1 {
			args = []value.Value{value.Integer(1), args[0]}
		}
		r, err := highestRank(args, "/")
		if err != nil {
			return nil, err
		}
		if r == rankInteger {
			// Integer division only stays exact when every step divides
			// evenly; otherwise redo the whole chain as float division.
			acc := args[0].(value.Integer)
			exact := true
			for _, a := range args[1:] {
				d := a.(value.Integer)
				if d == 0 {
					return nil, &TypeError{Context: "/: division by zero", Value: a}
				}
				if acc%d != 0 {
					exact = false
					break
				}
				acc /= d
			}
			if exact {
				return acc, nil
			}
			f := asFloat(args[0])
			for _, a := range args[1:] {
				f /= asFloat(a)
			}
			return value.Float(f), nil
		}
		return numericFold("/", args, 1,
			func(a, b int64) int64 { return a / b },
			func(a, b float64) float64 { return a / b },
			func(a, b complex128) complex128 { return a / b })
	}})

	env.Define("=", &Primitive{Name: "=", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return compareEqual("=", args)
	}})
	env.Define("!=", &Primitive{Name: "!=", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return compareUnequal("!=", args)
	}})
	env.Define("<", &Primitive{Name: "<", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return compareOrder("<", args, func(a, b float64) bool { return a < b })
	}})
	env.Define(">", &Primitive{Name: ">", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return compareOrder(">", args, func(a, b float64) bool { return a > b })
	}})
	env.Define("<=", &Primitive{Name: "<=", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return compareOrder("<=", args, func(a, b float64) bool { return a <= b })
	}})
	env.Define(">=", &Primitive{Name: ">=", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		return compareOrder(">=", args, func(a, b float64) bool { return a >= b })
	}})

	env.Define("abs", &Primitive{Name: "abs", Fn: func(args []value.Value, _ *Environment) (value.Value, error) {
		if len(args) != 1 {
			return nil, &ArityMismatch{Context: "abs", Expected: 1, Got: len(args)}
		}
		switch n := args[0].(type) {
		case value.Integer:
			if n < 0 {
				return -n, nil
			}
			return n, nil
		case value.Float:
			if n < 0 {
				return -n, nil
			}
			return n, nil
		case value.Complex:
			return value.Float(n.Abs()), nil
		default:
			return nil, &TypeError{Context: "abs", Value: args[0]}
		}
	}})
}

func negate(v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case value.Integer:
		return -n, nil
	case value.Float:
		return -n, nil
	case value.Complex:
		return -n, nil
	default:
		return nil, &TypeError{Context: "-", Value: v}
	}
}
