package eval

import (
	"github.com/goscheme/goscheme/internal/value"
)

// numeric rank: integer, float, complex. Operations promote to the
// highest rank present among their operands; there is no wider tower.
const (
	rankInteger = iota
	rankFloat
	rankComplex
)

func rank(v value.Value) (int, bool) {
	switch v.(type) {
	case value.Integer:
		return rankInteger, true
	case value.Float:
		return rankFloat, true
	case value.Complex:
		return rankComplex, true
	default:
		return 0, false
	}
}

func asComplex(v value.Value) complex128 {
	switch n := v.(type) {
	case value.Integer:
		return complex(float64(n), 0)
	case value.Float:
		return complex(float64(n), 0)
	case value.Complex:
		return complex128(n)
	default:
		return 0
	}
}

func asFloat(v value.Value) float64 {
	switch n := v.(type) {
	case value.Integer:
		return float64(n)
	case value.Float:
		return float64(n)
	default:
		return 0
	}
}

func highestRank(args []value.Value, context string) (int, error) {
	highest := rankInteger
	for _, a := range args {
		r, ok := rank(a)
		if !ok {
			return 0, &TypeError{Context: context, Value: a}
		}
		if r > highest {
			highest = r
		}
	}
	return highest, nil
}

func numericFold(context string, args []value.Value, identity int64,
	foldInt func(a, b int64) int64, foldFloat func(a, b float64) float64, foldComplex func(a, b complex128) complex128,
) (value.Value, error) {
	if len(args) == 0 {
		return value.Integer(identity), nil
	}
	r, err := highestRank(args, context)
	if err != nil {
		return nil, err
	}
	switch r {
	case rankComplex:
		acc := asComplex(args[0])
		for _, a := range args[1:] {
			acc = foldComplex(acc, asComplex(a))
		}
		return value.Complex(acc), nil
	case rankFloat:
		acc := asFloat(args[0])
		for _, a := range args[1:] {
			acc = foldFloat(acc, asFloat(a))
		}
		return value.Float(acc), nil
	default:
		acc := int64(args[0].(value.Integer))
		for _, a := range args[1:] {
			acc = foldInt(acc, int64(a.(value.Integer)))
		}
		return value.Integer(acc), nil
	}
}

// compareOrder implements <, >, <=, >=: relational order is undefined for
// Complex (Non-goal: no full numeric tower), so a Complex operand is a
// TypeError rather than silently comparing real parts.
func compareOrder(context string, args []value.Value, cmp func(a, b float64) bool) (value.Value, error) {
	if len(args) < 2 {
		return value.Boolean(true), nil
	}
	r, err := highestRank(args, context)
	if err != nil {
		return nil, err
	}
	if r == rankComplex {
		return nil, &TypeError{Context: context, Value: args[0]}
	}
	for i := 0; i+1 < len(args); i++ {
		if !cmp(asFloat(args[i]), asFloat(args[i+1])) {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}

// compareEqual implements numeric =, which does admit Complex.
func compareEqual(context string, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Boolean(true), nil
	}
	r, err := highestRank(args, context)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(args); i++ {
		if r == rankComplex {
			if asComplex(args[i]) != asComplex(args[i+1]) {
				return value.Boolean(false), nil
			}
			continue
		}
		if asFloat(args[i]) != asFloat(args[i+1]) {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}

// compareUnequal implements !=: like the other comparisons it holds iff the
// relation holds between every adjacent pair, so (!= 1 1 2) is #f even
// though the three operands are not all equal.
func compareUnequal(context string, args []value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Boolean(true), nil
	}
	r, err := highestRank(args, context)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(args); i++ {
		if r == rankComplex {
			if asComplex(args[i]) == asComplex(args[i+1]) {
				return value.Boolean(false), nil
			}
			continue
		}
		if asFloat(args[i]) == asFloat(args[i+1]) {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}
