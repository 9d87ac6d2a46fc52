// Package dual implements first-order forward-mode dual numbers, the
// derivative-carrying working type for expression evaluation.
package dual

import "math"

// Number carries a value and the derivative of that value with respect
// to a single chosen variable.
type Number struct {
	Val float64
	Der float64
}

// Variable returns v seeded as the differentiation variable (dv/dv = 1).
func Variable(v float64) Number {
	return Number{Val: v, Der: 1}
}

// Constant returns v with zero derivative.
func Constant(v float64) Number {
	return Number{Val: v}
}

func Add(a, b Number) Number {
	return Number{Val: a.Val + b.Val, Der: a.Der + b.Der}
}

func Sub(a, b Number) Number {
	return Number{Val: a.Val - b.Val, Der: a.Der - b.Der}
}

func Mul(a, b Number) Number {
	return Number{Val: a.Val * b.Val, Der: a.Der*b.Val + a.Val*b.Der}
}

func Div(a, b Number) Number {
	return Number{
		Val: a.Val / b.Val,
		Der: (a.Der*b.Val - a.Val*b.Der) / (b.Val * b.Val),
	}
}

func Exp(a Number) Number {
	e := math.Exp(a.Val)
	return Number{Val: e, Der: e * a.Der}
}

func Log(a Number) Number {
	return Number{Val: math.Log(a.Val), Der: a.Der / a.Val}
}

func Sin(a Number) Number {
	return Number{Val: math.Sin(a.Val), Der: math.Cos(a.Val) * a.Der}
}

func Cos(a Number) Number {
	return Number{Val: math.Cos(a.Val), Der: -math.Sin(a.Val) * a.Der}
}

func Sqrt(a Number) Number {
	s := math.Sqrt(a.Val)
	return Number{Val: s, Der: a.Der / (2 * s)}
}
