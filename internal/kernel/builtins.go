package kernel

import (
	"fmt"
	"math"
	"strings"
)

// builtinNames is the catalogue order used by SetFor when no explicit
// selection is given.
var builtinNames = []string{
	"sum", "diff", "mul", "div", "pdiv",
	"sig", "tanh", "relu", "elu", "isru",
	"sin", "cos", "log", "exp",
}

// Names returns the built-in kernel names in catalogue order.
func Names() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}

// SetFor builds an ordered kernel catalogue for the given arithmetic.
// With no names it returns the full built-in catalogue. The position of
// a kernel in the returned slice is its function-gene value.
func SetFor[T any](ops Ops[T], names ...string) ([]Kernel[T], error) {
	if ops == nil {
		return nil, fmt.Errorf("%w: ops is required", ErrInvalidKernel)
	}
	if len(names) == 0 {
		names = builtinNames
	}
	set := make([]Kernel[T], 0, len(names))
	for _, name := range names {
		k, err := forName(ops, name)
		if err != nil {
			return nil, err
		}
		set = append(set, k)
	}
	return set, nil
}

func forName[T any](ops Ops[T], name string) (Kernel[T], error) {
	switch name {
	case "sum":
		return New(name, fold(ops.Add), joinRender("+", ""))
	case "diff":
		return New(name, fold(ops.Sub), joinRender("-", ""))
	case "mul":
		return New(name, fold(ops.Mul), joinRender("*", ""))
	case "div":
		return New(name, fold(ops.Div), joinRender("/", ""))
	case "pdiv":
		return New(name, protectedDiv(ops), func(in []string) string {
			return "(" + in[0] + "/" + in[1] + ")"
		})
	case "sig":
		return New(name, func(in []T) T {
			one := ops.Const(1)
			return ops.Div(one, ops.Add(one, ops.Exp(ops.Sub(ops.Const(0), sumAll(ops, in)))))
		}, joinRender("+", "sig"))
	case "tanh":
		return New(name, func(in []T) T {
			// tanh(x) = (e^2x - 1) / (e^2x + 1)
			e2 := ops.Exp(ops.Mul(ops.Const(2), sumAll(ops, in)))
			one := ops.Const(1)
			return ops.Div(ops.Sub(e2, one), ops.Add(e2, one))
		}, joinRender("+", "tanh"))
	case "relu":
		return New(name, func(in []T) T {
			x := sumAll(ops, in)
			if ops.Scalar(x) < 0 {
				return ops.Const(0)
			}
			return x
		}, joinRender("+", "ReLu"))
	case "elu":
		return New(name, func(in []T) T {
			x := sumAll(ops, in)
			if ops.Scalar(x) < 0 {
				return ops.Sub(ops.Exp(x), ops.Const(1))
			}
			return x
		}, joinRender("+", "ELU"))
	case "isru":
		return New(name, func(in []T) T {
			x := sumAll(ops, in)
			return ops.Div(x, ops.Sqrt(ops.Add(ops.Const(1), ops.Mul(x, x))))
		}, joinRender("+", "ISRU"))
	case "sin":
		return New(name, unary(ops.Sin), unaryRender("sin"))
	case "cos":
		return New(name, unary(ops.Cos), unaryRender("cos"))
	case "log":
		return New(name, unary(ops.Log), unaryRender("log"))
	case "exp":
		return New(name, unary(ops.Exp), unaryRender("exp"))
	default:
		return Kernel[T]{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
}

// fold applies op left to right over all operands.
func fold[T any](op func(a, b T) T) EvalFunc[T] {
	return func(in []T) T {
		acc := in[0]
		for _, v := range in[1:] {
			acc = op(acc, v)
		}
		return acc
	}
}

// unary evaluates f on the first operand, discarding the rest.
func unary[T any](f func(a T) T) EvalFunc[T] {
	return func(in []T) T {
		return f(in[0])
	}
}

func sumAll[T any](ops Ops[T], in []T) T {
	acc := in[0]
	for _, v := range in[1:] {
		acc = ops.Add(acc, v)
	}
	return acc
}

// protectedDiv divides the first operand by the product of the others
// and falls back to 1 when the result is not finite.
func protectedDiv[T any](ops Ops[T]) EvalFunc[T] {
	return func(in []T) T {
		den := in[1]
		for _, v := range in[2:] {
			den = ops.Mul(den, v)
		}
		out := ops.Div(in[0], den)
		if s := ops.Scalar(out); math.IsNaN(s) || math.IsInf(s, 0) {
			return ops.Const(1)
		}
		return out
	}
}

// joinRender renders operands joined by sep. With a prefix it renders
// "prefix(a sep b)", otherwise "(a sep b)".
func joinRender(sep, prefix string) RenderFunc {
	return func(in []string) string {
		joined := strings.Join(in, sep)
		if prefix != "" {
			return prefix + "(" + joined + ")"
		}
		return "(" + joined + ")"
	}
}

func unaryRender(name string) RenderFunc {
	return func(in []string) string {
		return name + "(" + in[0] + ")"
	}
}
