package kernel

import (
	"math"

	"kartesia/internal/dual"
)

// Ops abstracts the arithmetic a working value type must support. The
// built-in kernels and the loss layer are written against this interface
// only, so plain numbers and derivative-carrying numbers share one code
// path.
type Ops[T any] interface {
	Const(v float64) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Exp(a T) T
	Log(a T) T
	Sin(a T) T
	Cos(a T) T
	Sqrt(a T) T
	// Scalar exposes the value part, used for ordering comparisons and
	// finiteness guards that have no algebraic meaning.
	Scalar(a T) float64
}

// Float64Ops implements Ops for plain float64 evaluation.
type Float64Ops struct{}

func (Float64Ops) Const(v float64) float64 { return v }
func (Float64Ops) Add(a, b float64) float64 { return a + b }
func (Float64Ops) Sub(a, b float64) float64 { return a - b }
func (Float64Ops) Mul(a, b float64) float64 { return a * b }
func (Float64Ops) Div(a, b float64) float64 { return a / b }
func (Float64Ops) Exp(a float64) float64 { return math.Exp(a) }
func (Float64Ops) Log(a float64) float64 { return math.Log(a) }
func (Float64Ops) Sin(a float64) float64 { return math.Sin(a) }
func (Float64Ops) Cos(a float64) float64 { return math.Cos(a) }
func (Float64Ops) Sqrt(a float64) float64 { return math.Sqrt(a) }
func (Float64Ops) Scalar(a float64) float64 { return a }

// DualOps implements Ops for first-order dual numbers.
type DualOps struct{}

func (DualOps) Const(v float64) dual.Number { return dual.Constant(v) }
func (DualOps) Add(a, b dual.Number) dual.Number { return dual.Add(a, b) }
func (DualOps) Sub(a, b dual.Number) dual.Number { return dual.Sub(a, b) }
func (DualOps) Mul(a, b dual.Number) dual.Number { return dual.Mul(a, b) }
func (DualOps) Div(a, b dual.Number) dual.Number { return dual.Div(a, b) }
func (DualOps) Exp(a dual.Number) dual.Number { return dual.Exp(a) }
func (DualOps) Log(a dual.Number) dual.Number { return dual.Log(a) }
func (DualOps) Sin(a dual.Number) dual.Number { return dual.Sin(a) }
func (DualOps) Cos(a dual.Number) dual.Number { return dual.Cos(a) }
func (DualOps) Sqrt(a dual.Number) dual.Number { return dual.Sqrt(a) }
func (DualOps) Scalar(a dual.Number) float64 { return a.Val }
