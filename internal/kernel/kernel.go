// Package kernel provides the elementary functions usable at CGP nodes.
// A kernel pairs a numeric evaluation over the working value type with a
// symbolic rendering over strings, so the same catalogue serves numeric,
// derivative-carrying and symbolic evaluation.
package kernel

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKernel = errors.New("unknown kernel")
	ErrInvalidKernel = errors.New("invalid kernel definition")
)

// EvalFunc computes the kernel value on a vector of operands.
type EvalFunc[T any] func(in []T) T

// RenderFunc renders the same operation over symbolic operand names.
type RenderFunc func(in []string) string

// Kernel is one elementary operation of the catalogue. The zero value is
// not usable; construct through New or SetFor.
type Kernel[T any] struct {
	name   string
	fn     EvalFunc[T]
	render RenderFunc
}

// New builds a kernel from an evaluation function, a symbolic rendering
// and a name.
func New[T any](name string, fn EvalFunc[T], render RenderFunc) (Kernel[T], error) {
	if name == "" {
		return Kernel[T]{}, fmt.Errorf("%w: name is required", ErrInvalidKernel)
	}
	if fn == nil {
		return Kernel[T]{}, fmt.Errorf("%w: eval function is required", ErrInvalidKernel)
	}
	if render == nil {
		return Kernel[T]{}, fmt.Errorf("%w: render function is required", ErrInvalidKernel)
	}
	return Kernel[T]{name: name, fn: fn, render: render}, nil
}

// Call evaluates the kernel on the given operands.
func (k Kernel[T]) Call(in []T) T {
	return k.fn(in)
}

// Render returns the symbolic form of the operation, e.g. "(x0+x1)".
func (k Kernel[T]) Render(in []string) string {
	return k.render(in)
}

func (k Kernel[T]) Name() string {
	return k.name
}

func (k Kernel[T]) String() string {
	return k.name
}
