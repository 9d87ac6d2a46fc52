package expression

import "fmt"

// Eval computes the m outputs of the expression at the given input
// point. Only active nodes are visited, in ascending node-id order; the
// levels-back construction guarantees every connection gene names a node
// already computed. The scratch buffer is local, so Eval is safe to call
// concurrently on a read-only expression.
func (e *Expression[T]) Eval(point []T) ([]T, error) {
	if len(point) != e.n {
		return nil, fmt.Errorf("%w: input length %d, want %d", ErrShapeMismatch, len(point), e.n)
	}

	scratch := make([]T, e.n+e.rows*e.cols)
	var operands []T
	for _, id := range e.activeNodes {
		if id < e.n {
			scratch[id] = point[id]
			continue
		}
		start := e.geneIdx[id]
		arity := e.arityOf(id)
		operands = operands[:0]
		for j := 1; j <= arity; j++ {
			operands = append(operands, scratch[e.chromosome[start+j]])
		}
		scratch[id] = e.kernels[e.chromosome[start]].Call(operands)
	}

	out := make([]T, e.m)
	for i := 0; i < e.m; i++ {
		out[i] = scratch[e.chromosome[len(e.chromosome)-e.m+i]]
	}
	return out, nil
}

// EvalSymbolic renders the expression over symbolic input names using
// the kernels' textual form, e.g. ["x", "y"] -> ["(x+sin(y))"]. It is
// the string-typed twin of Eval and follows the identical traversal, so
// the rendered tree always matches the numeric computation's shape.
func (e *Expression[T]) EvalSymbolic(symbols []string) ([]string, error) {
	if len(symbols) != e.n {
		return nil, fmt.Errorf("%w: input length %d, want %d", ErrShapeMismatch, len(symbols), e.n)
	}

	scratch := make([]string, e.n+e.rows*e.cols)
	var operands []string
	for _, id := range e.activeNodes {
		if id < e.n {
			scratch[id] = symbols[id]
			continue
		}
		start := e.geneIdx[id]
		arity := e.arityOf(id)
		operands = operands[:0]
		for j := 1; j <= arity; j++ {
			operands = append(operands, scratch[e.chromosome[start+j]])
		}
		scratch[id] = e.kernels[e.chromosome[start]].Render(operands)
	}

	out := make([]string, e.m)
	for i := 0; i < e.m; i++ {
		out[i] = scratch[e.chromosome[len(e.chromosome)-e.m+i]]
	}
	return out, nil
}
