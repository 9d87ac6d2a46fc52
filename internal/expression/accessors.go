package expression

import (
	"fmt"

	"kartesia/internal/kernel"
)

// Chromosome returns a copy of the current gene sequence.
func (e *Expression[T]) Chromosome() []int {
	return append([]int(nil), e.chromosome...)
}

// LowerBounds returns a copy of the per-gene lower bounds.
func (e *Expression[T]) LowerBounds() []int {
	return append([]int(nil), e.lb...)
}

// UpperBounds returns a copy of the per-gene upper bounds.
func (e *Expression[T]) UpperBounds() []int {
	return append([]int(nil), e.ub...)
}

// ActiveNodes returns the sorted, duplicate-free ids of nodes reachable
// backward from the outputs.
func (e *Expression[T]) ActiveNodes() []int {
	return append([]int(nil), e.activeNodes...)
}

// ActiveGenes returns the chromosome indices that influence the
// outputs, including the always-active output genes.
func (e *Expression[T]) ActiveGenes() []int {
	return append([]int(nil), e.activeGenes...)
}

// GeneIndex returns a copy of the node-id to chromosome-offset table.
// Entries below Inputs() belong to input nodes and are unused.
func (e *Expression[T]) GeneIndex() []int {
	return append([]int(nil), e.geneIdx...)
}

func (e *Expression[T]) Inputs() int     { return e.n }
func (e *Expression[T]) Outputs() int    { return e.m }
func (e *Expression[T]) Rows() int       { return e.rows }
func (e *Expression[T]) Cols() int       { return e.cols }
func (e *Expression[T]) LevelsBack() int { return e.levelsBack }

// Arity returns a copy of the per-column arity vector.
func (e *Expression[T]) Arity() []int {
	return append([]int(nil), e.arity...)
}

// ArityOf returns the arity of the computational node nodeID.
func (e *Expression[T]) ArityOf(nodeID int) (int, error) {
	if nodeID < e.n || nodeID >= e.n+e.rows*e.cols {
		return 0, fmt.Errorf("%w: node id %d, computational nodes are [%d, %d]", ErrIndexOutOfRange, nodeID, e.n, e.n+e.rows*e.cols-1)
	}
	return e.arityOf(nodeID), nil
}

// Kernels returns a copy of the ordered kernel catalogue.
func (e *Expression[T]) Kernels() []kernel.Kernel[T] {
	return append([]kernel.Kernel[T](nil), e.kernels...)
}
