package expression

import (
	"fmt"
	"strings"
)

// String returns a human-readable multi-line dump of the expression:
// grid parameters, bounds, chromosome, active sets and catalogue.
func (e *Expression[T]) String() string {
	names := make([]string, len(e.kernels))
	for i, k := range e.kernels {
		names[i] = k.Name()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CGP expression:\n")
	fmt.Fprintf(&b, "  inputs: %d\n", e.n)
	fmt.Fprintf(&b, "  outputs: %d\n", e.m)
	fmt.Fprintf(&b, "  rows: %d\n", e.rows)
	fmt.Fprintf(&b, "  cols: %d\n", e.cols)
	fmt.Fprintf(&b, "  levels-back: %d\n", e.levelsBack)
	fmt.Fprintf(&b, "  arity: %v\n", e.arity)
	fmt.Fprintf(&b, "  gene index: %v\n", e.geneIdx)
	fmt.Fprintf(&b, "  lower bounds: %v\n", e.lb)
	fmt.Fprintf(&b, "  upper bounds: %v\n", e.ub)
	fmt.Fprintf(&b, "  chromosome: %v\n", e.chromosome)
	fmt.Fprintf(&b, "  active nodes: %v\n", e.activeNodes)
	fmt.Fprintf(&b, "  active genes: %v\n", e.activeGenes)
	fmt.Fprintf(&b, "  kernels: %v\n", names)
	return b.String()
}
