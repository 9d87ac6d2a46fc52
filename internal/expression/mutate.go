package expression

import "fmt"

// mutateGene is the primitive every operator builds on: redraw the gene
// at idx uniformly within its bounds, excluding the current value by
// resampling until different. A gene whose bounds pin a single legal
// value is never altered; that guard is also what makes the rejection
// loop terminate. Reports whether the gene changed. Callers recompute
// derived state.
func (e *Expression[T]) mutateGene(idx int) bool {
	lb, ub := e.lb[idx], e.ub[idx]
	if lb >= ub {
		return false
	}
	cur := e.chromosome[idx]
	next := cur
	for next == cur {
		next = lb + e.rng.Intn(ub-lb+1)
	}
	e.chromosome[idx] = next
	return true
}

// Mutate mutates the gene at idx.
func (e *Expression[T]) Mutate(idx int) error {
	if idx < 0 || idx >= len(e.chromosome) {
		return fmt.Errorf("%w: gene index %d, chromosome length %d", ErrIndexOutOfRange, idx, len(e.chromosome))
	}
	if e.mutateGene(idx) {
		e.RecomputeDerivedState()
	}
	return nil
}

// MutateSet mutates every gene named in idxs. All indices are validated
// before any gene is touched, and derived state is recomputed once for
// the whole set.
func (e *Expression[T]) MutateSet(idxs []int) error {
	for _, idx := range idxs {
		if idx < 0 || idx >= len(e.chromosome) {
			return fmt.Errorf("%w: gene index %d, chromosome length %d", ErrIndexOutOfRange, idx, len(e.chromosome))
		}
	}
	changed := false
	for _, idx := range idxs {
		if e.mutateGene(idx) {
			changed = true
		}
	}
	if changed {
		e.RecomputeDerivedState()
	}
	return nil
}

// MutateRandom mutates n genes drawn uniformly from the whole
// chromosome. Duplicate draws are allowed. Derived state is recomputed
// once.
func (e *Expression[T]) MutateRandom(n int) {
	changed := false
	for i := 0; i < n; i++ {
		if e.mutateGene(e.rng.Intn(len(e.chromosome))) {
			changed = true
		}
	}
	if changed {
		e.RecomputeDerivedState()
	}
}

// MutateActive mutates n genes drawn from the active-gene set. Each
// applied change refreshes the active set before the next draw, since
// the draw pool itself depends on it.
func (e *Expression[T]) MutateActive(n int) {
	for i := 0; i < n; i++ {
		idx := e.activeGenes[e.rng.Intn(len(e.activeGenes))]
		if e.mutateGene(idx) {
			e.RecomputeDerivedState()
		}
	}
}

// MutateActiveFunctions mutates n function genes of active
// computational nodes. Input nodes carry no function gene and are
// rejected when sampled; at least one active non-input node exists
// whenever the active genes extend past the output genes.
func (e *Expression[T]) MutateActiveFunctions(n int) {
	if len(e.activeGenes) <= e.m {
		return
	}
	for i := 0; i < n; i++ {
		id := 0
		for id < e.n {
			id = e.activeNodes[e.rng.Intn(len(e.activeNodes))]
		}
		if e.mutateGene(e.geneIdx[id]) {
			e.RecomputeDerivedState()
		}
	}
}

// MutateActiveConnections mutates n connection genes of active
// computational nodes: sample an active non-input node, then one of its
// connection positions uniformly.
func (e *Expression[T]) MutateActiveConnections(n int) {
	if len(e.activeGenes) <= e.m {
		return
	}
	for i := 0; i < n; i++ {
		id := 0
		for id < e.n {
			id = e.activeNodes[e.rng.Intn(len(e.activeNodes))]
		}
		idx := e.geneIdx[id] + 1 + e.rng.Intn(e.arityOf(id))
		if e.mutateGene(idx) {
			e.RecomputeDerivedState()
		}
	}
}

// MutateOutputs mutates n output genes. With a single output the last
// active gene is the output gene; with several, one of the last m active
// genes is drawn each round.
func (e *Expression[T]) MutateOutputs(n int) {
	for i := 0; i < n; i++ {
		pos := len(e.activeGenes) - 1
		if e.m > 1 {
			pos = len(e.activeGenes) - e.m + e.rng.Intn(e.m)
		}
		if e.mutateGene(e.activeGenes[pos]) {
			e.RecomputeDerivedState()
		}
	}
}
