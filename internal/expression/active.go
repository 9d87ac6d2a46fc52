package expression

import "sort"

// RecomputeDerivedState refreshes the active-node and active-gene sets
// from the current chromosome. It must run after every change that can
// affect reachability; every chromosome-mutating method calls it exactly
// once per applied change set.
//
// The traversal is a backward breadth-first walk from the nodes the
// output genes reference. The frontier is deduplicated every step;
// without that, shared subgraphs would be revisited once per path and
// the walk would degenerate to exponential work.
func (e *Expression[T]) RecomputeDerivedState() {
	current := make([]int, e.m)
	for i := 0; i < e.m; i++ {
		current[i] = e.chromosome[len(e.chromosome)-e.m+i]
	}

	e.activeNodes = e.activeNodes[:0]
	var next []int
	for len(current) > 0 {
		e.activeNodes = append(e.activeNodes, current...)
		for _, id := range current {
			if id < e.n {
				// Input nodes are leaves with no predecessors.
				continue
			}
			start := e.geneIdx[id]
			for j := 1; j <= e.arityOf(id); j++ {
				next = append(next, e.chromosome[start+j])
			}
		}
		sort.Ints(next)
		next = uniqueInts(next)
		current, next = next, current[:0]
	}

	sort.Ints(e.activeNodes)
	e.activeNodes = uniqueInts(e.activeNodes)

	e.activeGenes = e.activeGenes[:0]
	for _, id := range e.activeNodes {
		if id < e.n {
			continue
		}
		start := e.geneIdx[id]
		for j := 0; j <= e.arityOf(id); j++ {
			e.activeGenes = append(e.activeGenes, start+j)
		}
	}
	// Output genes define what is observed and stay active regardless
	// of reachability.
	for i := 0; i < e.m; i++ {
		e.activeGenes = append(e.activeGenes, len(e.chromosome)-e.m+i)
	}
}

// IsActive reports whether nodeID participates in the outputs.
func (e *Expression[T]) IsActive(nodeID int) bool {
	i := sort.SearchInts(e.activeNodes, nodeID)
	return i < len(e.activeNodes) && e.activeNodes[i] == nodeID
}

// uniqueInts compacts a sorted slice in place.
func uniqueInts(s []int) []int {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
