package expression

// initBounds computes the per-gene lower/upper bound arrays and the
// gene-index table. It runs once at construction; chromosome edits never
// change the layout, only gene values.
//
// Chromosome layout, column-major: for every computational node one
// function gene followed by arity[col] connection genes, then m output
// genes. Total length r*c + r*sum(arity) + m.
func (e *Expression[T]) initBounds() {
	totalArity := 0
	for _, a := range e.arity {
		totalArity += a
	}
	size := e.rows*e.cols + e.rows*totalArity + e.m

	e.lb = make([]int, size)
	e.ub = make([]int, size)
	e.geneIdx = make([]int, e.n+e.rows*e.cols)

	k := 0
	for col := 0; col < e.cols; col++ {
		for row := 0; row < e.rows; row++ {
			// Function gene: any catalogue index.
			e.ub[k] = len(e.kernels) - 1
			k++
			// Connection genes: any node up to the previous column,
			// reaching back at most levelsBack columns. Inputs stay
			// eligible until the lower bound passes them.
			for j := 0; j < e.arity[col]; j++ {
				e.ub[k] = e.n + col*e.rows - 1
				if col >= e.levelsBack {
					e.lb[k] = e.n + e.rows*(col-e.levelsBack)
				}
				k++
			}
		}
	}
	// Output genes observe any node within levelsBack of the grid end.
	for i := size - e.m; i < size; i++ {
		e.ub[i] = e.n + e.rows*e.cols - 1
		if e.levelsBack <= e.cols {
			e.lb[i] = e.n + e.rows*(e.cols-e.levelsBack)
		}
	}

	// Start offset of each node's genes. Input nodes have no gene
	// representation; their entries stay zero and are never read.
	for id := e.n; id < len(e.geneIdx); id++ {
		col := (id - e.n) / e.rows
		row := (id - e.n) % e.rows
		acc := 0
		for j := 0; j < col; j++ {
			acc += e.arity[j]
		}
		e.geneIdx[id] = acc*e.rows + row*e.arity[col] + (id - e.n)
	}
}

// arityOf returns the column arity of a computational node without
// range checks; callers guarantee n <= id < n+r*c.
func (e *Expression[T]) arityOf(id int) int {
	return e.arity[(id-e.n)/e.rows]
}
