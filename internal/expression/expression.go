// Package expression implements the CGP core: a flat integer chromosome
// over a fixed grid of nodes, the active-region computation that prunes
// it to the genes reaching the outputs, forward evaluation generic over
// the working value type, and bounds-preserving mutation operators.
package expression

import (
	"errors"
	"fmt"
	"math/rand"

	"kartesia/internal/kernel"
	"kartesia/internal/model"
)

var (
	ErrConfiguration     = errors.New("invalid grid configuration")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrInvalidChromosome = errors.New("invalid chromosome")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrBatchSize         = errors.New("invalid batch")
	ErrUnknownLossKind   = errors.New("unknown loss kind")
)

// Config carries the construction parameters of an expression. Arity is
// per column; use NewUniform to broadcast a single arity instead.
type Config[T any] struct {
	Inputs     int
	Outputs    int
	Rows       int
	Cols       int
	LevelsBack int
	Arity      []int
	Kernels    []kernel.Kernel[T]
	Ops        kernel.Ops[T]
	Seed       int64
}

// Expression is one CGP individual. It owns its chromosome, the derived
// active-node/active-gene state and a seeded random source, so a single
// instance must not be mutated concurrently. Evaluation and loss are
// read-only and safe to run from multiple goroutines.
type Expression[T any] struct {
	n          int
	m          int
	rows       int
	cols       int
	levelsBack int
	arity      []int

	kernels []kernel.Kernel[T]
	ops     kernel.Ops[T]

	lb         []int
	ub         []int
	geneIdx    []int
	chromosome []int

	activeNodes []int
	activeGenes []int

	rng *rand.Rand
}

// DerivedState is the extension point for expression variants that keep
// additional chromosome-dependent bookkeeping. RecomputeDerivedState is
// invoked by the core after every structural change; variants wrap the
// core and recompute their extras alongside.
type DerivedState interface {
	RecomputeDerivedState()
}

// New constructs an expression with per-column arity and a random
// chromosome drawn uniformly within gene bounds.
func New[T any](cfg Config[T]) (*Expression[T], error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	e := &Expression[T]{
		n:          cfg.Inputs,
		m:          cfg.Outputs,
		rows:       cfg.Rows,
		cols:       cfg.Cols,
		levelsBack: cfg.LevelsBack,
		arity:      append([]int(nil), cfg.Arity...),
		kernels:    append([]kernel.Kernel[T](nil), cfg.Kernels...),
		ops:        cfg.Ops,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
	}
	e.initBounds()

	e.chromosome = make([]int, len(e.lb))
	for i := range e.chromosome {
		e.chromosome[i] = e.randInRange(e.lb[i], e.ub[i])
	}
	e.RecomputeDerivedState()
	return e, nil
}

// NewUniform constructs an expression with one arity broadcast across
// all columns.
func NewUniform[T any](cfg Config[T], arity int) (*Expression[T], error) {
	if arity <= 0 {
		return nil, fmt.Errorf("%w: arity must be > 0", ErrConfiguration)
	}
	if cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: cols must be > 0", ErrConfiguration)
	}
	cfg.Arity = make([]int, cfg.Cols)
	for i := range cfg.Arity {
		cfg.Arity[i] = arity
	}
	return New(cfg)
}

// FromRecord rebuilds a live expression from a stored snapshot. The
// supplied catalogue must match the record's kernel names in order.
func FromRecord[T any](rec model.ExpressionRecord, kernels []kernel.Kernel[T], ops kernel.Ops[T], seed int64) (*Expression[T], error) {
	if len(kernels) != len(rec.Kernels) {
		return nil, fmt.Errorf("%w: catalogue has %d kernels, record names %d", ErrConfiguration, len(kernels), len(rec.Kernels))
	}
	for i, k := range kernels {
		if k.Name() != rec.Kernels[i] {
			return nil, fmt.Errorf("%w: catalogue kernel %d is %q, record names %q", ErrConfiguration, i, k.Name(), rec.Kernels[i])
		}
	}
	e, err := New(Config[T]{
		Inputs:     rec.Inputs,
		Outputs:    rec.Outputs,
		Rows:       rec.Rows,
		Cols:       rec.Cols,
		LevelsBack: rec.LevelsBack,
		Arity:      rec.Arity,
		Kernels:    kernels,
		Ops:        ops,
		Seed:       seed,
	})
	if err != nil {
		return nil, err
	}
	if err := e.SetChromosome(rec.Chromosome); err != nil {
		return nil, err
	}
	return e, nil
}

// Snapshot returns a persistable record of the grid parameters and the
// current chromosome. ID and versions are left for the storage layer.
func (e *Expression[T]) Snapshot() model.ExpressionRecord {
	names := make([]string, len(e.kernels))
	for i, k := range e.kernels {
		names[i] = k.Name()
	}
	return model.ExpressionRecord{
		Inputs:     e.n,
		Outputs:    e.m,
		Rows:       e.rows,
		Cols:       e.cols,
		LevelsBack: e.levelsBack,
		Arity:      append([]int(nil), e.arity...),
		Kernels:    names,
		Chromosome: append([]int(nil), e.chromosome...),
	}
}

// SetChromosome replaces the whole chromosome after validating length
// and per-gene bounds. Nothing is applied on failure.
func (e *Expression[T]) SetChromosome(x []int) error {
	if len(x) != len(e.chromosome) {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidChromosome, len(x), len(e.chromosome))
	}
	for i, g := range x {
		if g < e.lb[i] || g > e.ub[i] {
			return fmt.Errorf("%w: gene %d is %d, bounds [%d, %d]", ErrInvalidChromosome, i, g, e.lb[i], e.ub[i])
		}
	}
	copy(e.chromosome, x)
	e.RecomputeDerivedState()
	return nil
}

// IsValid reports whether x has the right length and every gene within
// its bounds.
func (e *Expression[T]) IsValid(x []int) bool {
	if len(x) != len(e.chromosome) {
		return false
	}
	for i, g := range x {
		if g < e.lb[i] || g > e.ub[i] {
			return false
		}
	}
	return true
}

// SetFunctionGene assigns kernel kernelID to the computational node
// nodeID directly. The active set is not recomputed: every kernel in the
// catalogue applies at the node's declared column arity, so swapping the
// kernel cannot change reachability.
func (e *Expression[T]) SetFunctionGene(nodeID, kernelID int) error {
	if kernelID < 0 || kernelID >= len(e.kernels) {
		return fmt.Errorf("%w: kernel id %d, catalogue has %d kernels", ErrIndexOutOfRange, kernelID, len(e.kernels))
	}
	if nodeID < e.n || nodeID >= e.n+e.rows*e.cols {
		return fmt.Errorf("%w: node id %d, computational nodes are [%d, %d]", ErrIndexOutOfRange, nodeID, e.n, e.n+e.rows*e.cols-1)
	}
	e.chromosome[e.geneIdx[nodeID]] = kernelID
	return nil
}

// Seed reseeds the expression's random source.
func (e *Expression[T]) Seed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

func validateConfig[T any](cfg Config[T]) error {
	switch {
	case cfg.Inputs <= 0:
		return fmt.Errorf("%w: inputs must be > 0", ErrConfiguration)
	case cfg.Outputs <= 0:
		return fmt.Errorf("%w: outputs must be > 0", ErrConfiguration)
	case cfg.Rows <= 0:
		return fmt.Errorf("%w: rows must be > 0", ErrConfiguration)
	case cfg.Cols <= 0:
		return fmt.Errorf("%w: cols must be > 0", ErrConfiguration)
	case cfg.LevelsBack <= 0:
		return fmt.Errorf("%w: levels-back must be > 0", ErrConfiguration)
	case len(cfg.Arity) != cfg.Cols:
		return fmt.Errorf("%w: arity vector has %d entries, want %d", ErrConfiguration, len(cfg.Arity), cfg.Cols)
	case len(cfg.Kernels) == 0:
		return fmt.Errorf("%w: kernel catalogue is empty", ErrConfiguration)
	case cfg.Ops == nil:
		return fmt.Errorf("%w: ops is required", ErrConfiguration)
	}
	for i, a := range cfg.Arity {
		if a <= 0 {
			return fmt.Errorf("%w: arity of column %d must be > 0", ErrConfiguration, i)
		}
	}
	return nil
}

// randInRange draws uniformly from the closed range [lb, ub].
func (e *Expression[T]) randInRange(lb, ub int) int {
	if lb == ub {
		return lb
	}
	return lb + e.rng.Intn(ub-lb+1)
}
