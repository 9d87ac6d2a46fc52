package expression

import (
	"errors"
	"reflect"
	"testing"
)

func assertWithinBounds(t *testing.T, e *Expression[float64]) {
	t.Helper()
	x, lb, ub := e.Chromosome(), e.LowerBounds(), e.UpperBounds()
	for i := range x {
		if x[i] < lb[i] || x[i] > ub[i] {
			t.Fatalf("gene %d is %d, bounds [%d, %d]", i, x[i], lb[i], ub[i])
		}
	}
}

func TestMutateIndexOutOfRange(t *testing.T) {
	e := newSumExpression(t)
	if err := e.Mutate(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := e.Mutate(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestMutateSetAbortsBeforeTouchingGenes(t *testing.T) {
	e := newSumExpression(t)
	before := e.Chromosome()

	err := e.MutateSet([]int{1, 2, 99})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if !reflect.DeepEqual(e.Chromosome(), before) {
		t.Fatalf("failed mutation touched genes: %v vs %v", e.Chromosome(), before)
	}
}

func TestMutationOperatorsPreserveBounds(t *testing.T) {
	e := newWideExpression(t, 23)
	for round := 0; round < 50; round++ {
		e.MutateRandom(3)
		e.MutateActive(2)
		e.MutateActiveFunctions(1)
		e.MutateActiveConnections(1)
		e.MutateOutputs(1)
		assertWithinBounds(t, e)
	}
}

// Genes whose lower bound equals their upper bound have a single legal
// value and must never change, no matter how often mutation targets
// them.
func TestPinnedGenesNeverMutate(t *testing.T) {
	e := newSumExpression(t)
	// Single kernel pins the function gene; the single-node grid pins
	// the output gene.
	for i := 0; i < 100; i++ {
		if err := e.Mutate(0); err != nil {
			t.Fatalf("mutate function gene: %v", err)
		}
		if err := e.Mutate(3); err != nil {
			t.Fatalf("mutate output gene: %v", err)
		}
		e.MutateOutputs(1)
	}
	x := e.Chromosome()
	if x[0] != 0 {
		t.Fatalf("pinned function gene changed to %d", x[0])
	}
	if x[3] != 2 {
		t.Fatalf("pinned output gene changed to %d", x[3])
	}
}

func TestMutateExcludesCurrentValue(t *testing.T) {
	e := newSumExpression(t)
	// Connection genes range over [0, 1]; excluding the current value
	// forces every applied mutation to flip them.
	for i := 0; i < 20; i++ {
		before := e.Chromosome()[1]
		if err := e.Mutate(1); err != nil {
			t.Fatalf("mutate: %v", err)
		}
		after := e.Chromosome()[1]
		if before == after {
			t.Fatalf("round %d: mutation kept the current value %d", i, before)
		}
	}
}

func TestMutateSetRecomputesOnce(t *testing.T) {
	e := newWideExpression(t, 31)
	if err := e.MutateSet([]int{1, 2, 4, 5}); err != nil {
		t.Fatalf("mutate set: %v", err)
	}
	assertWithinBounds(t, e)

	// Derived state must reflect the batch outcome.
	nodes := e.ActiveNodes()
	e.RecomputeDerivedState()
	if !reflect.DeepEqual(nodes, e.ActiveNodes()) {
		t.Fatalf("derived state stale after batched mutation")
	}
}

func TestMutateActiveFunctionsTargetsFunctionGenes(t *testing.T) {
	e := newWideExpression(t, 41)
	geneIdx := e.GeneIndex()
	funcPositions := make(map[int]bool)
	for id := e.Inputs(); id < e.Inputs()+e.Rows()*e.Cols(); id++ {
		funcPositions[geneIdx[id]] = true
	}

	for round := 0; round < 30; round++ {
		before := e.Chromosome()
		e.MutateActiveFunctions(1)
		after := e.Chromosome()
		for i := range after {
			if after[i] != before[i] && !funcPositions[i] {
				t.Fatalf("round %d: non-function gene %d changed", round, i)
			}
		}
	}
}

func TestMutateOutputsTargetsOutputGenes(t *testing.T) {
	e := newWideExpression(t, 43)
	total := len(e.Chromosome())
	m := e.Outputs()

	for round := 0; round < 30; round++ {
		before := e.Chromosome()
		e.MutateOutputs(1)
		after := e.Chromosome()
		for i := 0; i < total-m; i++ {
			if after[i] != before[i] {
				t.Fatalf("round %d: non-output gene %d changed", round, i)
			}
		}
	}
}
