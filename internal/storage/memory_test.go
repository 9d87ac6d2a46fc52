package storage

import (
	"context"
	"reflect"
	"testing"

	"kartesia/internal/model"
)

func testRecord(id string) model.ExpressionRecord {
	return model.ExpressionRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: CurrentSchemaVersion,
			CodecVersion:  CurrentCodecVersion,
		},
		ID:         id,
		Inputs:     2,
		Outputs:    1,
		Rows:       1,
		Cols:       1,
		LevelsBack: 1,
		Arity:      []int{2},
		Kernels:    []string{"sum"},
		Chromosome: []int{0, 0, 1, 2},
	}
}

func TestMemoryStoreExpressionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	rec := testRecord("expr-1")
	if err := store.SaveExpression(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.GetExpression(ctx, "expr-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, rec)
	}

	if _, ok, err := store.GetExpression(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing id: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListExpressionsSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, id := range []string{"c", "a", "b"} {
		if err := store.SaveExpression(ctx, testRecord(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	ids, err := store.ListExpressions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("list = %v, want [a b c]", ids)
	}
}

func TestMemoryStoreLossHistoryCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	history := []model.LossRecord{{Kind: "MSE", Value: 0.5}}
	if err := store.SaveLossHistory(ctx, "expr-1", history); err != nil {
		t.Fatalf("save history: %v", err)
	}

	// Mutating the caller's slice must not reach the stored copy.
	history[0].Value = 99

	got, ok, err := store.GetLossHistory(ctx, "expr-1")
	if err != nil || !ok {
		t.Fatalf("get history: ok=%v err=%v", ok, err)
	}
	if got[0].Value != 0.5 {
		t.Fatalf("stored history aliased caller slice: %+v", got)
	}

	if _, ok, err := store.GetLossHistory(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing history: ok=%v err=%v", ok, err)
	}
}
