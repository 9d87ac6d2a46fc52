package storage

import (
	"context"
	"sort"
	"sync"

	"kartesia/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	expressions map[string]model.ExpressionRecord
	histories   map[string][]model.LossRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expressions = make(map[string]model.ExpressionRecord)
	s.histories = make(map[string][]model.LossRecord)
	return nil
}

func (s *MemoryStore) SaveExpression(_ context.Context, rec model.ExpressionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expressions[rec.ID] = rec
	return nil
}

func (s *MemoryStore) GetExpression(_ context.Context, id string) (model.ExpressionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.expressions[id]
	return rec, ok, nil
}

func (s *MemoryStore) ListExpressions(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.expressions))
	for id := range s.expressions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) SaveLossHistory(_ context.Context, exprID string, history []model.LossRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.histories[exprID] = append([]model.LossRecord(nil), history...)
	return nil
}

func (s *MemoryStore) GetLossHistory(_ context.Context, exprID string) ([]model.LossRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.histories[exprID]
	if !ok {
		return nil, false, nil
	}
	return append([]model.LossRecord(nil), history...), true, nil
}
