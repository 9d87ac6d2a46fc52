package storage

import (
	"context"

	"kartesia/internal/model"
)

// Store defines persistence operations for expression snapshots and
// their recorded loss histories.
type Store interface {
	Init(ctx context.Context) error
	SaveExpression(ctx context.Context, rec model.ExpressionRecord) error
	GetExpression(ctx context.Context, id string) (model.ExpressionRecord, bool, error)
	ListExpressions(ctx context.Context) ([]string, error)
	SaveLossHistory(ctx context.Context, exprID string, history []model.LossRecord) error
	GetLossHistory(ctx context.Context, exprID string) ([]model.LossRecord, bool, error)
}
