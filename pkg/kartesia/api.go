// Package kartesia is the public entry point of the library: it bundles
// catalogue construction, CGP expression snapshots and their persisted
// loss histories behind one client.
package kartesia

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kartesia/internal/expression"
	"kartesia/internal/kernel"
	"kartesia/internal/model"
	"kartesia/internal/storage"
)

const defaultDBPath = "kartesia.db"

type Options struct {
	StoreKind string // "memory" (default) or "sqlite"
	DBPath    string
}

type Client struct {
	store storage.Store
}

func NewClient(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = "memory"
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// SaveExpression persists a snapshot and returns its ID, minting one
// when the record carries none.
func (c *Client) SaveExpression(ctx context.Context, rec model.ExpressionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.SchemaVersion = storage.CurrentSchemaVersion
	rec.CodecVersion = storage.CurrentCodecVersion
	if err := c.store.SaveExpression(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (c *Client) LoadExpression(ctx context.Context, id string) (model.ExpressionRecord, error) {
	rec, ok, err := c.store.GetExpression(ctx, id)
	if err != nil {
		return model.ExpressionRecord{}, err
	}
	if !ok {
		return model.ExpressionRecord{}, fmt.Errorf("expression %s not found", id)
	}
	return rec, nil
}

func (c *Client) ListExpressions(ctx context.Context) ([]string, error) {
	return c.store.ListExpressions(ctx)
}

// RecordLoss appends one loss measurement to an expression's history.
func (c *Client) RecordLoss(ctx context.Context, exprID, kind string, value float64) error {
	if _, err := expression.ParseLossKind(kind); err != nil {
		return err
	}
	history, _, err := c.store.GetLossHistory(ctx, exprID)
	if err != nil {
		return err
	}
	history = append(history, model.LossRecord{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: storage.CurrentSchemaVersion,
			CodecVersion:  storage.CurrentCodecVersion,
		},
		Kind:  kind,
		Value: value,
	})
	return c.store.SaveLossHistory(ctx, exprID, history)
}

func (c *Client) LossHistory(ctx context.Context, exprID string) ([]model.LossRecord, error) {
	history, ok, err := c.store.GetLossHistory(ctx, exprID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no loss history for expression %s", exprID)
	}
	return history, nil
}

// Restore rebuilds a live float64 expression from a stored snapshot
// using the built-in catalogue named by the record.
func Restore(rec model.ExpressionRecord, seed int64) (*expression.Expression[float64], error) {
	ops := kernel.Float64Ops{}
	set, err := kernel.SetFor[float64](ops, rec.Kernels...)
	if err != nil {
		return nil, err
	}
	return expression.FromRecord(rec, set, ops, seed)
}
