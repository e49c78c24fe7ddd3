package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

// ConfirmationModel handles database operations for store confirmations.
// Rows are append-only.
type ConfirmationModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewConfirmation creates a new confirmation model.
func NewConfirmation(db *bun.DB, logger *zap.Logger) *ConfirmationModel {
	return &ConfirmationModel{
		db:     db,
		logger: logger.Named("db_confirmation"),
	}
}

// CreateTx inserts a confirmation on the caller's transaction, so the
// observation and its score award commit together.
func (r *ConfirmationModel) CreateTx(ctx context.Context, tx bun.IDB, confirmation *types.StoreConfirmation) error {
	if _, err := tx.NewInsert().
		Model(confirmation).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create confirmation: %w", err)
	}
	return nil
}

// ListForItem retrieves all confirmations for an item, newest first,
// optionally narrowed to specific stores.
func (r *ConfirmationModel) ListForItem(
	ctx context.Context, itemID uuid.UUID, storeIDs []uuid.UUID,
) ([]*types.StoreConfirmation, error) {
	var confirmations []*types.StoreConfirmation
	query := r.db.NewSelect().
		Model(&confirmations).
		Where("item_id = ?", itemID)
	if len(storeIDs) > 0 {
		query = query.Where("store_id IN (?)", bun.In(storeIDs))
	}

	err := query.
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	return confirmations, nil
}
