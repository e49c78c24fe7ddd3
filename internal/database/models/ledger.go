package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

// LedgerModel handles database operations for the append-only score
// ledger. Entries are inserted exactly once and never updated or deleted.
type LedgerModel struct {
	db     *bun.DB
	users  *UserModel
	logger *zap.Logger
}

// NewLedger creates a new ledger model.
func NewLedger(db *bun.DB, users *UserModel, logger *zap.Logger) *LedgerModel {
	return &LedgerModel{
		db:     db,
		users:  users,
		logger: logger.Named("db_ledger"),
	}
}

// AwardTx appends a ledger entry and applies its points to the user's
// score on the caller's transaction. The insert and the score change
// commit or roll back together; a missing user leaves no partial state.
func (r *LedgerModel) AwardTx(
	ctx context.Context, tx bun.IDB, entry *types.ScoreLedgerEntry, tiers types.ReputationTiers,
) (*types.User, error) {
	if _, err := tx.NewInsert().
		Model(entry).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	user, err := r.users.AdjustScore(ctx, tx, entry.UserID, entry.Points, tiers)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Award appends a ledger entry and applies its points in a single
// transaction.
func (r *LedgerModel) Award(
	ctx context.Context, entry *types.ScoreLedgerEntry, tiers types.ReputationTiers,
) (*types.User, error) {
	var user *types.User
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		user, err = r.AwardTx(ctx, tx, entry, tiers)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// History retrieves a user's ledger entries, most recent first.
func (r *LedgerModel) History(ctx context.Context, userID uuid.UUID, limit int) ([]*types.ScoreLedgerEntry, error) {
	var entries []*types.ScoreLedgerEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger history: %w", err)
	}
	return entries, nil
}
