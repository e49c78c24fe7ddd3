package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

// UserModel handles database operations for the engine-owned trust fields
// of user records.
type UserModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUser creates a new user model.
func NewUser(db *bun.DB, logger *zap.Logger) *UserModel {
	return &UserModel{
		db:     db,
		logger: logger.Named("db_user"),
	}
}

// GetUser retrieves a user by ID.
func (r *UserModel) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	return getUser(ctx, r.db, id)
}

// CreateUser inserts a user row. The surrounding service owns user
// registration; this exists so collaborators and tests can seed the trust
// fields the engine manages.
func (r *UserModel) CreateUser(ctx context.Context, user *types.User) error {
	_, err := r.db.NewInsert().
		Model(user).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// AdjustScore atomically increments a user's cumulative score and promotes
// the reputation level when the new total crosses a tier threshold. Levels
// never decrease and the role signal is recorded once the trusted tier is
// reached. Runs on the caller's transaction so a ledger insert and the
// score change commit as one unit.
func (r *UserModel) AdjustScore(
	ctx context.Context, tx bun.IDB, userID uuid.UUID, delta int, tiers types.ReputationTiers,
) (*types.User, error) {
	res, err := tx.NewUpdate().
		Model((*types.User)(nil)).
		Set("score_total = score_total + ?", delta).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust score: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, types.ErrUserNotFound
	}

	user, err := getUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	newLevel := tiers.Classify(user.ScoreTotal)
	if newLevel <= user.ReputationLevel {
		return user, nil
	}

	update := tx.NewUpdate().
		Model((*types.User)(nil)).
		Set("reputation_level = ?", newLevel).
		Where("id = ?", userID).
		Where("reputation_level < ?", newLevel)
	if newLevel >= types.TrustedContributorLevel {
		update = update.Set("role = ?", types.RoleTrustedContributor)
	}
	if _, err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to promote reputation level: %w", err)
	}

	user.ReputationLevel = newLevel
	if newLevel >= types.TrustedContributorLevel {
		user.Role = types.RoleTrustedContributor
	}
	r.logger.Info("User reputation level increased",
		zap.String("userID", userID.String()),
		zap.Int("level", newLevel),
		zap.Int64("scoreTotal", user.ScoreTotal))

	return user, nil
}

// TopContributors retrieves active users with a positive score, ordered by
// cumulative score descending.
func (r *UserModel) TopContributors(ctx context.Context, limit int) ([]*types.User, error) {
	var users []*types.User
	err := r.db.NewSelect().
		Model(&users).
		Where("is_active = ?", true).
		Where("score_total > ?", 0).
		Order("score_total DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get top contributors: %w", err)
	}
	return users, nil
}

func getUser(ctx context.Context, db bun.IDB, id uuid.UUID) (*types.User, error) {
	user := new(types.User)
	err := db.NewSelect().
		Model(user).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
