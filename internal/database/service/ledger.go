package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/dbretry"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

// LedgerService handles scoring business logic. It is the only component
// allowed to change a user's cumulative score; every change goes through
// an immutable ledger entry and both are committed as one unit.
type LedgerService struct {
	model  *models.LedgerModel
	policy types.PointPolicy
	tiers  types.ReputationTiers
	logger *zap.Logger
	now    Clock
}

// NewLedger creates a new ledger service.
func NewLedger(
	model *models.LedgerModel,
	policy types.PointPolicy,
	tiers types.ReputationTiers,
	logger *zap.Logger,
	now Clock,
) *LedgerService {
	return &LedgerService{
		model:  model,
		policy: policy,
		tiers:  tiers,
		logger: logger.Named("ledger_service"),
		now:    now,
	}
}

// Award appends a scoring event with the policy's point value for the
// reason. referenceID ties the entry to the triggering submission, report
// or confirmation and may be uuid.Nil.
func (s *LedgerService) Award(
	ctx context.Context, userID uuid.UUID, reason enum.ReasonCode, referenceID uuid.UUID,
) (*types.ScoreLedgerEntry, error) {
	points, err := s.policy.Points(reason)
	if err != nil {
		return nil, err
	}
	return s.AwardPoints(ctx, userID, points, reason, referenceID)
}

// AwardPoints appends a scoring event with an explicit point value.
// Transient conflicts on the user's score row are retried internally
// before surfacing.
func (s *LedgerService) AwardPoints(
	ctx context.Context, userID uuid.UUID, points int, reason enum.ReasonCode, referenceID uuid.UUID,
) (*types.ScoreLedgerEntry, error) {
	if points == 0 {
		return nil, types.ErrInvalidPoints
	}

	entry := s.newEntry(userID, points, reason, referenceID)
	user, err := dbretry.Operation(ctx, func(ctx context.Context) (*types.User, error) {
		return s.model.Award(ctx, entry, s.tiers)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Awarded points",
		zap.String("userID", userID.String()),
		zap.Int("points", points),
		zap.String("reason", reason.String()),
		zap.Int64("scoreTotal", user.ScoreTotal))

	return entry, nil
}

// AwardTx appends a scoring event on the caller's transaction. Used by
// operations whose score award must commit with a dependent write, such
// as recording a confirmation or approving a submission.
func (s *LedgerService) AwardTx(
	ctx context.Context, tx bun.IDB, userID uuid.UUID, reason enum.ReasonCode, referenceID uuid.UUID,
) (*types.ScoreLedgerEntry, error) {
	points, err := s.policy.Points(reason)
	if err != nil {
		return nil, err
	}

	entry := s.newEntry(userID, points, reason, referenceID)
	if _, err := s.model.AwardTx(ctx, tx, entry, s.tiers); err != nil {
		return nil, err
	}
	return entry, nil
}

// History retrieves a user's scoring events, most recent first.
func (s *LedgerService) History(
	ctx context.Context, userID uuid.UUID, limit int,
) ([]*types.ScoreLedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ScoreLedgerEntry, error) {
		return s.model.History(ctx, userID, limit)
	})
}

// Classify maps a cumulative score to a reputation level using the
// configured tier table.
func (s *LedgerService) Classify(score int64) int {
	return s.tiers.Classify(score)
}

// LevelInfo returns the configured tier for a level.
func (s *LedgerService) LevelInfo(level int) (types.ReputationTier, bool) {
	return s.tiers.Info(level)
}

func (s *LedgerService) newEntry(
	userID uuid.UUID, points int, reason enum.ReasonCode, referenceID uuid.UUID,
) *types.ScoreLedgerEntry {
	return &types.ScoreLedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Points:      points,
		Reason:      reason,
		ReferenceID: referenceID,
		CreatedAt:   s.now(),
	}
}
