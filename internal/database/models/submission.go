package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

// SubmissionModel handles database operations for submissions.
type SubmissionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSubmission creates a new submission model.
func NewSubmission(db *bun.DB, logger *zap.Logger) *SubmissionModel {
	return &SubmissionModel{
		db:     db,
		logger: logger.Named("db_submission"),
	}
}

// CreateTx inserts a submission on the caller's transaction.
func (r *SubmissionModel) CreateTx(ctx context.Context, tx bun.IDB, submission *types.Submission) error {
	if _, err := tx.NewInsert().
		Model(submission).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID.
func (r *SubmissionModel) Get(ctx context.Context, id uuid.UUID) (*types.Submission, error) {
	return r.GetTx(ctx, r.db, id)
}

// GetTx retrieves a submission by ID on the caller's transaction.
func (r *SubmissionModel) GetTx(ctx context.Context, tx bun.IDB, id uuid.UUID) (*types.Submission, error) {
	submission := new(types.Submission)
	err := tx.NewSelect().
		Model(submission).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

// List retrieves submissions matching a filter, newest first, along with
// the total match count for pagination.
func (r *SubmissionModel) List(ctx context.Context, filter types.SubmissionFilter) ([]*types.Submission, int, error) {
	var submissions []*types.Submission
	query := r.db.NewSelect().
		Model(&submissions)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.TargetType != nil {
		query = query.Where("target_type = ?", *filter.TargetType)
	}
	if filter.SubmitterID != uuid.Nil {
		query = query.Where("submitter_id = ?", filter.SubmitterID)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	total, err := query.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, total, nil
}

// TransitionTx applies a moderation decision on the caller's transaction.
// The update is conditional on the current status, so a concurrent
// decision that already moved the submission makes this a no-op; callers
// treat zero affected rows as a lost race.
func (r *SubmissionModel) TransitionTx(
	ctx context.Context, tx bun.IDB, id uuid.UUID,
	from, to enum.SubmissionStatus, moderatorNotes, decisionReason string,
	duplicateOf uuid.UUID, now time.Time,
) (bool, error) {
	query := tx.NewUpdate().
		Model((*types.Submission)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("status = ?", from)
	if moderatorNotes != "" {
		query = query.Set("moderator_notes = ?", moderatorNotes)
	}
	if decisionReason != "" {
		query = query.Set("decision_reason = ?", decisionReason)
	}
	if duplicateOf != uuid.Nil {
		query = query.Set("duplicate_of = ?", duplicateOf)
	}

	res, err := query.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to transition submission: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// AcceptEvidenceTx marks a submission's evidence as verified on the
// caller's transaction. Returns false when the evidence was already
// accepted by a concurrent call.
func (r *SubmissionModel) AcceptEvidenceTx(
	ctx context.Context, tx bun.IDB, id uuid.UUID, now time.Time,
) (bool, error) {
	res, err := tx.NewUpdate().
		Model((*types.Submission)(nil)).
		Set("evidence_accepted = ?", true).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("evidence_accepted = ?", false).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to accept evidence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
