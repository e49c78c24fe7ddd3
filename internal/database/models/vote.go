package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

// VoteModel handles database operations for submission votes.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a new vote model.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// Upsert inserts a vote or replaces the voter's previous vote on the same
// submission. Last writer wins on the (submission_id, voter_id) key; the
// original created_at survives a replacement.
func (r *VoteModel) Upsert(ctx context.Context, vote *types.Vote) error {
	_, err := r.db.NewInsert().
		Model(vote).
		On("CONFLICT (submission_id, voter_id) DO UPDATE").
		Set("vote_type = EXCLUDED.vote_type").
		Set("note = EXCLUDED.note").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

// List retrieves all votes on a submission, newest activity first.
func (r *VoteModel) List(ctx context.Context, submissionID uuid.UUID) ([]*types.Vote, error) {
	var votes []*types.Vote
	err := r.db.NewSelect().
		Model(&votes).
		Where("submission_id = ?", submissionID).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return votes, nil
}

// CountsFor retrieves vote summaries for a set of submissions in one
// query.
func (r *VoteModel) CountsFor(
	ctx context.Context, submissionIDs []uuid.UUID,
) (map[uuid.UUID]types.VoteCounts, error) {
	counts := make(map[uuid.UUID]types.VoteCounts, len(submissionIDs))
	if len(submissionIDs) == 0 {
		return counts, nil
	}

	var votes []*types.Vote
	err := r.db.NewSelect().
		Model(&votes).
		Column("submission_id", "vote_type").
		Where("submission_id IN (?)", bun.In(submissionIDs)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	for _, vote := range votes {
		c := counts[vote.SubmissionID]
		c.Add(vote.VoteType)
		counts[vote.SubmissionID] = c
	}
	return counts, nil
}
