package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/dbretry"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

// SubmissionService handles the submission workflow: community proposals,
// advisory votes and binding moderator decisions.
type SubmissionService struct {
	db       *bun.DB
	model    *models.SubmissionModel
	votes    *models.VoteModel
	ledger   *LedgerService
	entities EntityLookup
	logger   *zap.Logger
	now      Clock
}

// NewSubmission creates a new submission service.
func NewSubmission(
	db *bun.DB,
	model *models.SubmissionModel,
	votes *models.VoteModel,
	ledger *LedgerService,
	entities EntityLookup,
	logger *zap.Logger,
	now Clock,
) *SubmissionService {
	return &SubmissionService{
		db:       db,
		model:    model,
		votes:    votes,
		ledger:   ledger,
		entities: entities,
		logger:   logger.Named("submission_service"),
		now:      now,
	}
}

// CreateSubmissionParams carries a new community proposal. A zero TargetID
// proposes a new entity of TargetType.
type CreateSubmissionParams struct {
	SubmitterID          uuid.UUID
	TargetType           enum.TargetType
	TargetID             uuid.UUID
	ProposedData         json.RawMessage
	EvidenceRefs         []string
	ProposedAlternatives json.RawMessage
	ProposedStores       json.RawMessage
}

// Create records a proposal in PENDING state and awards the submitter the
// creation points. Payloads asserting factual claims must carry at least
// one evidence source.
func (s *SubmissionService) Create(
	ctx context.Context, params CreateSubmissionParams,
) (*types.Submission, error) {
	if types.HasClaims(params.ProposedData) && len(params.EvidenceRefs) == 0 {
		return nil, types.ErrEvidenceRequired
	}

	if params.TargetID != uuid.Nil {
		if err := s.checkTarget(ctx, params.TargetType, params.TargetID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	submission := &types.Submission{
		ID:                   uuid.New(),
		SubmitterID:          params.SubmitterID,
		TargetType:           params.TargetType,
		TargetID:             params.TargetID,
		ProposedData:         params.ProposedData,
		EvidenceRefs:         params.EvidenceRefs,
		ProposedAlternatives: params.ProposedAlternatives,
		ProposedStores:       params.ProposedStores,
		Status:               enum.SubmissionStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if err := s.model.CreateTx(ctx, tx, submission); err != nil {
			return err
		}
		_, err := s.ledger.AwardTx(ctx, tx, params.SubmitterID, enum.ReasonCodeSubmissionCreated, submission.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Submission created",
		zap.String("submissionID", submission.ID.String()),
		zap.String("submitterID", params.SubmitterID.String()),
		zap.String("targetType", params.TargetType.String()))

	return submission, nil
}

// Vote records or replaces a voter's stance on an open submission. Votes
// are advisory signal for the moderator and never transition status.
func (s *SubmissionService) Vote(
	ctx context.Context, submissionID, voterID uuid.UUID, voteType enum.VoteType, note string,
) (*types.Vote, error) {
	submission, err := dbretry.Operation(ctx, func(ctx context.Context) (*types.Submission, error) {
		return s.model.Get(ctx, submissionID)
	})
	if err != nil {
		return nil, err
	}
	if submission.Status != enum.SubmissionStatusPending && submission.Status != enum.SubmissionStatusNeedsInfo {
		return nil, types.ErrVotingClosed
	}

	now := s.now()
	vote := &types.Vote{
		SubmissionID: submissionID,
		VoterID:      voterID,
		VoteType:     voteType,
		Note:         note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return s.votes.Upsert(ctx, vote)
	}); err != nil {
		return nil, err
	}
	return vote, nil
}

// ModerateParams carries a moderator decision. DuplicateOf links a MERGED
// submission to the surviving one and triggers the duplicate credit.
type ModerateParams struct {
	NewStatus      enum.SubmissionStatus
	ModeratorNotes string
	DecisionReason string
	DuplicateOf    uuid.UUID
}

// Moderate applies a binding decision. Only transitions in the declared
// table are accepted, and rejected transitions leave no side effects.
// Approval awards the submitter; rejection carries a penalty only when the
// decision reason marks the submission as spam. Approval does not
// materialize the proposed entity; the opaque payload is handed to the
// entity store by the surrounding service.
func (s *SubmissionService) Moderate(
	ctx context.Context, submissionID uuid.UUID, params ModerateParams,
) (*types.Submission, error) {
	var submission *types.Submission
	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		submission, err = s.model.GetTx(ctx, tx, submissionID)
		if err != nil {
			return err
		}
		if !types.CanTransition(submission.Status, params.NewStatus) {
			return fmt.Errorf("%w: %s -> %s",
				types.ErrInvalidTransition, submission.Status, params.NewStatus)
		}

		now := s.now()
		applied, err := s.model.TransitionTx(ctx, tx, submissionID,
			submission.Status, params.NewStatus,
			params.ModeratorNotes, params.DecisionReason, params.DuplicateOf, now)
		if err != nil {
			return err
		}
		if !applied {
			// A concurrent decision moved the submission first.
			return fmt.Errorf("%w: %s -> %s",
				types.ErrInvalidTransition, submission.Status, params.NewStatus)
		}

		submission.Status = params.NewStatus
		submission.ModeratorNotes = params.ModeratorNotes
		submission.DecisionReason = params.DecisionReason
		submission.UpdatedAt = now

		switch params.NewStatus {
		case enum.SubmissionStatusApproved:
			_, err := s.ledger.AwardTx(ctx, tx,
				submission.SubmitterID, enum.ReasonCodeSubmissionApproved, submission.ID)
			return err
		case enum.SubmissionStatusRejected:
			if !types.IsSpamReason(params.DecisionReason) {
				return nil
			}
			_, err := s.ledger.AwardTx(ctx, tx,
				submission.SubmitterID, enum.ReasonCodeSubmissionRejectedSpam, submission.ID)
			return err
		case enum.SubmissionStatusMerged:
			if params.DuplicateOf == uuid.Nil {
				return nil
			}
			submission.DuplicateOf = params.DuplicateOf

			// Credit the submitter of the surviving submission.
			surviving, err := s.model.GetTx(ctx, tx, params.DuplicateOf)
			if err != nil {
				return err
			}
			_, err = s.ledger.AwardTx(ctx, tx,
				surviving.SubmitterID, enum.ReasonCodeDuplicateMerged, submission.ID)
			return err
		case enum.SubmissionStatusPending, enum.SubmissionStatusNeedsInfo:
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Submission moderated",
		zap.String("submissionID", submissionID.String()),
		zap.String("status", params.NewStatus.String()))

	return submission, nil
}

// AcceptEvidence marks an open submission's evidence as verified and
// awards the submitter once.
func (s *SubmissionService) AcceptEvidence(
	ctx context.Context, submissionID uuid.UUID,
) (*types.Submission, error) {
	var submission *types.Submission
	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		submission, err = s.model.GetTx(ctx, tx, submissionID)
		if err != nil {
			return err
		}
		if submission.IsTerminal() {
			return types.ErrSubmissionClosed
		}
		if submission.EvidenceAccepted {
			return types.ErrEvidenceAlreadyAccepted
		}

		now := s.now()
		applied, err := s.model.AcceptEvidenceTx(ctx, tx, submissionID, now)
		if err != nil {
			return err
		}
		if !applied {
			return types.ErrEvidenceAlreadyAccepted
		}

		submission.EvidenceAccepted = true
		submission.UpdatedAt = now

		_, err = s.ledger.AwardTx(ctx, tx,
			submission.SubmitterID, enum.ReasonCodeEvidenceAccepted, submission.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}

// Get retrieves a submission with its vote summary.
func (s *SubmissionService) Get(ctx context.Context, id uuid.UUID) (*types.SubmissionWithVotes, error) {
	submission, err := dbretry.Operation(ctx, func(ctx context.Context) (*types.Submission, error) {
		return s.model.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	counts, err := dbretry.Operation(ctx, func(ctx context.Context) (map[uuid.UUID]types.VoteCounts, error) {
		return s.votes.CountsFor(ctx, []uuid.UUID{id})
	})
	if err != nil {
		return nil, err
	}

	return &types.SubmissionWithVotes{
		Submission: submission,
		VoteCounts: counts[id],
	}, nil
}

// Votes retrieves all votes on a submission, newest activity first.
func (s *SubmissionService) Votes(ctx context.Context, submissionID uuid.UUID) ([]*types.Vote, error) {
	if _, err := dbretry.Operation(ctx, func(ctx context.Context) (*types.Submission, error) {
		return s.model.Get(ctx, submissionID)
	}); err != nil {
		return nil, err
	}
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Vote, error) {
		return s.votes.List(ctx, submissionID)
	})
}

// List retrieves submissions matching a filter, newest first, with vote
// summaries and the total match count.
func (s *SubmissionService) List(
	ctx context.Context, filter types.SubmissionFilter,
) ([]*types.SubmissionWithVotes, int, error) {
	submissions, total, err := s.model.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, len(submissions))
	for i, submission := range submissions {
		ids[i] = submission.ID
	}
	counts, err := s.votes.CountsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*types.SubmissionWithVotes, len(submissions))
	for i, submission := range submissions {
		result[i] = &types.SubmissionWithVotes{
			Submission: submission,
			VoteCounts: counts[submission.ID],
		}
	}
	return result, total, nil
}

func (s *SubmissionService) checkTarget(
	ctx context.Context, targetType enum.TargetType, targetID uuid.UUID,
) error {
	if s.entities == nil {
		return nil
	}
	exists, err := s.entities.Exists(ctx, targetType, targetID)
	if err != nil {
		return fmt.Errorf("failed to check target entity: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %s", types.ErrTargetNotFound, targetType, targetID)
	}
	return nil
}
