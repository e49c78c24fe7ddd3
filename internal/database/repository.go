package database

import (
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	user         *models.UserModel
	ledger       *models.LedgerModel
	submission   *models.SubmissionModel
	vote         *models.VoteModel
	confirmation *models.ConfirmationModel
	report       *models.ReportModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	user := models.NewUser(db, logger)

	return &Repository{
		user:         user,
		ledger:       models.NewLedger(db, user, logger),
		submission:   models.NewSubmission(db, logger),
		vote:         models.NewVote(db, logger),
		confirmation: models.NewConfirmation(db, logger),
		report:       models.NewReport(db, logger),
	}
}

// User returns the user model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// Ledger returns the score ledger model repository.
func (r *Repository) Ledger() *models.LedgerModel {
	return r.ledger
}

// Submission returns the submission model repository.
func (r *Repository) Submission() *models.SubmissionModel {
	return r.submission
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Confirmation returns the confirmation model repository.
func (r *Repository) Confirmation() *models.ConfirmationModel {
	return r.confirmation
}

// Report returns the report model repository.
func (r *Repository) Report() *models.ReportModel {
	return r.report
}
