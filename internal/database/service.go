package database

import (
	"time"

	"github.com/redis/rueidis"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/service"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

// ServiceDeps carries the optional collaborators and policy data the
// engine services depend on. Zero values fall back to defaults: the
// standard point policy and tier table, time.Now, no entity checks and no
// leaderboard cache.
type ServiceDeps struct {
	Policy         types.PointPolicy
	Tiers          types.ReputationTiers
	Entities       service.EntityLookup
	Cache          rueidis.Client
	LeaderboardTTL time.Duration
	Clock          service.Clock
}

// Service provides access to all business logic services.
type Service struct {
	ledger       *service.LedgerService
	submission   *service.SubmissionService
	confirmation *service.ConfirmationService
	report       *service.ReportService
	leaderboard  *service.LeaderboardService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, deps ServiceDeps, logger *zap.Logger) *Service {
	if deps.Policy == nil {
		deps.Policy = types.DefaultPointPolicy()
	}
	if deps.Tiers == nil {
		deps.Tiers = types.DefaultReputationTiers()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	ledger := service.NewLedger(repository.Ledger(), deps.Policy, deps.Tiers, logger, deps.Clock)

	return &Service{
		ledger: ledger,
		submission: service.NewSubmission(db, repository.Submission(), repository.Vote(),
			ledger, deps.Entities, logger, deps.Clock),
		confirmation: service.NewConfirmation(db, repository.Confirmation(), repository.User(),
			ledger, deps.Entities, logger, deps.Clock),
		report: service.NewReport(db, repository.Report(),
			ledger, deps.Entities, logger, deps.Clock),
		leaderboard: service.NewLeaderboard(repository.User(), deps.Tiers,
			deps.Cache, deps.LeaderboardTTL, logger),
	}
}

// Ledger returns the score ledger service.
func (s *Service) Ledger() *service.LedgerService {
	return s.ledger
}

// Submission returns the submission workflow service.
func (s *Service) Submission() *service.SubmissionService {
	return s.submission
}

// Confirmation returns the crowd confirmation service.
func (s *Service) Confirmation() *service.ConfirmationService {
	return s.confirmation
}

// Report returns the error report service.
func (s *Service) Report() *service.ReportService {
	return s.report
}

// Leaderboard returns the leaderboard service.
func (s *Service) Leaderboard() *service.LeaderboardService {
	return s.leaderboard
}
