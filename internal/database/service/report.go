package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/dbretry"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

// ReportService handles user-filed error reports against the knowledge
// base and their moderator resolution.
type ReportService struct {
	db       *bun.DB
	model    *models.ReportModel
	ledger   *LedgerService
	entities EntityLookup
	logger   *zap.Logger
	now      Clock
}

// NewReport creates a new report service.
func NewReport(
	db *bun.DB,
	model *models.ReportModel,
	ledger *LedgerService,
	entities EntityLookup,
	logger *zap.Logger,
	now Clock,
) *ReportService {
	return &ReportService{
		db:       db,
		model:    model,
		ledger:   ledger,
		entities: entities,
		logger:   logger.Named("report_service"),
		now:      now,
	}
}

// CreateReportParams carries a new error report. Either ItemID references
// a known item or Name identifies one free-form.
type CreateReportParams struct {
	ReporterID uuid.UUID
	ItemID     uuid.UUID
	Name       string
	Company    string
	Reason     string
	SourceURL  string
}

// Create files a report in pending state.
func (s *ReportService) Create(ctx context.Context, params CreateReportParams) (*types.ErrorReport, error) {
	reason := strings.TrimSpace(params.Reason)
	if reason == "" {
		return nil, types.ErrReasonRequired
	}

	name := strings.TrimSpace(params.Name)
	if params.ItemID == uuid.Nil && name == "" {
		return nil, types.ErrReportTargetRequired
	}

	if params.ItemID != uuid.Nil && s.entities != nil {
		exists, err := s.entities.Exists(ctx, enum.TargetTypeProduct, params.ItemID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, types.ErrTargetNotFound
		}
	}

	report := &types.ErrorReport{
		ID:         uuid.New(),
		ItemID:     params.ItemID,
		Name:       name,
		Company:    strings.TrimSpace(params.Company),
		Reason:     reason,
		SourceURL:  strings.TrimSpace(params.SourceURL),
		ReporterID: params.ReporterID,
		Status:     enum.ReportStatusPending,
		CreatedAt:  s.now(),
	}
	if err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		return s.model.Create(ctx, report)
	}); err != nil {
		return nil, err
	}
	return report, nil
}

// List retrieves the most recent reports.
func (s *ReportService) List(ctx context.Context, limit int) ([]*types.ErrorReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ErrorReport, error) {
		return s.model.List(ctx, limit)
	})
}

// Resolve closes a pending report. Accepting a report awards the reporter
// the error-report points in the same transaction; resolving twice fails.
func (s *ReportService) Resolve(
	ctx context.Context, reportID uuid.UUID, accepted bool,
) (*types.ErrorReport, error) {
	status := enum.ReportStatusDismissed
	if accepted {
		status = enum.ReportStatusAccepted
	}

	var report *types.ErrorReport
	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		report, err = s.model.GetTx(ctx, tx, reportID)
		if err != nil {
			return err
		}
		if report.Status != enum.ReportStatusPending {
			return types.ErrReportResolved
		}

		now := s.now()
		applied, err := s.model.ResolveTx(ctx, tx, reportID, status, now)
		if err != nil {
			return err
		}
		if !applied {
			return types.ErrReportResolved
		}

		report.Status = status
		report.ResolvedAt = now

		if !accepted {
			return nil
		}
		_, err = s.ledger.AwardTx(ctx, tx,
			report.ReporterID, enum.ReasonCodeErrorReportAccepted, report.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Report resolved",
		zap.String("reportID", reportID.String()),
		zap.String("status", status.String()))

	return report, nil
}
