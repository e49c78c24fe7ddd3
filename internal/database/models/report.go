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

// ReportModel handles database operations for error reports.
type ReportModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReport creates a new report model.
func NewReport(db *bun.DB, logger *zap.Logger) *ReportModel {
	return &ReportModel{
		db:     db,
		logger: logger.Named("db_report"),
	}
}

// Create inserts a report.
func (r *ReportModel) Create(ctx context.Context, report *types.ErrorReport) error {
	_, err := r.db.NewInsert().
		Model(report).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// Get retrieves a report by ID.
func (r *ReportModel) Get(ctx context.Context, id uuid.UUID) (*types.ErrorReport, error) {
	return r.GetTx(ctx, r.db, id)
}

// GetTx retrieves a report by ID on the caller's transaction.
func (r *ReportModel) GetTx(ctx context.Context, tx bun.IDB, id uuid.UUID) (*types.ErrorReport, error) {
	report := new(types.ErrorReport)
	err := tx.NewSelect().
		Model(report).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// List retrieves the most recent reports.
func (r *ReportModel) List(ctx context.Context, limit int) ([]*types.ErrorReport, error) {
	var reports []*types.ErrorReport
	err := r.db.NewSelect().
		Model(&reports).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ResolveTx moves a pending report to a terminal status on the caller's
// transaction. Returns false when the report was already resolved.
func (r *ReportModel) ResolveTx(
	ctx context.Context, tx bun.IDB, id uuid.UUID, status enum.ReportStatus, now time.Time,
) (bool, error) {
	res, err := tx.NewUpdate().
		Model((*types.ErrorReport)(nil)).
		Set("status = ?", status).
		Set("resolved_at = ?", now).
		Where("id = ?", id).
		Where("status = ?", enum.ReportStatusPending).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to resolve report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
