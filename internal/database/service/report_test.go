package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wathiqhq/trustengine/internal/database/service"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

func TestCreateReport_Validation(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	_, err := env.reports.Create(ctx, service.CreateReportParams{
		ReporterID: user.ID,
		ItemID:     uuid.New(),
		Reason:     "   ",
	})
	require.ErrorIs(t, err, types.ErrReasonRequired)

	_, err = env.reports.Create(ctx, service.CreateReportParams{
		ReporterID: user.ID,
		Reason:     "wrong ingredients listed",
	})
	require.ErrorIs(t, err, types.ErrReportTargetRequired)

	// A free-form name is enough when no item is referenced.
	report, err := env.reports.Create(ctx, service.CreateReportParams{
		ReporterID: user.ID,
		Name:       "  Product A  ",
		Reason:     "wrong ingredients listed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Product A", report.Name)
	assert.Equal(t, enum.ReportStatusPending, report.Status)
}

func TestResolveReport_AcceptAwardsReporter(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	report, err := env.reports.Create(ctx, service.CreateReportParams{
		ReporterID: user.ID,
		ItemID:     uuid.New(),
		Reason:     "wrong company listed",
	})
	require.NoError(t, err)

	resolved, err := env.reports.Resolve(ctx, report.ID, true)
	require.NoError(t, err)
	assert.Equal(t, enum.ReportStatusAccepted, resolved.Status)
	assert.False(t, resolved.ResolvedAt.IsZero())

	updated := env.userScore(t, user.ID)
	assert.Equal(t, int64(8), updated.ScoreTotal)

	entries, err := env.ledger.History(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, enum.ReasonCodeErrorReportAccepted, entries[0].Reason)
	assert.Equal(t, report.ID, entries[0].ReferenceID)
}

func TestResolveReport_DismissAwardsNothing(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	report, err := env.reports.Create(ctx, service.CreateReportParams{
		ReporterID: user.ID,
		ItemID:     uuid.New(),
		Reason:     "duplicate entry",
	})
	require.NoError(t, err)

	resolved, err := env.reports.Resolve(ctx, report.ID, false)
	require.NoError(t, err)
	assert.Equal(t, enum.ReportStatusDismissed, resolved.Status)

	assert.Equal(t, int64(0), env.userScore(t, user.ID).ScoreTotal)
}

func TestResolveReport_OnlyOnce(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	report, err := env.reports.Create(ctx, service.CreateReportParams{
		ReporterID: user.ID,
		ItemID:     uuid.New(),
		Reason:     "wrong company listed",
	})
	require.NoError(t, err)

	_, err = env.reports.Resolve(ctx, report.ID, true)
	require.NoError(t, err)

	// A second decision fails and the award is not repeated.
	_, err = env.reports.Resolve(ctx, report.ID, true)
	require.ErrorIs(t, err, types.ErrReportResolved)
	assert.Equal(t, int64(8), env.userScore(t, user.ID).ScoreTotal)
}

func TestResolveReport_NotFound(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.reports.Resolve(t.Context(), uuid.New(), true)
	require.ErrorIs(t, err, types.ErrReportNotFound)
}

func TestListReports_NewestFirst(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	var last uuid.UUID
	for _, reason := range []string{"first", "second", "third"} {
		report, err := env.reports.Create(ctx, service.CreateReportParams{
			ReporterID: user.ID,
			ItemID:     uuid.New(),
			Reason:     reason,
		})
		require.NoError(t, err)
		last = report.ID
	}

	reports, err := env.reports.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, last, reports[0].ID)
}
