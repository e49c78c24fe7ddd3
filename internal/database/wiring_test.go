package database_test

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/wathiqhq/trustengine/internal/database"
	"github.com/wathiqhq/trustengine/internal/database/service"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

func setupWiring(t *testing.T) (*database.Repository, *database.Service) {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file:wiring?mode=memory&cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := t.Context()
	for _, model := range []any{
		(*types.User)(nil),
		(*types.ScoreLedgerEntry)(nil),
		(*types.Submission)(nil),
		(*types.Vote)(nil),
		(*types.StoreConfirmation)(nil),
		(*types.ErrorReport)(nil),
	} {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		require.NoError(t, err)
	}

	logger := zap.NewNop()
	repo := database.NewRepository(db, logger)
	svc := database.NewService(db, repo, database.ServiceDeps{}, logger)

	return repo, svc
}

func TestServiceDefaults_EndToEnd(t *testing.T) {
	repo, svc := setupWiring(t)
	ctx := t.Context()

	user := &types.User{
		ID:          uuid.New(),
		DisplayName: "amal",
		Role:        types.RoleMember,
		IsActive:    true,
	}
	require.NoError(t, repo.User().CreateUser(ctx, user))

	// Create, approve and verify the score through the aggregate services.
	submission, err := svc.Submission().Create(ctx, service.CreateSubmissionParams{
		SubmitterID:  user.ID,
		TargetType:   enum.TargetTypeCompany,
		ProposedData: json.RawMessage(`{"name":"Company A"}`),
	})
	require.NoError(t, err)

	_, err = svc.Submission().Moderate(ctx, submission.ID, service.ModerateParams{
		NewStatus: enum.SubmissionStatusApproved,
	})
	require.NoError(t, err)

	updated, err := repo.User().GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), updated.ScoreTotal)

	// The default tier table backs classification.
	assert.Equal(t, 1, svc.Ledger().Classify(updated.ScoreTotal+25))

	// A nil cache serves the leaderboard straight from the database.
	entries, err := svc.Leaderboard().Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "amal", entries[0].DisplayName)
	assert.Equal(t, "New User", entries[0].LevelName)
}
