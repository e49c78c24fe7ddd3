package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"github.com/wathiqhq/trustengine/internal/database/service"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

// testClock hands out strictly increasing timestamps so ordering by
// created_at stays deterministic.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Second)

	return c.now
}

// stubLookup is a canned entity lookup for target validation tests.
type stubLookup struct {
	exists bool
}

func (s stubLookup) Exists(context.Context, enum.TargetType, uuid.UUID) (bool, error) {
	return s.exists, nil
}

type testEnv struct {
	db            *bun.DB
	clock         *testClock
	users         *models.UserModel
	ledgerModel   *models.LedgerModel
	votes         *models.VoteModel
	ledger        *service.LedgerService
	submissions   *service.SubmissionService
	confirmations *service.ConfirmationService
	reports       *service.ReportService
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	// Each test gets its own named in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
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
		_, err := db.NewCreateTable().Model(model).Exec(ctx)
		require.NoError(t, err)
	}

	logger := zap.NewNop()
	clock := newTestClock()

	users := models.NewUser(db, logger)
	ledgerModel := models.NewLedger(db, users, logger)
	submissionModel := models.NewSubmission(db, logger)
	voteModel := models.NewVote(db, logger)
	confirmationModel := models.NewConfirmation(db, logger)
	reportModel := models.NewReport(db, logger)

	ledger := service.NewLedger(ledgerModel, types.DefaultPointPolicy(), types.DefaultReputationTiers(), logger, clock.Now)

	return &testEnv{
		db:            db,
		clock:         clock,
		users:         users,
		ledgerModel:   ledgerModel,
		votes:         voteModel,
		ledger:        ledger,
		submissions:   service.NewSubmission(db, submissionModel, voteModel, ledger, nil, logger, clock.Now),
		confirmations: service.NewConfirmation(db, confirmationModel, users, ledger, nil, logger, clock.Now),
		reports:       service.NewReport(db, reportModel, ledger, nil, logger, clock.Now),
	}
}

func (e *testEnv) seedUser(t *testing.T, displayName string) *types.User {
	t.Helper()

	user := &types.User{
		ID:          uuid.New(),
		DisplayName: displayName,
		Role:        types.RoleMember,
		IsActive:    true,
		CreatedAt:   e.clock.Now(),
	}
	require.NoError(t, e.users.CreateUser(t.Context(), user))

	return user
}

func (e *testEnv) userScore(t *testing.T, id uuid.UUID) *types.User {
	t.Helper()

	user, err := e.users.GetUser(t.Context(), id)
	require.NoError(t, err)

	return user
}

// ledgerSum recomputes a user's score from the ledger so tests can check
// the running total invariant.
func (e *testEnv) ledgerSum(t *testing.T, id uuid.UUID) int64 {
	t.Helper()

	entries, err := e.ledger.History(t.Context(), id, 100)
	require.NoError(t, err)

	var sum int64
	for _, entry := range entries {
		sum += int64(entry.Points)
	}

	return sum
}
