package service_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wathiqhq/trustengine/internal/database/service"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

func setupLeaderboard(t *testing.T, ttl time.Duration) (*testEnv, *service.LeaderboardService, *miniredis.Miniredis) {
	t.Helper()

	env := setupTest(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	leaderboard := service.NewLeaderboard(env.users, types.DefaultReputationTiers(), client, ttl, zap.NewNop())

	return env, leaderboard, mr
}

func (e *testEnv) seedScoredUser(t *testing.T, displayName string, score int64, level int) *types.User {
	t.Helper()

	user := &types.User{
		ID:              uuid.New(),
		DisplayName:     displayName,
		ScoreTotal:      score,
		ReputationLevel: level,
		Role:            types.RoleMember,
		IsActive:        true,
		CreatedAt:       e.clock.Now(),
	}
	require.NoError(t, e.users.CreateUser(t.Context(), user))

	return user
}

func TestLeaderboardTop_RanksByScore(t *testing.T) {
	t.Parallel()

	env, leaderboard, _ := setupLeaderboard(t, time.Minute)
	ctx := t.Context()

	env.seedScoredUser(t, "amal", 210, 2)
	env.seedScoredUser(t, "badr", 55, 1)
	env.seedScoredUser(t, "celine", 600, 3)

	// Zero scores and inactive users never rank.
	env.seedScoredUser(t, "dina", 0, 0)
	inactive := env.seedScoredUser(t, "emad", 900, 3)
	_, err := env.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("is_active = ?", false).
		Where("id = ?", inactive.ID).
		Exec(ctx)
	require.NoError(t, err)

	entries, err := leaderboard.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "celine", entries[0].DisplayName)
	assert.Equal(t, "Power Contributor", entries[0].LevelName)
	assert.Equal(t, "amal", entries[1].DisplayName)
	assert.Equal(t, "badr", entries[2].DisplayName)
}

func TestLeaderboardTop_ServesFromCache(t *testing.T) {
	t.Parallel()

	env, leaderboard, _ := setupLeaderboard(t, time.Minute)
	ctx := t.Context()

	user := env.seedScoredUser(t, "amal", 100, 1)

	entries, err := leaderboard.Top(ctx, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A score change is not visible until the cache expires.
	_, err = env.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("score_total = ?", 500).
		Where("id = ?", user.ID).
		Exec(ctx)
	require.NoError(t, err)

	cached, err := leaderboard.Top(ctx, 5)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, int64(100), cached[0].ScoreTotal)
}

func TestLeaderboardTop_CacheExpires(t *testing.T) {
	t.Parallel()

	ttl := 30 * time.Second
	env, leaderboard, mr := setupLeaderboard(t, ttl)
	ctx := t.Context()

	user := env.seedScoredUser(t, "amal", 100, 1)

	_, err := leaderboard.Top(ctx, 5)
	require.NoError(t, err)

	_, err = env.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("score_total = ?", 500).
		Where("id = ?", user.ID).
		Exec(ctx)
	require.NoError(t, err)

	mr.FastForward(ttl + time.Second)

	fresh, err := leaderboard.Top(ctx, 5)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, int64(500), fresh[0].ScoreTotal)
}

func TestLeaderboardTop_NilCache(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	leaderboard := service.NewLeaderboard(env.users, types.DefaultReputationTiers(), nil, 0, zap.NewNop())

	env.seedScoredUser(t, "amal", 100, 1)

	entries, err := leaderboard.Top(t.Context(), 5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLeaderboardTop_LimitClamped(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	leaderboard := service.NewLeaderboard(env.users, types.DefaultReputationTiers(), nil, 0, zap.NewNop())

	for range 25 {
		env.seedScoredUser(t, "user", 10, 0)
	}

	entries, err := leaderboard.Top(t.Context(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
