package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/rueidis"
	"github.com/wathiqhq/trustengine/internal/database/dbretry"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"go.uber.org/zap"
)

// DefaultLeaderboardTTL bounds how stale the cached leaderboard may get.
const DefaultLeaderboardTTL = 5 * time.Minute

// LeaderboardService serves the top-contributors view. Results are cached
// in Redis for a short TTL since the leaderboard is read far more often
// than scores change; a nil cache client serves straight from the
// database.
type LeaderboardService struct {
	users  *models.UserModel
	tiers  types.ReputationTiers
	cache  rueidis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewLeaderboard creates a new leaderboard service.
func NewLeaderboard(
	users *models.UserModel,
	tiers types.ReputationTiers,
	cache rueidis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) *LeaderboardService {
	if ttl <= 0 {
		ttl = DefaultLeaderboardTTL
	}
	return &LeaderboardService{
		users:  users,
		tiers:  tiers,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("leaderboard_service"),
	}
}

// Top retrieves the highest-scoring active contributors.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]*types.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	key := fmt.Sprintf("leaderboard:top:%d", limit)
	if entries, ok := s.fromCache(ctx, key); ok {
		return entries, nil
	}

	users, err := dbretry.Operation(ctx, func(ctx context.Context) ([]*types.User, error) {
		return s.users.TopContributors(ctx, limit)
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*types.LeaderboardEntry, len(users))
	for i, user := range users {
		entry := &types.LeaderboardEntry{
			UserID:          user.ID,
			DisplayName:     user.DisplayName,
			DisplayNameAr:   user.DisplayNameAr,
			ScoreTotal:      user.ScoreTotal,
			ReputationLevel: user.ReputationLevel,
		}
		if tier, ok := s.tiers.Info(user.ReputationLevel); ok {
			entry.LevelName = tier.Name
		}
		entries[i] = entry
	}

	s.toCache(ctx, key, entries)
	return entries, nil
}

func (s *LeaderboardService) fromCache(ctx context.Context, key string) ([]*types.LeaderboardEntry, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Do(ctx, s.cache.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			s.logger.Warn("Failed to read leaderboard cache", zap.Error(err))
		}
		return nil, false
	}

	var entries []*types.LeaderboardEntry
	if err := sonic.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn("Failed to decode leaderboard cache", zap.Error(err))
		return nil, false
	}
	return entries, true
}

func (s *LeaderboardService) toCache(ctx context.Context, key string, entries []*types.LeaderboardEntry) {
	if s.cache == nil {
		return
	}

	raw, err := sonic.Marshal(entries)
	if err != nil {
		s.logger.Warn("Failed to encode leaderboard cache", zap.Error(err))
		return
	}

	err = s.cache.Do(ctx,
		s.cache.B().Set().Key(key).Value(rueidis.BinaryString(raw)).Ex(s.ttl).Build(),
	).Error()
	if err != nil {
		s.logger.Warn("Failed to write leaderboard cache", zap.Error(err))
	}
}
