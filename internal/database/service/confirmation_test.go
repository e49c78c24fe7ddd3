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

func TestRecord_AvailabilityConfirmation(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	confirmation, err := env.confirmations.Record(ctx, service.RecordParams{
		StoreID:     uuid.New(),
		ItemID:      uuid.New(),
		ConfirmerID: user.ID,
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, confirmation.TrustWeight, 1e-9)
	assert.Nil(t, confirmation.Price())

	updated := env.userScore(t, user.ID)
	assert.Equal(t, int64(2), updated.ScoreTotal)

	entries, err := env.ledger.History(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, enum.ReasonCodeStoreConfirmation, entries[0].Reason)
}

func TestRecord_PriceUpdate(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")

	confirmation, err := env.confirmations.Record(ctx, service.RecordParams{
		StoreID:     uuid.New(),
		ItemID:      uuid.New(),
		ConfirmerID: user.ID,
		IsAvailable: true,
		Price:       &types.PriceRange{Min: 4.5, Max: 5},
	})
	require.NoError(t, err)

	price := confirmation.Price()
	require.NotNil(t, price)
	assert.InDelta(t, 4.5, price.Min, 1e-9)
	assert.Equal(t, types.DefaultCurrency, price.Currency)

	entries, err := env.ledger.History(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, enum.ReasonCodePriceUpdate, entries[0].Reason)
}

func TestRecord_InvalidPrice(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	user := env.seedUser(t, "amal")

	_, err := env.confirmations.Record(t.Context(), service.RecordParams{
		StoreID:     uuid.New(),
		ItemID:      uuid.New(),
		ConfirmerID: user.ID,
		Price:       &types.PriceRange{Min: 5, Max: 4},
	})
	require.ErrorIs(t, err, types.ErrInvalidPriceRange)

	assert.Equal(t, int64(0), env.userScore(t, user.ID).ScoreTotal)
}

func TestRecord_UnknownConfirmer(t *testing.T) {
	t.Parallel()

	env := setupTest(t)

	_, err := env.confirmations.Record(t.Context(), service.RecordParams{
		StoreID:     uuid.New(),
		ItemID:      uuid.New(),
		ConfirmerID: uuid.New(),
	})
	require.ErrorIs(t, err, types.ErrUserNotFound)
}

func TestRecord_TrustWeightIsSnapshot(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	user := env.seedUser(t, "amal")
	itemID := uuid.New()
	storeID := uuid.New()

	first, err := env.confirmations.Record(ctx, service.RecordParams{
		StoreID:     storeID,
		ItemID:      itemID,
		ConfirmerID: user.ID,
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, first.TrustWeight, 1e-9)

	// Promote the confirmer to level 2 and record again.
	_, err = env.ledger.AwardPoints(ctx, user.ID, 200, enum.ReasonCodeSubmissionApproved, uuid.Nil)
	require.NoError(t, err)

	second, err := env.confirmations.Record(ctx, service.RecordParams{
		StoreID:     storeID,
		ItemID:      itemID,
		ConfirmerID: user.ID,
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.4, second.TrustWeight, 1e-9)

	// The earlier observation keeps the weight it was stamped with.
	summaries, err := env.confirmations.ForItem(ctx, itemID, types.ConfirmationFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 2.4, summaries[0].WeightedScore, 1e-9)
}

func TestForItem_GroupsAndRanks(t *testing.T) {
	t.Parallel()

	env := setupTest(t)
	ctx := t.Context()
	itemID := uuid.New()
	busyStore := uuid.New()
	quietStore := uuid.New()

	users := []*types.User{
		env.seedUser(t, "amal"),
		env.seedUser(t, "badr"),
		env.seedUser(t, "celine"),
	}

	for _, user := range users {
		_, err := env.confirmations.Record(ctx, service.RecordParams{
			StoreID:     busyStore,
			ItemID:      itemID,
			ConfirmerID: user.ID,
			IsAvailable: true,
		})
		require.NoError(t, err)
	}

	_, err := env.confirmations.Record(ctx, service.RecordParams{
		StoreID:     quietStore,
		ItemID:      itemID,
		ConfirmerID: users[0].ID,
		IsAvailable: true,
		Price:       &types.PriceRange{Min: 3, Max: 3},
	})
	require.NoError(t, err)

	summaries, err := env.confirmations.ForItem(ctx, itemID, types.ConfirmationFilter{
		SortBy: enum.ConfirmationSortByConfirmations,
	})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, busyStore, summaries[0].StoreID)
	assert.InDelta(t, 3.0, summaries[0].WeightedScore, 1e-9)
	assert.Len(t, summaries[0].Confirmations, 3)

	require.NotNil(t, summaries[1].LatestPrice)
	assert.InDelta(t, 3.0, summaries[1].LatestPrice.Min, 1e-9)

	// Narrowing to one store drops the other summary.
	only, err := env.confirmations.ForItem(ctx, itemID, types.ConfirmationFilter{
		StoreIDs: []uuid.UUID{quietStore},
	})
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, quietStore, only[0].StoreID)
}
