package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wathiqhq/trustengine/internal/database/dbretry"
	"github.com/wathiqhq/trustengine/internal/database/models"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
	"go.uber.org/zap"
)

// ConfirmationService handles crowd confirmations of item availability
// and prices at stores, weighted by contributor trust.
type ConfirmationService struct {
	db       *bun.DB
	model    *models.ConfirmationModel
	users    *models.UserModel
	ledger   *LedgerService
	entities EntityLookup
	logger   *zap.Logger
	now      Clock
}

// NewConfirmation creates a new confirmation service.
func NewConfirmation(
	db *bun.DB,
	model *models.ConfirmationModel,
	users *models.UserModel,
	ledger *LedgerService,
	entities EntityLookup,
	logger *zap.Logger,
	now Clock,
) *ConfirmationService {
	return &ConfirmationService{
		db:       db,
		model:    model,
		users:    users,
		ledger:   ledger,
		entities: entities,
		logger:   logger.Named("confirmation_service"),
		now:      now,
	}
}

// RecordParams carries one crowd observation of an item at a store.
type RecordParams struct {
	StoreID     uuid.UUID
	ItemID      uuid.UUID
	ConfirmerID uuid.UUID
	IsAvailable bool
	Price       *types.PriceRange
}

// Record stores an observation stamped with the confirmer's trust weight
// at call time and awards the confirmation points. The observation and
// the award commit as one transaction, so a failed award never leaves an
// unscored confirmation behind. Later reputation changes do not alter the
// stored weight.
func (s *ConfirmationService) Record(
	ctx context.Context, params RecordParams,
) (*types.StoreConfirmation, error) {
	if params.Price != nil {
		if err := params.Price.Validate(); err != nil {
			return nil, err
		}
	}
	if err := s.checkEntities(ctx, params); err != nil {
		return nil, err
	}

	confirmer, err := dbretry.Operation(ctx, func(ctx context.Context) (*types.User, error) {
		return s.users.GetUser(ctx, params.ConfirmerID)
	})
	if err != nil {
		return nil, err
	}

	confirmation := &types.StoreConfirmation{
		ID:          uuid.New(),
		StoreID:     params.StoreID,
		ItemID:      params.ItemID,
		IsAvailable: params.IsAvailable,
		ConfirmerID: params.ConfirmerID,
		TrustWeight: types.TrustWeight(confirmer.ReputationLevel),
		CreatedAt:   s.now(),
	}

	reason := enum.ReasonCodeStoreConfirmation
	if params.Price != nil {
		confirmation.PriceMin = params.Price.Min
		confirmation.PriceMax = params.Price.Max
		confirmation.Currency = params.Price.Currency
		if confirmation.Currency == "" {
			confirmation.Currency = types.DefaultCurrency
		}
		reason = enum.ReasonCodePriceUpdate
	}

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		if err := s.model.CreateTx(ctx, tx, confirmation); err != nil {
			return err
		}
		_, err := s.ledger.AwardTx(ctx, tx, params.ConfirmerID, reason, confirmation.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Confirmation recorded",
		zap.String("storeID", params.StoreID.String()),
		zap.String("itemID", params.ItemID.String()),
		zap.Float64("trustWeight", confirmation.TrustWeight))

	return confirmation, nil
}

// ForItem retrieves the aggregated availability view for an item, one
// summary per store, ranked per the filter's sort order.
func (s *ConfirmationService) ForItem(
	ctx context.Context, itemID uuid.UUID, filter types.ConfirmationFilter,
) ([]*types.StoreSummary, error) {
	observations, err := dbretry.Operation(ctx, func(ctx context.Context) ([]*types.StoreConfirmation, error) {
		return s.model.ListForItem(ctx, itemID, filter.StoreIDs)
	})
	if err != nil {
		return nil, err
	}
	return types.GroupByStore(observations, filter.SortBy), nil
}

func (s *ConfirmationService) checkEntities(ctx context.Context, params RecordParams) error {
	if s.entities == nil {
		return nil
	}
	for _, target := range []struct {
		targetType enum.TargetType
		id         uuid.UUID
	}{
		{enum.TargetTypeStore, params.StoreID},
		{enum.TargetTypeProduct, params.ItemID},
	} {
		exists, err := s.entities.Exists(ctx, target.targetType, target.id)
		if err != nil {
			return err
		}
		if !exists {
			return types.ErrTargetNotFound
		}
	}
	return nil
}
