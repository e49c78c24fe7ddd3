package types

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

var ErrInvalidPriceRange = errors.New("price range must have 0 < min <= max")

// DefaultCurrency is assumed when a price is reported without one.
const DefaultCurrency = "LYD"

// TrustWeight computes the multiplier applied to a confirmation based on
// the confirmer's reputation level at observation time. Levels 0-3 map to
// weights 1.0, 1.2, 1.4 and 1.6.
func TrustWeight(reputationLevel int) float64 {
	return 1 + float64(reputationLevel)*0.2
}

// PriceRange is an observed price interval for an item at a store.
type PriceRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Validate checks a reported price range.
func (p PriceRange) Validate() error {
	if p.Min <= 0 || p.Max < p.Min {
		return ErrInvalidPriceRange
	}
	return nil
}

// StoreConfirmation is one crowd observation of an item at a store. Rows
// are append-only; TrustWeight is a snapshot of the confirmer's standing
// at write time and is never recomputed, so historical aggregates stay
// reproducible as reputations change.
type StoreConfirmation struct {
	ID          uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	StoreID     uuid.UUID `bun:",notnull,type:uuid" json:"storeId"`
	ItemID      uuid.UUID `bun:",notnull,type:uuid" json:"itemId"`
	IsAvailable bool      `bun:",notnull"           json:"isAvailable"`
	PriceMin    float64   `bun:",nullzero"          json:"priceMin,omitempty"`
	PriceMax    float64   `bun:",nullzero"          json:"priceMax,omitempty"`
	Currency    string    `bun:",nullzero"          json:"currency,omitempty"`
	ConfirmerID uuid.UUID `bun:",notnull,type:uuid" json:"confirmerId"`
	TrustWeight float64   `bun:",notnull"           json:"trustWeight"`
	CreatedAt   time.Time `bun:",notnull"           json:"createdAt"`
}

// Price returns the observed price range, if one was reported.
func (c *StoreConfirmation) Price() *PriceRange {
	if c.PriceMin == 0 && c.PriceMax == 0 {
		return nil
	}
	currency := c.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return &PriceRange{Min: c.PriceMin, Max: c.PriceMax, Currency: currency}
}

// StoreSummary is the aggregated view of one store's confirmations for an
// item. WeightedScore is the sum of trust weights over the store's current
// confirmations; ranking "by confirmations" uses this sum, not the raw
// count, so a level-3 user's observation counts 1.6x a level-0 user's.
type StoreSummary struct {
	StoreID         uuid.UUID            `json:"storeId"`
	IsAvailable     bool                 `json:"isAvailable"`
	LatestPrice     *PriceRange          `json:"latestPrice,omitempty"`
	WeightedScore   float64              `json:"weightedScore"`
	LastConfirmedAt time.Time            `json:"lastConfirmedAt"`
	Confirmations   []*StoreConfirmation `json:"confirmations"`
}

// GroupByStore folds raw observations, ordered newest first, into one
// summary per store and ranks the stores. Availability and price come from
// each store's most recent observation carrying them.
func GroupByStore(observations []*StoreConfirmation, sortBy enum.ConfirmationSortBy) []*StoreSummary {
	byStore := make(map[uuid.UUID]*StoreSummary)
	ordered := make([]*StoreSummary, 0)

	for _, obs := range observations {
		summary, ok := byStore[obs.StoreID]
		if !ok {
			summary = &StoreSummary{
				StoreID:         obs.StoreID,
				IsAvailable:     obs.IsAvailable,
				LastConfirmedAt: obs.CreatedAt,
			}
			byStore[obs.StoreID] = summary
			ordered = append(ordered, summary)
		}
		if summary.LatestPrice == nil {
			summary.LatestPrice = obs.Price()
		}
		summary.WeightedScore += obs.TrustWeight
		summary.Confirmations = append(summary.Confirmations, obs)
	}

	switch sortBy {
	case enum.ConfirmationSortByPrice:
		// Stores without a reported price sort last.
		sort.SliceStable(ordered, func(i, j int) bool {
			pi, pj := ordered[i].LatestPrice, ordered[j].LatestPrice
			if pi == nil {
				return false
			}
			if pj == nil {
				return true
			}
			return pi.Min < pj.Min
		})
	case enum.ConfirmationSortByConfirmations:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].WeightedScore > ordered[j].WeightedScore
		})
	case enum.ConfirmationSortByRecent:
		// Input is newest first, so first-seen order is already most
		// recently confirmed first.
	}

	return ordered
}

// ConfirmationFilter narrows aggregated availability views.
type ConfirmationFilter struct {
	StoreIDs []uuid.UUID
	SortBy   enum.ConfirmationSortBy
}
