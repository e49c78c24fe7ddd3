package types

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

func TestTrustWeight(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{0, 1.0},
		{1, 1.2},
		{2, 1.4},
		{3, 1.6},
	}

	for _, tc := range cases {
		if got := TrustWeight(tc.level); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("TrustWeight(%d) = %f, want %f", tc.level, got, tc.want)
		}
	}
}

func TestPriceRange_Validate(t *testing.T) {
	valid := []PriceRange{
		{Min: 1, Max: 1},
		{Min: 2.5, Max: 3.75, Currency: "LYD"},
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("Expected %+v to validate, got %v", p, err)
		}
	}

	invalid := []PriceRange{
		{Min: 0, Max: 5},
		{Min: -1, Max: 5},
		{Min: 5, Max: 4},
	}
	for _, p := range invalid {
		if err := p.Validate(); err == nil {
			t.Errorf("Expected %+v to fail validation", p)
		}
	}
}

func TestStoreConfirmation_Price(t *testing.T) {
	noPrice := &StoreConfirmation{}
	if noPrice.Price() != nil {
		t.Error("Expected nil price for confirmation without one")
	}

	withPrice := &StoreConfirmation{PriceMin: 3, PriceMax: 4}
	price := withPrice.Price()
	if price == nil {
		t.Fatal("Expected price for confirmation carrying one")
	}

	if price.Currency != DefaultCurrency {
		t.Errorf("Expected default currency %q, got %q", DefaultCurrency, price.Currency)
	}
}

func testObservation(storeID uuid.UUID, weight float64, at time.Time) *StoreConfirmation {
	return &StoreConfirmation{
		ID:          uuid.New(),
		StoreID:     storeID,
		ItemID:      uuid.New(),
		IsAvailable: true,
		ConfirmerID: uuid.New(),
		TrustWeight: weight,
		CreatedAt:   at,
	}
}

func TestGroupByStore_Grouping(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Newest first, as the model returns them.
	newest := testObservation(storeA, 1.2, base.Add(3*time.Hour))
	newest.PriceMin, newest.PriceMax = 5, 6

	older := testObservation(storeA, 1.0, base.Add(2*time.Hour))
	older.PriceMin, older.PriceMax, older.Currency = 4, 5, "USD"

	observations := []*StoreConfirmation{
		newest,
		testObservation(storeB, 1.6, base.Add(90*time.Minute)),
		older,
		testObservation(storeA, 1.4, base),
	}

	summaries := GroupByStore(observations, enum.ConfirmationSortByRecent)
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 store summaries, got %d", len(summaries))
	}

	// Recent sort keeps the store with the newest observation first.
	first := summaries[0]
	if first.StoreID != storeA {
		t.Errorf("Expected store A first, got %s", first.StoreID)
	}

	if len(first.Confirmations) != 3 {
		t.Errorf("Expected 3 confirmations for store A, got %d", len(first.Confirmations))
	}

	if math.Abs(first.WeightedScore-3.6) > 1e-9 {
		t.Errorf("Expected weighted score 3.6 for store A, got %f", first.WeightedScore)
	}

	if !first.LastConfirmedAt.Equal(newest.CreatedAt) {
		t.Errorf("Expected last confirmed at %v, got %v", newest.CreatedAt, first.LastConfirmedAt)
	}

	// The latest price wins, not the latest observation.
	if first.LatestPrice == nil || first.LatestPrice.Min != 5 {
		t.Errorf("Expected latest price min 5, got %+v", first.LatestPrice)
	}
}

func TestGroupByStore_SortByConfirmations(t *testing.T) {
	// Two high-trust observations outrank three low-trust ones.
	crowd := uuid.New()
	trusted := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	observations := []*StoreConfirmation{
		testObservation(crowd, 1.0, base.Add(5*time.Minute)),
		testObservation(crowd, 1.0, base.Add(4*time.Minute)),
		testObservation(trusted, 1.6, base.Add(3*time.Minute)),
		testObservation(trusted, 1.6, base.Add(2*time.Minute)),
		testObservation(crowd, 1.0, base.Add(time.Minute)),
	}

	summaries := GroupByStore(observations, enum.ConfirmationSortByConfirmations)
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 store summaries, got %d", len(summaries))
	}

	if summaries[0].StoreID != trusted {
		t.Errorf("Expected trusted store first (3.2 > 3.0), got %s", summaries[0].StoreID)
	}
}

func TestGroupByStore_WeightedSumNotRawCount(t *testing.T) {
	// A level-0 plus a level-3 observation (2.6) still loses to three
	// level-0 observations (3.0): ranking is by weighted sum, and here the
	// raw-count winner also wins on weight.
	mixed := uuid.New()
	crowd := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	observations := []*StoreConfirmation{
		testObservation(mixed, 1.6, base.Add(5*time.Minute)),
		testObservation(crowd, 1.0, base.Add(4*time.Minute)),
		testObservation(crowd, 1.0, base.Add(3*time.Minute)),
		testObservation(mixed, 1.0, base.Add(2*time.Minute)),
		testObservation(crowd, 1.0, base.Add(time.Minute)),
	}

	summaries := GroupByStore(observations, enum.ConfirmationSortByConfirmations)
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 store summaries, got %d", len(summaries))
	}

	if summaries[0].StoreID != crowd {
		t.Errorf("Expected crowd store first (3.0 > 2.6), got %s", summaries[0].StoreID)
	}

	if math.Abs(summaries[1].WeightedScore-2.6) > 1e-9 {
		t.Errorf("Expected weighted score 2.6 for mixed store, got %f", summaries[1].WeightedScore)
	}
}

func TestGroupByStore_SortByPrice(t *testing.T) {
	cheap := uuid.New()
	pricey := uuid.New()
	unpriced := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cheapObs := testObservation(cheap, 1.0, base.Add(time.Minute))
	cheapObs.PriceMin, cheapObs.PriceMax = 2, 3

	priceyObs := testObservation(pricey, 1.0, base.Add(2*time.Minute))
	priceyObs.PriceMin, priceyObs.PriceMax = 9, 10

	observations := []*StoreConfirmation{
		testObservation(unpriced, 1.0, base.Add(3*time.Minute)),
		priceyObs,
		cheapObs,
	}

	summaries := GroupByStore(observations, enum.ConfirmationSortByPrice)
	if len(summaries) != 3 {
		t.Fatalf("Expected 3 store summaries, got %d", len(summaries))
	}

	if summaries[0].StoreID != cheap {
		t.Errorf("Expected cheapest store first, got %s", summaries[0].StoreID)
	}

	if summaries[2].StoreID != unpriced {
		t.Errorf("Expected unpriced store last, got %s", summaries[2].StoreID)
	}
}

func TestGroupByStore_Empty(t *testing.T) {
	summaries := GroupByStore(nil, enum.ConfirmationSortByRecent)
	if len(summaries) != 0 {
		t.Errorf("Expected no summaries for no observations, got %d", len(summaries))
	}
}
