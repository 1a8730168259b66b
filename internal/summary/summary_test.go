package summary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/packlist/internal/model"
)

func byCategory(t *testing.T, s model.PackingListSummary) map[model.Category]model.CategoryBreakdown {
	t.Helper()
	out := make(map[model.Category]model.CategoryBreakdown, len(s.CategoryBreakdown))
	for _, b := range s.CategoryBreakdown {
		if _, dup := out[b.Category]; dup {
			t.Fatalf("category %q appears more than once in breakdown", b.Category)
		}
		out[b.Category] = b
	}
	return out
}

func TestCompute_Example(t *testing.T) {
	items := []model.GearItem{
		{Name: "Tent", IndividualWeight: 1500, Quantity: 1, Category: model.CategoryShelter},
		{Name: "SleepingBag", IndividualWeight: 800.5, Quantity: 1, Category: model.CategorySleepSystem},
		{Name: "EnergyBars", IndividualWeight: 45.25, Quantity: 10, Category: model.CategoryFood},
	}

	got := Compute(1, items)

	assert.Equal(t, int64(1), got.PackingListID)
	assert.Equal(t, 2753.0, got.TotalWeight)
	assert.Equal(t, 12, got.TotalItems)

	cats := byCategory(t, got)
	require.Len(t, cats, 3)
	assert.Equal(t, model.CategoryBreakdown{Category: model.CategoryShelter, Weight: 1500, ItemCount: 1}, cats[model.CategoryShelter])
	assert.Equal(t, model.CategoryBreakdown{Category: model.CategorySleepSystem, Weight: 800.5, ItemCount: 1}, cats[model.CategorySleepSystem])
	assert.Equal(t, model.CategoryBreakdown{Category: model.CategoryFood, Weight: 452.5, ItemCount: 10}, cats[model.CategoryFood])
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(9, nil)

	assert.Equal(t, int64(9), got.PackingListID)
	assert.Zero(t, got.TotalWeight)
	assert.Zero(t, got.TotalItems)
	require.NotNil(t, got.CategoryBreakdown, "breakdown must be an empty slice, not nil, so it encodes as []")
	assert.Empty(t, got.CategoryBreakdown)
}

func TestCompute_MergesSameCategory(t *testing.T) {
	items := []model.GearItem{
		{IndividualWeight: 120, Quantity: 2, Category: model.CategoryClothing},
		{IndividualWeight: 300.75, Quantity: 1, Category: model.CategoryClothing},
		{IndividualWeight: 0.1, Quantity: 3, Category: model.CategoryHygiene},
	}

	got := Compute(2, items)
	cats := byCategory(t, got)

	require.Len(t, cats, 2)
	assert.Equal(t, 540.75, cats[model.CategoryClothing].Weight)
	assert.Equal(t, 3, cats[model.CategoryClothing].ItemCount)
	// 0.1 × 3 accumulated as decimals is exactly 0.3, not 0.30000000000000004.
	assert.Equal(t, 0.3, cats[model.CategoryHygiene].Weight)
	assert.Equal(t, 6, got.TotalItems)
}

func TestCompute_AbsentCategoriesOmitted(t *testing.T) {
	got := Compute(3, []model.GearItem{
		{IndividualWeight: 50, Quantity: 1, Category: model.CategoryWater},
	})
	cats := byCategory(t, got)

	for _, c := range model.Categories {
		_, present := cats[c]
		assert.Equal(t, c == model.CategoryWater, present, "category %q", c)
	}
}

func TestCompute_MatchesDirectSummation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := rng.Intn(300)
		items := make([]model.GearItem, n)
		wantWeight := 0.0
		wantItems := 0
		wantCat := make(map[model.Category]model.CategoryBreakdown)

		for i := range items {
			w := float64(rng.Intn(500000)+1) / 100 // up to 5000.00 g, two decimals
			q := rng.Intn(20) + 1
			c := model.Categories[rng.Intn(len(model.Categories))]
			items[i] = model.GearItem{IndividualWeight: w, Quantity: q, Category: c}

			wantWeight += w * float64(q)
			wantItems += q
			b := wantCat[c]
			b.Category = c
			b.Weight += w * float64(q)
			b.ItemCount += q
			wantCat[c] = b
		}

		got := Compute(int64(round), items)

		assert.InDelta(t, wantWeight, got.TotalWeight, 1e-6)
		assert.Equal(t, wantItems, got.TotalItems)

		cats := byCategory(t, got)
		require.Len(t, cats, len(wantCat))
		for c, want := range wantCat {
			assert.InDelta(t, want.Weight, cats[c].Weight, 1e-6, "category %q weight", c)
			assert.Equal(t, want.ItemCount, cats[c].ItemCount, "category %q count", c)
		}
	}
}

func TestCompute_FreshValueEachCall(t *testing.T) {
	items := []model.GearItem{{IndividualWeight: 10, Quantity: 1, Category: model.CategoryOther}}

	first := Compute(1, items)
	first.CategoryBreakdown[0].Weight = 9999

	second := Compute(1, items)
	assert.Equal(t, 10.0, second.CategoryBreakdown[0].Weight)
}

func TestItemTotal(t *testing.T) {
	assert.Equal(t, 452.5, ItemTotal(model.GearItem{IndividualWeight: 45.25, Quantity: 10}))
	assert.Equal(t, 0.3, ItemTotal(model.GearItem{IndividualWeight: 0.1, Quantity: 3}))
}
