package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/packlist/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		grams float64
		want  WeightClass
	}{
		{0, ClassUltralight},
		{8999.99, ClassUltralight},
		{9000, ClassLightweight},
		{13999, ClassLightweight},
		{14000, ClassTraditional},
		{19999.5, ClassTraditional},
		{20000, ClassHeavy},
		{35000, ClassHeavy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.grams), "Classify(%v)", tt.grams)
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		grams float64
		want  string
	}{
		{0, "0g"},
		{850, "850g"},
		{999.2, "999g"},
		{1000, "1.0kg"},
		{2753, "2.8kg"},
		{12340, "12.3kg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWeight(tt.grams), "FormatWeight(%v)", tt.grams)
	}
}

func TestAverageItemWeight(t *testing.T) {
	assert.Zero(t, AverageItemWeight(model.PackingListSummary{}))
	assert.InDelta(t, 229.4166, AverageItemWeight(model.PackingListSummary{TotalWeight: 2753, TotalItems: 12}), 1e-3)
}

func TestSortedByWeight(t *testing.T) {
	in := []model.CategoryBreakdown{
		{Category: model.CategoryFood, Weight: 452.5},
		{Category: model.CategoryShelter, Weight: 1500},
		{Category: model.CategoryWater, Weight: 452.5},
		{Category: model.CategoryCooking, Weight: 452.5},
	}

	got := SortedByWeight(in)

	assert.Equal(t, []model.Category{
		model.CategoryShelter,
		model.CategoryCooking,
		model.CategoryFood,
		model.CategoryWater,
	}, []model.Category{got[0].Category, got[1].Category, got[2].Category, got[3].Category})
	// input untouched
	assert.Equal(t, model.CategoryFood, in[0].Category)
}
