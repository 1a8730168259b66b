package summary

import (
	"fmt"
	"sort"

	"github.com/sakif/packlist/internal/model"
)

// Base-weight thresholds in grams, as used by the backpacking community
// labels shown next to a list's total.
const (
	ultralightLimit  = 9000
	lightweightLimit = 14000
	traditionalLimit = 20000
)

// WeightClass is a coarse label for a list's total weight.
type WeightClass string

const (
	ClassUltralight  WeightClass = "Ultralight"
	ClassLightweight WeightClass = "Lightweight"
	ClassTraditional WeightClass = "Traditional"
	ClassHeavy       WeightClass = "Heavy"
)

// Classify labels a total weight in grams.
func Classify(grams float64) WeightClass {
	switch {
	case grams < ultralightLimit:
		return ClassUltralight
	case grams < lightweightLimit:
		return ClassLightweight
	case grams < traditionalLimit:
		return ClassTraditional
	default:
		return ClassHeavy
	}
}

// FormatWeight renders grams for display: "850g" below a kilogram, "2.8kg"
// from a kilogram up.
func FormatWeight(grams float64) string {
	if grams >= 1000 {
		return fmt.Sprintf("%.1fkg", grams/1000)
	}
	return fmt.Sprintf("%.0fg", grams)
}

// AverageItemWeight is total weight divided by total items, or 0 for an
// empty list.
func AverageItemWeight(s model.PackingListSummary) float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return s.TotalWeight / float64(s.TotalItems)
}

// SortedByWeight returns a copy of the breakdown ordered heaviest first, ties
// broken by category name. The summary itself stays unordered; this is for
// display only.
func SortedByWeight(breakdown []model.CategoryBreakdown) []model.CategoryBreakdown {
	out := make([]model.CategoryBreakdown, len(breakdown))
	copy(out, breakdown)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Category < out[j].Category
	})
	return out
}
