// Package summary computes aggregate weight statistics for a packing list.
//
// Compute is a pure function over already-validated gear items: no I/O, no
// errors, a fresh value on every call. Weights are accumulated as decimals so
// fractional grams survive summation exactly as supplied; rounding, if any,
// happens only when a caller formats the result.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/sakif/packlist/internal/model"
)

type accumulator struct {
	weight decimal.Decimal
	count  int
}

// Compute folds items into a PackingListSummary for listID.
//
// Each item contributes IndividualWeight × Quantity to the total and to its
// category, and Quantity to both item counts. An empty input yields zero totals
// and an empty (non-nil) breakdown. Breakdown order is unspecified.
func Compute(listID int64, items []model.GearItem) model.PackingListSummary {
	total := decimal.Zero
	totalItems := 0
	byCategory := make(map[model.Category]*accumulator)

	for _, item := range items {
		itemTotal := decimal.NewFromFloat(item.IndividualWeight).Mul(decimal.NewFromInt(int64(item.Quantity)))

		total = total.Add(itemTotal)
		totalItems += item.Quantity

		acc, ok := byCategory[item.Category]
		if !ok {
			acc = &accumulator{weight: decimal.Zero}
			byCategory[item.Category] = acc
		}
		acc.weight = acc.weight.Add(itemTotal)
		acc.count += item.Quantity
	}

	breakdown := make([]model.CategoryBreakdown, 0, len(byCategory))
	for category, acc := range byCategory {
		breakdown = append(breakdown, model.CategoryBreakdown{
			Category:  category,
			Weight:    acc.weight.InexactFloat64(),
			ItemCount: acc.count,
		})
	}

	return model.PackingListSummary{
		PackingListID:     listID,
		TotalWeight:       total.InexactFloat64(),
		TotalItems:        totalItems,
		CategoryBreakdown: breakdown,
	}
}

// ItemTotal returns the total weight of one gear item, computed the same way
// Compute does so detail views and summaries never disagree.
func ItemTotal(item model.GearItem) float64 {
	return decimal.NewFromFloat(item.IndividualWeight).
		Mul(decimal.NewFromInt(int64(item.Quantity))).
		InexactFloat64()
}
