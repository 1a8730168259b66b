package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/summary"
)

// Detail assembles the full view of one list: its own fields, every gear
// item with its alternates and total weight, and the aggregate summary.
//
// Alternates are loaded for the whole list in one query and grouped by gear
// item here. Returns apperror.ErrNotFound when the list does not exist.
func (s *PackingListService) Detail(ctx context.Context, id int64) (*model.DetailedPackingList, error) {
	pl, err := s.store.GetPackingList(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to get packing list", err, slog.Int64("id", id))
		return nil, err
	}

	items, err := s.store.ListGearItems(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to list gear items", err, slog.Int64("packing_list_id", id))
		return nil, fmt.Errorf("loading gear items: %w", err)
	}

	alts, err := s.store.ListAlternateProductsByPackingList(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to list alternate products", err, slog.Int64("packing_list_id", id))
		return nil, fmt.Errorf("loading alternate products: %w", err)
	}

	byItem := make(map[int64][]model.AlternateProduct, len(items))
	for _, a := range alts {
		byItem[a.GearItemID] = append(byItem[a.GearItemID], a)
	}

	details := make([]model.GearItemDetail, 0, len(items))
	for _, item := range items {
		itemAlts := byItem[item.ID]
		if itemAlts == nil {
			itemAlts = []model.AlternateProduct{}
		}
		details = append(details, model.GearItemDetail{
			GearItem:          item,
			TotalWeight:       summary.ItemTotal(item),
			AlternateProducts: itemAlts,
		})
	}

	return &model.DetailedPackingList{
		PackingList: *pl,
		GearItems:   details,
		Summary:     summary.Compute(id, items),
	}, nil
}
