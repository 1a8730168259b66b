package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/repository"
)

type GearItemService struct {
	store  repository.Store
	logger *slog.Logger
}

func NewGearItemService(store repository.Store, logger *slog.Logger) *GearItemService {
	return &GearItemService{store: store, logger: logger}
}

// Create validates the item and checks that its packing list exists before
// inserting. An unknown packing_list_id fails with apperror.ErrNotFound and
// nothing is written.
func (s *GearItemService) Create(ctx context.Context, in model.CreateGearItemInput) (*model.GearItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.store.GetPackingList(ctx, in.PackingListID); err != nil {
		logStoreError(s.logger, "failed to check packing list", err, slog.Int64("packing_list_id", in.PackingListID))
		return nil, fmt.Errorf("creating gear item: %w", err)
	}

	item, err := s.store.CreateGearItem(ctx, in)
	if err != nil {
		logStoreError(s.logger, "failed to create gear item", err, slog.String("name", in.Name))
		return nil, fmt.Errorf("creating gear item: %w", err)
	}

	s.logger.Info("gear item created",
		slog.Int64("id", item.ID),
		slog.Int64("packing_list_id", item.PackingListID),
		slog.String("name", item.Name),
	)
	return item, nil
}

// Update applies only the supplied fields. Notes may be cleared with an
// explicit null; every other field rejects null.
func (s *GearItemService) Update(ctx context.Context, id int64, in model.UpdateGearItemInput) (*model.GearItem, error) {
	in.Name = trimOptional(in.Name)
	for _, err := range []error{
		rejectNull("name", in.Name),
		rejectNull("individual_weight", in.IndividualWeight),
		rejectNull("quantity", in.Quantity),
		rejectNull("category", in.Category),
	} {
		if err != nil {
			return nil, err
		}
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	item, err := s.store.UpdateGearItem(ctx, id, in)
	if err != nil {
		logStoreError(s.logger, "failed to update gear item", err, slog.Int64("id", id))
		return nil, fmt.Errorf("updating gear item: %w", err)
	}

	s.logger.Info("gear item updated",
		slog.Int64("id", item.ID),
		slog.String("name", item.Name),
	)
	return item, nil
}

func (s *GearItemService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.DeleteGearItem(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to delete gear item", err, slog.Int64("id", id))
		return false, fmt.Errorf("deleting gear item: %w", err)
	}

	if ok {
		s.logger.Info("gear item deleted", slog.Int64("id", id))
	}
	return ok, nil
}
