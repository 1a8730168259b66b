package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/repository"
	"github.com/sakif/packlist/internal/summary"
)

// PackingListService handles packing lists, their detail view and their
// weight summary.
type PackingListService struct {
	store  repository.Store
	logger *slog.Logger
}

func NewPackingListService(store repository.Store, logger *slog.Logger) *PackingListService {
	return &PackingListService{store: store, logger: logger}
}

// Create validates and saves a new packing list. Surrounding whitespace is
// trimmed from the name, so a blank name is rejected.
func (s *PackingListService) Create(ctx context.Context, in model.CreatePackingListInput) (*model.PackingList, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	pl, err := s.store.CreatePackingList(ctx, in)
	if err != nil {
		logStoreError(s.logger, "failed to create packing list", err, slog.String("name", in.Name))
		return nil, fmt.Errorf("creating packing list: %w", err)
	}

	s.logger.Info("packing list created",
		slog.Int64("id", pl.ID),
		slog.String("name", pl.Name),
	)
	return pl, nil
}

// List returns every packing list in creation order.
func (s *PackingListService) List(ctx context.Context) ([]model.PackingList, error) {
	lists, err := s.store.ListPackingLists(ctx)
	if err != nil {
		logStoreError(s.logger, "failed to list packing lists", err)
		return nil, fmt.Errorf("listing packing lists: %w", err)
	}
	return lists, nil
}

// Update applies the supplied fields only. An empty update still refreshes
// updated_at. Returns apperror.ErrNotFound for an unknown id.
func (s *PackingListService) Update(ctx context.Context, id int64, in model.UpdatePackingListInput) (*model.PackingList, error) {
	in.Name = trimOptional(in.Name)
	if err := rejectNull("name", in.Name); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	pl, err := s.store.UpdatePackingList(ctx, id, in)
	if err != nil {
		logStoreError(s.logger, "failed to update packing list", err, slog.Int64("id", id))
		return nil, fmt.Errorf("updating packing list: %w", err)
	}

	s.logger.Info("packing list updated",
		slog.Int64("id", pl.ID),
		slog.String("name", pl.Name),
	)
	return pl, nil
}

// Delete removes the list together with its items and their alternates.
// It reports false, without error, when no list had that id.
func (s *PackingListService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.DeletePackingList(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to delete packing list", err, slog.Int64("id", id))
		return false, fmt.Errorf("deleting packing list: %w", err)
	}

	if ok {
		s.logger.Info("packing list deleted", slog.Int64("id", id))
	}
	return ok, nil
}

// Summary recomputes the weight summary from the list's current gear items.
// A list with no items, or one that does not exist, yields zero totals and an
// empty breakdown.
func (s *PackingListService) Summary(ctx context.Context, id int64) (model.PackingListSummary, error) {
	items, err := s.store.ListGearItems(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to load gear items for summary", err, slog.Int64("packing_list_id", id))
		return model.PackingListSummary{}, fmt.Errorf("computing summary: %w", err)
	}
	return summary.Compute(id, items), nil
}
