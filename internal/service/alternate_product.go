package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/packlist/internal/model"
	"github.com/sakif/packlist/internal/repository"
)

type AlternateProductService struct {
	store  repository.Store
	logger *slog.Logger
}

func NewAlternateProductService(store repository.Store, logger *slog.Logger) *AlternateProductService {
	return &AlternateProductService{store: store, logger: logger}
}

// Create records an alternate against an existing gear item.
func (s *AlternateProductService) Create(ctx context.Context, in model.CreateAlternateProductInput) (*model.AlternateProduct, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.store.GetGearItem(ctx, in.GearItemID); err != nil {
		logStoreError(s.logger, "failed to check gear item", err, slog.Int64("gear_item_id", in.GearItemID))
		return nil, fmt.Errorf("creating alternate product: %w", err)
	}

	alt, err := s.store.CreateAlternateProduct(ctx, in)
	if err != nil {
		logStoreError(s.logger, "failed to create alternate product", err, slog.String("name", in.Name))
		return nil, fmt.Errorf("creating alternate product: %w", err)
	}

	s.logger.Info("alternate product created",
		slog.Int64("id", alt.ID),
		slog.Int64("gear_item_id", alt.GearItemID),
		slog.String("name", alt.Name),
	)
	return alt, nil
}

// Update applies only the supplied fields. product_link and notes may be
// cleared with an explicit null.
func (s *AlternateProductService) Update(ctx context.Context, id int64, in model.UpdateAlternateProductInput) (*model.AlternateProduct, error) {
	in.Name = trimOptional(in.Name)
	if err := rejectNull("name", in.Name); err != nil {
		return nil, err
	}
	if err := rejectNull("weight", in.Weight); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	alt, err := s.store.UpdateAlternateProduct(ctx, id, in)
	if err != nil {
		logStoreError(s.logger, "failed to update alternate product", err, slog.Int64("id", id))
		return nil, fmt.Errorf("updating alternate product: %w", err)
	}

	s.logger.Info("alternate product updated",
		slog.Int64("id", alt.ID),
		slog.String("name", alt.Name),
	)
	return alt, nil
}

func (s *AlternateProductService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.DeleteAlternateProduct(ctx, id)
	if err != nil {
		logStoreError(s.logger, "failed to delete alternate product", err, slog.Int64("id", id))
		return false, fmt.Errorf("deleting alternate product: %w", err)
	}

	if ok {
		s.logger.Info("alternate product deleted", slog.Int64("id", id))
	}
	return ok, nil
}
