// Package repository declares the persistence interfaces the service layer
// depends on. Implementations live in the sqlite and postgres sub-packages;
// the service layer never imports either directly.
//
// Conventions shared by every implementation:
//   - Get and Update return an apperror.NotFound error when the id is unknown.
//   - Delete returns (false, nil) when no row matched; that is not an error.
//   - Deleting a parent cascades to its children through the schema's foreign
//     keys, never through application code.
package repository

import (
	"context"

	"github.com/sakif/packlist/internal/model"
)

type PackingListRepository interface {
	CreatePackingList(ctx context.Context, in model.CreatePackingListInput) (*model.PackingList, error)
	GetPackingList(ctx context.Context, id int64) (*model.PackingList, error)
	ListPackingLists(ctx context.Context) ([]model.PackingList, error)
	UpdatePackingList(ctx context.Context, id int64, in model.UpdatePackingListInput) (*model.PackingList, error)
	DeletePackingList(ctx context.Context, id int64) (bool, error)
}

type GearItemRepository interface {
	CreateGearItem(ctx context.Context, in model.CreateGearItemInput) (*model.GearItem, error)
	GetGearItem(ctx context.Context, id int64) (*model.GearItem, error)
	ListGearItems(ctx context.Context, packingListID int64) ([]model.GearItem, error)
	UpdateGearItem(ctx context.Context, id int64, in model.UpdateGearItemInput) (*model.GearItem, error)
	DeleteGearItem(ctx context.Context, id int64) (bool, error)
}

type AlternateProductRepository interface {
	CreateAlternateProduct(ctx context.Context, in model.CreateAlternateProductInput) (*model.AlternateProduct, error)
	// ListAlternateProductsByPackingList returns every alternate whose gear
	// item belongs to the given list, in one query.
	ListAlternateProductsByPackingList(ctx context.Context, packingListID int64) ([]model.AlternateProduct, error)
	UpdateAlternateProduct(ctx context.Context, id int64, in model.UpdateAlternateProductInput) (*model.AlternateProduct, error)
	DeleteAlternateProduct(ctx context.Context, id int64) (bool, error)
}

// Store is the full entity store: all three record types behind one handle.
type Store interface {
	PackingListRepository
	GearItemRepository
	AlternateProductRepository
	Close() error
}
