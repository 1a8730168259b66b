package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

const alternateColumns = `a.id, a.gear_item_id, a.name, a.weight::float8, a.product_link, a.notes, a.created_at`

func scanAlternate(row pgx.Row) (model.AlternateProduct, error) {
	var a model.AlternateProduct
	err := row.Scan(&a.ID, &a.GearItemID, &a.Name, &a.Weight, &a.ProductLink, &a.Notes, &a.CreatedAt)
	return a, err
}

func (db *DB) CreateAlternateProduct(ctx context.Context, in model.CreateAlternateProductInput) (*model.AlternateProduct, error) {
	a, err := scanAlternate(db.pool.QueryRow(ctx,
		`INSERT INTO alternate_products AS a (gear_item_id, name, weight, product_link, notes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+alternateColumns,
		in.GearItemID, in.Name, in.Weight, in.ProductLink, in.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("postgres: creating alternate product: %w", err)
	}
	return &a, nil
}

func (db *DB) getAlternateProduct(ctx context.Context, id int64) (*model.AlternateProduct, error) {
	a, err := scanAlternate(db.pool.QueryRow(ctx,
		`SELECT `+alternateColumns+` FROM alternate_products a WHERE a.id = $1`, id,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("alternate product", id)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: getting alternate product: %w", err)
	}
	return &a, nil
}

func (db *DB) ListAlternateProductsByPackingList(ctx context.Context, packingListID int64) ([]model.AlternateProduct, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+alternateColumns+`
		 FROM alternate_products a
		 JOIN gear_items g ON g.id = a.gear_item_id
		 WHERE g.packing_list_id = $1
		 ORDER BY a.id`,
		packingListID,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: listing alternate products: %w", err)
	}

	alts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.AlternateProduct, error) {
		return scanAlternate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: scanning alternate products: %w", err)
	}
	if alts == nil {
		alts = []model.AlternateProduct{}
	}
	return alts, nil
}

// UpdateAlternateProduct returns the current record unchanged for an empty
// update; alternates carry no updated_at to refresh.
func (db *DB) UpdateAlternateProduct(ctx context.Context, id int64, in model.UpdateAlternateProductInput) (*model.AlternateProduct, error) {
	var set setClause
	if in.Name.Present() {
		set.add("name", in.Name.Value, "")
	}
	if in.Weight.Present() {
		set.add("weight", in.Weight.Value, "")
	}
	if in.ProductLink.Set {
		set.add("product_link", in.ProductLink.Ptr(), "")
	}
	if in.Notes.Set {
		set.add("notes", in.Notes.Ptr(), "")
	}
	if set.empty() {
		return db.getAlternateProduct(ctx, id)
	}

	a, err := scanAlternate(db.pool.QueryRow(ctx,
		`UPDATE alternate_products AS a SET `+set.String()+` WHERE a.id = `+set.next()+` RETURNING `+alternateColumns,
		append(set.args, id)...,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("alternate product", id)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: updating alternate product: %w", err)
	}
	return &a, nil
}

func (db *DB) DeleteAlternateProduct(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM alternate_products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("postgres: deleting alternate product: %w", err)
	}
	return rowsAffected(tag), nil
}
