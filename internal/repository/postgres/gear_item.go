package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

const gearItemColumns = `id, packing_list_id, name, individual_weight::float8, quantity,
	category::text, notes, created_at, updated_at`

func scanGearItem(row pgx.Row) (model.GearItem, error) {
	var (
		g        model.GearItem
		category string
	)
	err := row.Scan(
		&g.ID, &g.PackingListID, &g.Name, &g.IndividualWeight, &g.Quantity,
		&category, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
	)
	g.Category = model.Category(category)
	return g, err
}

func (db *DB) CreateGearItem(ctx context.Context, in model.CreateGearItemInput) (*model.GearItem, error) {
	g, err := scanGearItem(db.pool.QueryRow(ctx,
		`INSERT INTO gear_items (packing_list_id, name, individual_weight, quantity, category, notes)
		 VALUES ($1, $2, $3, $4, $5::gear_category, $6)
		 RETURNING `+gearItemColumns,
		in.PackingListID, in.Name, in.IndividualWeight, in.Quantity, string(in.Category), in.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("postgres: creating gear item: %w", err)
	}
	return &g, nil
}

func (db *DB) GetGearItem(ctx context.Context, id int64) (*model.GearItem, error) {
	g, err := scanGearItem(db.pool.QueryRow(ctx,
		`SELECT `+gearItemColumns+` FROM gear_items WHERE id = $1`, id,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("gear item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: getting gear item: %w", err)
	}
	return &g, nil
}

func (db *DB) ListGearItems(ctx context.Context, packingListID int64) ([]model.GearItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+gearItemColumns+` FROM gear_items WHERE packing_list_id = $1 ORDER BY id`,
		packingListID,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres: listing gear items: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.GearItem, error) {
		return scanGearItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: scanning gear items: %w", err)
	}
	if items == nil {
		items = []model.GearItem{}
	}
	return items, nil
}

func (db *DB) UpdateGearItem(ctx context.Context, id int64, in model.UpdateGearItemInput) (*model.GearItem, error) {
	var set setClause
	if in.Name.Present() {
		set.add("name", in.Name.Value, "")
	}
	if in.IndividualWeight.Present() {
		set.add("individual_weight", in.IndividualWeight.Value, "")
	}
	if in.Quantity.Present() {
		set.add("quantity", in.Quantity.Value, "")
	}
	if in.Category.Present() {
		set.add("category", string(in.Category.Value), "::gear_category")
	}
	if in.Notes.Set {
		set.add("notes", in.Notes.Ptr(), "")
	}
	set.parts = append(set.parts, "updated_at = now()")

	g, err := scanGearItem(db.pool.QueryRow(ctx,
		`UPDATE gear_items SET `+set.String()+` WHERE id = `+set.next()+` RETURNING `+gearItemColumns,
		append(set.args, id)...,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("gear item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: updating gear item: %w", err)
	}
	return &g, nil
}

func (db *DB) DeleteGearItem(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM gear_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("postgres: deleting gear item: %w", err)
	}
	return rowsAffected(tag), nil
}
