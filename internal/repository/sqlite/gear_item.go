package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

const gearItemColumns = `id, packing_list_id, name, individual_weight, quantity, category, notes, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanGearItem(s scanner) (model.GearItem, error) {
	var g model.GearItem
	err := s.Scan(
		&g.ID, &g.PackingListID, &g.Name, &g.IndividualWeight, &g.Quantity,
		&g.Category, &g.Notes, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// CreateGearItem inserts a gear item. The caller is expected to have checked
// that the parent list exists; a dangling packing_list_id is still rejected
// by the foreign key.
func (db *DB) CreateGearItem(ctx context.Context, in model.CreateGearItemInput) (*model.GearItem, error) {
	now := time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO gear_items
		   (packing_list_id, name, individual_weight, quantity, category, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.PackingListID, in.Name, in.IndividualWeight, in.Quantity, string(in.Category), in.Notes, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating gear item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading gear item id: %w", err)
	}

	return &model.GearItem{
		ID:               id,
		PackingListID:    in.PackingListID,
		Name:             in.Name,
		IndividualWeight: in.IndividualWeight,
		Quantity:         in.Quantity,
		Category:         in.Category,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (db *DB) GetGearItem(ctx context.Context, id int64) (*model.GearItem, error) {
	g, err := scanGearItem(db.conn.QueryRowContext(ctx,
		`SELECT `+gearItemColumns+` FROM gear_items WHERE id = ?`, id,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("gear item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting gear item: %w", err)
	}
	return &g, nil
}

// ListGearItems returns the items of one list ordered by id. An unknown list
// yields an empty slice.
func (db *DB) ListGearItems(ctx context.Context, packingListID int64) ([]model.GearItem, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+gearItemColumns+` FROM gear_items WHERE packing_list_id = ? ORDER BY id`,
		packingListID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing gear items: %w", err)
	}
	defer rows.Close()

	return collectGearItems(rows)
}

func collectGearItems(rows *sql.Rows) ([]model.GearItem, error) {
	items := make([]model.GearItem, 0)
	for rows.Next() {
		g, err := scanGearItem(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning gear item: %w", err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating gear items: %w", err)
	}
	return items, nil
}

// UpdateGearItem writes only the supplied fields. packing_list_id is never
// changed here; items do not move between lists.
func (db *DB) UpdateGearItem(ctx context.Context, id int64, in model.UpdateGearItemInput) (*model.GearItem, error) {
	var set setClause
	if in.Name.Present() {
		set.add("name", in.Name.Value)
	}
	if in.IndividualWeight.Present() {
		set.add("individual_weight", in.IndividualWeight.Value)
	}
	if in.Quantity.Present() {
		set.add("quantity", in.Quantity.Value)
	}
	if in.Category.Present() {
		set.add("category", string(in.Category.Value))
	}
	if in.Notes.Set {
		set.add("notes", in.Notes.Ptr())
	}
	set.add("updated_at", time.Now().UTC())

	res, err := db.conn.ExecContext(ctx,
		`UPDATE gear_items SET `+set.String()+` WHERE id = ?`,
		append(set.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating gear item: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("gear item", id)
	}

	return db.GetGearItem(ctx, id)
}

// DeleteGearItem removes the item and, by cascade, its alternates.
func (db *DB) DeleteGearItem(ctx context.Context, id int64) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM gear_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("sqlite: deleting gear item: %w", err)
	}
	return rowsAffected(res)
}
