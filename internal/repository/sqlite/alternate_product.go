package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

const alternateColumns = `a.id, a.gear_item_id, a.name, a.weight, a.product_link, a.notes, a.created_at`

func scanAlternate(s scanner) (model.AlternateProduct, error) {
	var a model.AlternateProduct
	err := s.Scan(&a.ID, &a.GearItemID, &a.Name, &a.Weight, &a.ProductLink, &a.Notes, &a.CreatedAt)
	return a, err
}

func (db *DB) CreateAlternateProduct(ctx context.Context, in model.CreateAlternateProductInput) (*model.AlternateProduct, error) {
	now := time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO alternate_products (gear_item_id, name, weight, product_link, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.GearItemID, in.Name, in.Weight, in.ProductLink, in.Notes, now,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating alternate product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading alternate product id: %w", err)
	}

	return &model.AlternateProduct{
		ID:          id,
		GearItemID:  in.GearItemID,
		Name:        in.Name,
		Weight:      in.Weight,
		ProductLink: in.ProductLink,
		Notes:       in.Notes,
		CreatedAt:   now,
	}, nil
}

func (db *DB) getAlternateProduct(ctx context.Context, id int64) (*model.AlternateProduct, error) {
	a, err := scanAlternate(db.conn.QueryRowContext(ctx,
		`SELECT `+alternateColumns+` FROM alternate_products a WHERE a.id = ?`, id,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("alternate product", id)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting alternate product: %w", err)
	}
	return &a, nil
}

// ListAlternateProductsByPackingList joins through gear_items so the detail
// view can load every alternate of a list in one query.
func (db *DB) ListAlternateProductsByPackingList(ctx context.Context, packingListID int64) ([]model.AlternateProduct, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+alternateColumns+`
		 FROM alternate_products a
		 JOIN gear_items g ON g.id = a.gear_item_id
		 WHERE g.packing_list_id = ?
		 ORDER BY a.id`,
		packingListID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing alternate products: %w", err)
	}
	defer rows.Close()

	alts := make([]model.AlternateProduct, 0)
	for rows.Next() {
		a, err := scanAlternate(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning alternate product: %w", err)
		}
		alts = append(alts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating alternate products: %w", err)
	}
	return alts, nil
}

// UpdateAlternateProduct writes only the supplied fields. There is no
// updated_at column, so an empty update just returns the current record.
func (db *DB) UpdateAlternateProduct(ctx context.Context, id int64, in model.UpdateAlternateProductInput) (*model.AlternateProduct, error) {
	var set setClause
	if in.Name.Present() {
		set.add("name", in.Name.Value)
	}
	if in.Weight.Present() {
		set.add("weight", in.Weight.Value)
	}
	if in.ProductLink.Set {
		set.add("product_link", in.ProductLink.Ptr())
	}
	if in.Notes.Set {
		set.add("notes", in.Notes.Ptr())
	}
	if set.empty() {
		return db.getAlternateProduct(ctx, id)
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE alternate_products SET `+set.String()+` WHERE id = ?`,
		append(set.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating alternate product: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("alternate product", id)
	}

	return db.getAlternateProduct(ctx, id)
}

func (db *DB) DeleteAlternateProduct(ctx context.Context, id int64) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM alternate_products WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("sqlite: deleting alternate product: %w", err)
	}
	return rowsAffected(res)
}
