package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

const packingListColumns = `id, name, description, created_at, updated_at`

// CreatePackingList inserts a new list. created_at and updated_at are set to
// the same instant.
func (db *DB) CreatePackingList(ctx context.Context, in model.CreatePackingListInput) (*model.PackingList, error) {
	now := time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO packing_lists (name, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		in.Name, in.Description, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating packing list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading packing list id: %w", err)
	}

	return &model.PackingList{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetPackingList returns apperror.NotFound when no list has the given id.
func (db *DB) GetPackingList(ctx context.Context, id int64) (*model.PackingList, error) {
	var pl model.PackingList
	err := db.conn.QueryRowContext(ctx,
		`SELECT `+packingListColumns+` FROM packing_lists WHERE id = ?`, id,
	).Scan(&pl.ID, &pl.Name, &pl.Description, &pl.CreatedAt, &pl.UpdatedAt)
	if isNoRows(err) {
		return nil, apperror.NotFound("packing list", id)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting packing list: %w", err)
	}
	return &pl, nil
}

// ListPackingLists returns every list ordered by id.
func (db *DB) ListPackingLists(ctx context.Context) ([]model.PackingList, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+packingListColumns+` FROM packing_lists ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing packing lists: %w", err)
	}
	defer rows.Close()

	lists := make([]model.PackingList, 0)
	for rows.Next() {
		var pl model.PackingList
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.Description, &pl.CreatedAt, &pl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning packing list: %w", err)
		}
		lists = append(lists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating packing lists: %w", err)
	}
	return lists, nil
}

// UpdatePackingList writes only the supplied fields and always refreshes
// updated_at, even when the input is empty.
func (db *DB) UpdatePackingList(ctx context.Context, id int64, in model.UpdatePackingListInput) (*model.PackingList, error) {
	var set setClause
	if in.Name.Present() {
		set.add("name", in.Name.Value)
	}
	if in.Description.Set {
		set.add("description", in.Description.Ptr())
	}
	set.add("updated_at", time.Now().UTC())

	res, err := db.conn.ExecContext(ctx,
		`UPDATE packing_lists SET `+set.String()+` WHERE id = ?`,
		append(set.args, id)...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating packing list: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound("packing list", id)
	}

	return db.GetPackingList(ctx, id)
}

// DeletePackingList removes the list; its gear items and their alternates go
// with it through ON DELETE CASCADE.
func (db *DB) DeletePackingList(ctx context.Context, id int64) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM packing_lists WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("sqlite: deleting packing list: %w", err)
	}
	return rowsAffected(res)
}
