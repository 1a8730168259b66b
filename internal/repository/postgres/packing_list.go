package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

const packingListColumns = `id, name, description, created_at, updated_at`

func scanPackingList(row pgx.Row) (model.PackingList, error) {
	var pl model.PackingList
	err := row.Scan(&pl.ID, &pl.Name, &pl.Description, &pl.CreatedAt, &pl.UpdatedAt)
	return pl, err
}

func (db *DB) CreatePackingList(ctx context.Context, in model.CreatePackingListInput) (*model.PackingList, error) {
	pl, err := scanPackingList(db.pool.QueryRow(ctx,
		`INSERT INTO packing_lists (name, description)
		 VALUES ($1, $2)
		 RETURNING `+packingListColumns,
		in.Name, in.Description,
	))
	if err != nil {
		return nil, fmt.Errorf("postgres: creating packing list: %w", err)
	}
	return &pl, nil
}

func (db *DB) GetPackingList(ctx context.Context, id int64) (*model.PackingList, error) {
	pl, err := scanPackingList(db.pool.QueryRow(ctx,
		`SELECT `+packingListColumns+` FROM packing_lists WHERE id = $1`, id,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("packing list", id)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: getting packing list: %w", err)
	}
	return &pl, nil
}

func (db *DB) ListPackingLists(ctx context.Context) ([]model.PackingList, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+packingListColumns+` FROM packing_lists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: listing packing lists: %w", err)
	}

	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.PackingList, error) {
		return scanPackingList(row)
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: scanning packing lists: %w", err)
	}
	if lists == nil {
		lists = []model.PackingList{}
	}
	return lists, nil
}

func (db *DB) UpdatePackingList(ctx context.Context, id int64, in model.UpdatePackingListInput) (*model.PackingList, error) {
	var set setClause
	if in.Name.Present() {
		set.add("name", in.Name.Value, "")
	}
	if in.Description.Set {
		set.add("description", in.Description.Ptr(), "")
	}
	set.parts = append(set.parts, "updated_at = now()")

	pl, err := scanPackingList(db.pool.QueryRow(ctx,
		`UPDATE packing_lists SET `+set.String()+` WHERE id = `+set.next()+` RETURNING `+packingListColumns,
		append(set.args, id)...,
	))
	if isNoRows(err) {
		return nil, apperror.NotFound("packing list", id)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: updating packing list: %w", err)
	}
	return &pl, nil
}

func (db *DB) DeletePackingList(ctx context.Context, id int64) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM packing_lists WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("postgres: deleting packing list: %w", err)
	}
	return rowsAffected(tag), nil
}
