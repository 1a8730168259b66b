package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
DO $$ BEGIN
  CREATE TYPE gear_category AS ENUM (
    'shelter', 'sleep_system', 'cooking', 'clothing', 'navigation', 'safety',
    'hygiene', 'electronics', 'food', 'water', 'other'
  );
EXCEPTION
  WHEN duplicate_object THEN NULL;
END $$;

CREATE TABLE IF NOT EXISTS packing_lists (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT NOT NULL CHECK (length(name) > 0),
  description TEXT,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS gear_items (
  id                BIGSERIAL PRIMARY KEY,
  packing_list_id   BIGINT NOT NULL REFERENCES packing_lists(id) ON DELETE CASCADE,
  name              TEXT NOT NULL CHECK (length(name) > 0),
  individual_weight NUMERIC(10,2) NOT NULL CHECK (individual_weight > 0),
  quantity          INTEGER NOT NULL CHECK (quantity >= 1),
  category          gear_category NOT NULL,
  notes             TEXT,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_gear_items_packing_list_id ON gear_items(packing_list_id);

CREATE TABLE IF NOT EXISTS alternate_products (
  id           BIGSERIAL PRIMARY KEY,
  gear_item_id BIGINT NOT NULL REFERENCES gear_items(id) ON DELETE CASCADE,
  name         TEXT NOT NULL CHECK (length(name) > 0),
  weight       NUMERIC(10,2) NOT NULL CHECK (weight > 0),
  product_link TEXT,
  notes        TEXT,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_alternate_products_gear_item_id ON alternate_products(gear_item_id);
`,
	},
}

// Migrate applies every migration not yet recorded in schema_migrations,
// each inside its own transaction.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied bool
		if err := db.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.version,
		).Scan(&applied); err != nil {
			return fmt.Errorf("checking migration %d: %w", m.version, err)
		}
		if applied {
			continue
		}

		err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, m.sql); err != nil {
				return fmt.Errorf("applying migration %d (%s): %w", m.version, m.name, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name,
			); err != nil {
				return fmt.Errorf("recording migration %d: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
