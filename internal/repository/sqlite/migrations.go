package sqlite

import (
	"context"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

// migrations are applied in order, each exactly once. Never edit a
// migration that has shipped; append a new one.
var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS packing_lists (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  name        TEXT NOT NULL CHECK(length(name) > 0),
  description TEXT,
  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS gear_items (
  id                INTEGER PRIMARY KEY AUTOINCREMENT,
  packing_list_id   INTEGER NOT NULL REFERENCES packing_lists(id) ON DELETE CASCADE,
  name              TEXT NOT NULL CHECK(length(name) > 0),
  individual_weight REAL NOT NULL CHECK(individual_weight > 0),
  quantity          INTEGER NOT NULL CHECK(quantity >= 1),
  category          TEXT NOT NULL CHECK(category IN (
    'shelter', 'sleep_system', 'cooking', 'clothing', 'navigation', 'safety',
    'hygiene', 'electronics', 'food', 'water', 'other'
  )),
  notes             TEXT,
  created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_gear_items_packing_list_id ON gear_items(packing_list_id);

CREATE TABLE IF NOT EXISTS alternate_products (
  id           INTEGER PRIMARY KEY AUTOINCREMENT,
  gear_item_id INTEGER NOT NULL REFERENCES gear_items(id) ON DELETE CASCADE,
  name         TEXT NOT NULL CHECK(length(name) > 0),
  weight       REAL NOT NULL CHECK(weight > 0),
  product_link TEXT,
  notes        TEXT,
  created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_alternate_products_gear_item_id ON alternate_products(gear_item_id);
`,
	},
}

// Migrate creates the schema_migrations table if needed and applies every
// migration whose version has not been recorded yet. Safe to run repeatedly.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := db.conn.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, m.version,
		).Scan(&count); err != nil {
			return fmt.Errorf("checking migration %d: %w", m.version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("applying migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", m.version, err)
		}
	}

	return nil
}
