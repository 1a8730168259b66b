// Package postgres implements the repository interfaces on PostgreSQL through
// a pgx connection pool. It is selected with database.driver = "postgres".
//
// Weights are stored as NUMERIC(10,2) and gear categories as a native enum;
// both are converted to the model types at the query boundary.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sakif/packlist/internal/repository"
)

var _ repository.Store = (*DB)(nil)

type DB struct {
	pool *pgxpool.Pool
}

// New connects to the database described by dsn, verifies the connection and
// applies pending migrations.
func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parsing dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: creating pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: pinging database: %w", err)
	}

	db := &DB{pool: pool}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: running migrations: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	db.pool.Close()
	return nil
}

// setClause collects "column = $n" fragments for a partial UPDATE. Casts
// such as "::gear_category" are passed through add's cast argument.
type setClause struct {
	parts []string
	args  []any
}

func (s *setClause) add(column string, value any, cast string) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, column+" = $"+strconv.Itoa(len(s.args))+cast)
}

func (s *setClause) empty() bool {
	return len(s.parts) == 0
}

func (s *setClause) String() string {
	return strings.Join(s.parts, ", ")
}

// next returns the placeholder for the argument that follows the SET values.
func (s *setClause) next() string {
	return "$" + strconv.Itoa(len(s.args)+1)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func rowsAffected(tag pgconn.CommandTag) bool {
	return tag.RowsAffected() > 0
}
