package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const defaultName = "default"

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Database is a counter stored in the counters table.
type Database struct {
	db Querier // required
}

func NewDatabase(db Querier) *Database {
	return &Database{db: db}
}

func (d *Database) Count(ctx context.Context) (int64, error) {
	query := `
		SELECT value
		FROM counters
		WHERE name = $1
	`
	args := []any{defaultName}

	rows, _ := d.db.Query(ctx, query, args...)
	count, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[int64])
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

func (d *Database) Add(ctx context.Context, delta int64) (int64, error) {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + EXCLUDED.value
		RETURNING value
	`
	args := []any{defaultName, delta}

	rows, _ := d.db.Query(ctx, query, args...)
	count, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("add: %w", err)
	}

	return count, nil
}

func (d *Database) Reset(ctx context.Context) error {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, 0)
		ON CONFLICT (name) DO UPDATE SET value = 0
	`
	args := []any{defaultName}

	if _, err := d.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
