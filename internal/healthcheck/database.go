// Package healthcheck records and reads API health checks in PostgreSQL.
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

type HealthCheck struct {
	Status    string
	CheckedAt time.Time
}

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Database struct {
	db Querier // required
}

func NewDatabase(db Querier) *Database {
	return &Database{db: db}
}

// Ping checks that the database answers queries.
func (d *Database) Ping(ctx context.Context) error {
	rows, _ := d.db.Query(ctx, `SELECT 1`)
	_, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[int32])
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// LatestHealthCheck returns the most recently recorded health check.
func (d *Database) LatestHealthCheck(ctx context.Context) (*HealthCheck, error) {
	query := `
		SELECT status, checked_at
		FROM health_checks
		ORDER BY checked_at DESC, id DESC
		LIMIT 1
	`

	rows, _ := d.db.Query(ctx, query)
	hc, err := pgx.CollectExactlyOneRow(rows, rowToHealthCheck)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("latest health check: %w", err)
	}

	return hc, nil
}

// CreateHealthCheck records a health check with the given status.
func (d *Database) CreateHealthCheck(ctx context.Context, status string) (*HealthCheck, error) {
	query := `
		INSERT INTO health_checks (status)
		VALUES ($1)
		RETURNING status, checked_at
	`
	args := []any{status}

	rows, _ := d.db.Query(ctx, query, args...)
	hc, err := pgx.CollectExactlyOneRow(rows, rowToHealthCheck)
	if err != nil {
		return nil, fmt.Errorf("create health check: %w", err)
	}

	return hc, nil
}

type row struct {
	Status    string    `db:"status"`
	CheckedAt time.Time `db:"checked_at"`
}

func rowToHealthCheck(collectableRow pgx.CollectableRow) (*HealthCheck, error) {
	collectedRow, err := pgx.RowToStructByName[row](collectableRow)
	if err != nil {
		return nil, fmt.Errorf("row to health check: %w", err)
	}
	return &HealthCheck{
		Status:    collectedRow.Status,
		CheckedAt: collectedRow.CheckedAt,
	}, nil
}
