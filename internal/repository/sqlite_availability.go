package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmalmgren/tempus/internal/db"
	"github.com/jmalmgren/tempus/internal/domain"
)

// SQLiteAvailabilityRepo implements AvailabilityRepo using a SQLite database.
// The profile is a singleton: the row id is pinned to 1 both here and by a
// CHECK constraint in the schema.
type SQLiteAvailabilityRepo struct {
	db db.DBTX
}

func NewSQLiteAvailabilityRepo(conn db.DBTX) *SQLiteAvailabilityRepo {
	return &SQLiteAvailabilityRepo{db: conn}
}

func (r *SQLiteAvailabilityRepo) Get(ctx context.Context) (*domain.Availability, error) {
	query := `SELECT monday, tuesday, wednesday, thursday, friday, saturday, sunday, updated_at
		FROM availability WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var a domain.Availability
	var updatedAt string
	err := row.Scan(
		&a.Monday,
		&a.Tuesday,
		&a.Wednesday,
		&a.Thursday,
		&a.Friday,
		&a.Saturday,
		&a.Sunday,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrConfigurationMissing
		}
		return nil, fmt.Errorf("scanning availability: %w", err)
	}
	a.UpdatedAt = parseTimestamp(updatedAt)
	return &a, nil
}

func (r *SQLiteAvailabilityRepo) Upsert(ctx context.Context, a *domain.Availability) error {
	query := `INSERT OR REPLACE INTO availability
		(id, monday, tuesday, wednesday, thursday, friday, saturday, sunday, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.Monday,
		a.Tuesday,
		a.Wednesday,
		a.Thursday,
		a.Friday,
		a.Saturday,
		a.Sunday,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting availability: %w", err)
	}
	return nil
}
