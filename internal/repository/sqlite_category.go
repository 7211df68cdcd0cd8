package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmalmgren/tempus/internal/db"
	"github.com/jmalmgren/tempus/internal/domain"
)

// SQLiteCategoryRepo implements CategoryRepo using a SQLite database.
type SQLiteCategoryRepo struct {
	db db.DBTX
}

func NewSQLiteCategoryRepo(conn db.DBTX) *SQLiteCategoryRepo {
	return &SQLiteCategoryRepo{db: conn}
}

func (r *SQLiteCategoryRepo) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE name = ?`, name)
	c, err := scanCategory(row)
	if err == nil {
		return c, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	created := &domain.Category{ID: uuid.New().String(), Name: name}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`,
		created.ID, created.Name, nowUTC())
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}
	return created, nil
}

func (r *SQLiteCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = ?`, id)
	return scanCategory(row)
}

func (r *SQLiteCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		c.CreatedAt = parseTimestamp(createdAt)
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *SQLiteCategoryRepo) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the category; tasks referencing it are removed by the
// ON DELETE CASCADE constraint.
func (r *SQLiteCategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanCategory(row *sql.Row) (*domain.Category, error) {
	var c domain.Category
	var createdAt string
	err := row.Scan(&c.ID, &c.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning category: %w", err)
	}
	c.CreatedAt = parseTimestamp(createdAt)
	return &c, nil
}
