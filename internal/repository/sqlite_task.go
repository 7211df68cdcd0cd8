package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmalmgren/tempus/internal/db"
	"github.com/jmalmgren/tempus/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks joined with
// their category name.
const taskColumns = `t.id, t.description, t.category_id, c.name,
		t.start_date, t.deadline, t.estimated_hours, t.actual_hours, t.status,
		t.created_at, t.updated_at`

const taskFrom = ` FROM tasks t JOIN categories c ON t.category_id = c.id`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, description, category_id, start_date, deadline,
		estimated_hours, actual_hours, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Description,
		t.CategoryID,
		formatDate(t.Start),
		formatDate(t.Deadline),
		t.EstimatedHours,
		t.ActualHours,
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+taskFrom+` WHERE t.id = ?`, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+taskFrom+` ORDER BY t.deadline ASC, t.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListActive(ctx context.Context, excludeID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+taskFrom+`
		WHERE t.status != 'completed' AND t.id != ?
		ORDER BY t.deadline ASC, t.created_at ASC`, excludeID)
	if err != nil {
		return nil, fmt.Errorf("listing active tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Search(ctx context.Context, query string, status domain.TaskStatus) ([]*domain.Task, error) {
	q := `SELECT ` + taskColumns + taskFrom + `
		WHERE (t.description LIKE ? OR c.name LIKE ?)`
	pattern := "%" + query + "%"
	args := []any{pattern, pattern}
	if status != "" {
		q += ` AND t.status = ?`
		args = append(args, string(status))
	}
	q += ` ORDER BY t.deadline ASC, t.created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("searching tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET description = ?, category_id = ?, start_date = ?,
		deadline = ?, estimated_hours = ?, actual_hours = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Description,
		t.CategoryID,
		formatDate(t.Start),
		formatDate(t.Deadline),
		t.EstimatedHours,
		t.ActualHours,
		string(t.Status),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var start, deadline, status, createdAt, updatedAt string
	err := row.Scan(
		&t.ID,
		&t.Description,
		&t.CategoryID,
		&t.CategoryName,
		&start,
		&deadline,
		&t.EstimatedHours,
		&t.ActualHours,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.Start = parseDate(start)
	t.Deadline = parseDate(deadline)
	t.Status = domain.TaskStatus(status)
	t.CreatedAt = parseTimestamp(createdAt)
	t.UpdatedAt = parseTimestamp(updatedAt)
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var start, deadline, status, createdAt, updatedAt string
		err := rows.Scan(
			&t.ID,
			&t.Description,
			&t.CategoryID,
			&t.CategoryName,
			&start,
			&deadline,
			&t.EstimatedHours,
			&t.ActualHours,
			&status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		t.Start = parseDate(start)
		t.Deadline = parseDate(deadline)
		t.Status = domain.TaskStatus(status)
		t.CreatedAt = parseTimestamp(createdAt)
		t.UpdatedAt = parseTimestamp(updatedAt)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}
