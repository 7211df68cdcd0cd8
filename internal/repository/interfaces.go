package repository

import (
	"context"
	"errors"

	"github.com/jmalmgren/tempus/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	// ListActive returns every non-completed task except excludeID, ordered
	// by deadline ascending. This is the competitor set the feasibility
	// engine consumes; the ordering is part of the contract.
	ListActive(ctx context.Context, excludeID string) ([]*domain.Task, error)
	// Search matches the query against task descriptions and category names,
	// optionally narrowed to one status.
	Search(ctx context.Context, query string, status domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	// GetOrCreate looks a category up by name, creating it lazily when a
	// task references a name that does not exist yet.
	GetOrCreate(ctx context.Context, name string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type AvailabilityRepo interface {
	// Get returns the singleton weekly profile, or
	// domain.ErrConfigurationMissing when none has been recorded.
	Get(ctx context.Context) (*domain.Availability, error)
	Upsert(ctx context.Context, a *domain.Availability) error
}
