package service

import (
	"context"
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

type TaskService interface {
	// Create persists a task after the feasibility gate. The category is
	// resolved by name and created lazily. An infeasible task is refused
	// with a *ScheduleConflictError carrying the fallback suggestions.
	Create(ctx context.Context, t *domain.Task, categoryName string) error
	// Update re-runs the same gate against every other active task.
	Update(ctx context.Context, t *domain.Task, categoryName string) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Search(ctx context.Context, query string, status domain.TaskStatus) ([]*domain.Task, error)
	// LogTime adds elapsed hours; the first logged hour moves a not-started
	// task to ongoing.
	LogTime(ctx context.Context, id string, hours int) (*domain.Task, error)
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	GetOrCreate(ctx context.Context, name string) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type AvailabilityService interface {
	Get(ctx context.Context) (*domain.Availability, error)
	Set(ctx context.Context, a *domain.Availability) error
}

// TimelineRow is one task in the schedule report. PossibleFinish is the
// earliest feasible deadline given the competing active tasks; it is nil for
// completed tasks.
type TimelineRow struct {
	Task           *domain.Task
	Feasible       bool
	PossibleFinish *time.Time
}

// TimelineReport summarizes the whole task set against the weekly profile.
type TimelineReport struct {
	Rows        []TimelineRow
	WeeklyHours int
	// DemandHours is the summed hours-left of all non-completed tasks.
	DemandHours int
}

type TimelineService interface {
	Report(ctx context.Context) (*TimelineReport, error)
}
