package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmalmgren/tempus/internal/domain"
)

// Task options

type TaskOption func(*domain.Task)

func WithDates(start, deadline time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Start = start
		t.Deadline = deadline
	}
}

func WithEstimate(hours int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = hours
	}
}

func WithLogged(hours int) TaskOption {
	return func(t *domain.Task) {
		t.ActualHours = hours
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithCategoryID(id string) TaskOption {
	return func(t *domain.Task) {
		t.CategoryID = id
	}
}

// NewTestTask builds a task that spans the workweek of Monday June 2 2025
// with a modest estimate, so it is feasible under the default test profile.
func NewTestTask(description string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:             uuid.New().String(),
		Description:    description,
		Start:          Day(2025, 6, 2),
		Deadline:       Day(2025, 6, 6),
		EstimatedHours: 4,
		Status:         domain.TaskNotStarted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestCategory builds a category with a fresh ID.
func NewTestCategory(name string) *domain.Category {
	return &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestAvailability is the standard workweek profile: 8h Monday through
// Friday, weekends off.
func NewTestAvailability() *domain.Availability {
	return &domain.Availability{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}
}

// Day builds a UTC-midnight date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
