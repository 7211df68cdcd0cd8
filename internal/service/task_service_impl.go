package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/feasibility"
	"github.com/jmalmgren/tempus/internal/repository"
)

type taskService struct {
	tasks        repository.TaskRepo
	categories   repository.CategoryRepo
	availability repository.AvailabilityRepo
	observer     UseCaseObserver
	now          func() time.Time
}

// TaskServiceOption configures a task service.
type TaskServiceOption func(*taskService)

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) TaskServiceOption {
	return func(s *taskService) {
		s.observer = obs
	}
}

// WithClock overrides the reference-date source, for deterministic tests.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *taskService) {
		s.now = now
	}
}

func NewTaskService(
	tasks repository.TaskRepo,
	categories repository.CategoryRepo,
	availability repository.AvailabilityRepo,
	opts ...TaskServiceOption,
) TaskService {
	s := &taskService{
		tasks:        tasks,
		categories:   categories,
		availability: availability,
		observer:     NoopUseCaseObserver{},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *taskService) Create(ctx context.Context, t *domain.Task, categoryName string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_create", started, err, map[string]any{"task_id": t.ID})
	}()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskNotStarted
	}

	if err = s.gate(ctx, t, categoryName); err != nil {
		return err
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task, categoryName string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_update", started, err, map[string]any{"task_id": t.ID})
	}()

	if err = s.gate(ctx, t, categoryName); err != nil {
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// gate runs category resolution, validation, and the feasibility check that
// every task write must pass before it may touch the store.
func (s *taskService) gate(ctx context.Context, t *domain.Task, categoryName string) error {
	// Availability first: without a profile the user must configure hours
	// before any task can be scheduled at all.
	avail, err := s.availability.Get(ctx)
	if err != nil {
		return err
	}

	if categoryName != "" {
		cat, err := s.categories.GetOrCreate(ctx, categoryName)
		if err != nil {
			return err
		}
		t.CategoryID = cat.ID
		t.CategoryName = cat.Name
	}
	if t.CategoryID == "" {
		return fmt.Errorf("task category is required")
	}

	if err := t.Validate(); err != nil {
		return err
	}

	others, err := s.tasks.ListActive(ctx, t.ID)
	if err != nil {
		return err
	}

	result, err := feasibility.Evaluate(t, others, avail, s.now())
	if err != nil {
		return err
	}
	if !result.Feasible {
		return &ScheduleConflictError{
			Description:       t.Description,
			SuggestedDeadline: result.SuggestedDeadline,
			SuggestedStart:    result.SuggestedStart,
		}
	}
	return nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Search(ctx context.Context, query string, status domain.TaskStatus) ([]*domain.Task, error) {
	return s.tasks.Search(ctx, query, status)
}

func (s *taskService) LogTime(ctx context.Context, id string, hours int) (t *domain.Task, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_log_time", started, err, map[string]any{"task_id": id, "hours": hours})
	}()

	if hours <= 0 {
		return nil, fmt.Errorf("logged hours must be positive")
	}

	t, err = s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.ActualHours == 0 && t.Status == domain.TaskNotStarted {
		t.Status = domain.TaskOngoing
	}
	t.ActualHours += hours
	t.UpdatedAt = time.Now().UTC()

	if err = s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Complete(ctx context.Context, id string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_complete", started, err, map[string]any{"task_id": id})
	}()

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Status = domain.TaskCompleted
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "task_delete", started, err, map[string]any{"task_id": id})
	}()
	return s.tasks.Delete(ctx, id)
}
