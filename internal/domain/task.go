package domain

import (
	"fmt"
	"time"
)

type Task struct {
	ID           string
	Description  string
	CategoryID   string
	CategoryName string

	// Dates are calendar days at UTC midnight; clock components are ignored
	// by the feasibility engine.
	Start    time.Time
	Deadline time.Time

	// Effort in whole hours.
	EstimatedHours int
	ActualHours    int

	Status TaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursLeft is the remaining effort for the task. Negative once the task has
// logged more time than was estimated.
func (t *Task) HoursLeft() int {
	return t.EstimatedHours - t.ActualHours
}

// Validate checks task invariants enforced before persistence.
func (t *Task) Validate() error {
	if t.Description == "" {
		return fmt.Errorf("task description is required")
	}
	if t.EstimatedHours < 0 {
		return fmt.Errorf("estimated duration may not be negative")
	}
	if t.ActualHours < 0 {
		return fmt.Errorf("elapsed time may not be negative")
	}
	if t.Status != "" && !ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("invalid task status %q", t.Status)
	}
	if t.Deadline.Before(t.Start) {
		return ErrInvalidDateOrder
	}
	return nil
}

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
