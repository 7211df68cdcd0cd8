package service

import (
	"fmt"
	"time"
)

// ScheduleConflictError refuses a task write that does not fit the remaining
// capacity. It carries the fallback plan so callers can render actionable
// messaging; the write itself is never applied.
type ScheduleConflictError struct {
	Description       string
	SuggestedDeadline *time.Time
	SuggestedStart    *time.Time
}

func (e *ScheduleConflictError) Error() string {
	msg := fmt.Sprintf("not enough time to complete %q before deadline", e.Description)
	if e.SuggestedDeadline != nil {
		msg += fmt.Sprintf(", next possible deadline: %s", e.SuggestedDeadline.Format("2006-01-02"))
	}
	if e.SuggestedStart != nil {
		msg += fmt.Sprintf(", possible start date: %s", e.SuggestedStart.Format("2006-01-02"))
	}
	return msg
}
