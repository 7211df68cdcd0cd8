package feasibility

import (
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

// EnoughTime decides whether a task's remaining effort fits inside its active
// window once competing unfinished tasks are accounted for.
//
// The check is a running balance over a growing window: the task's own window
// is scored first, then every non-completed competitor whose window overlaps
// is folded in, merging its days into the window and its remaining hours into
// the demand. The window must grow with each competitor: a competitor whose
// deadline lies beyond the task's own exposes additional capacity days that a
// fixed-window subtraction would miss. The verdict is infeasible the moment
// the balance goes negative.
//
// Competitors are consumed in the order given; callers supply them sorted by
// deadline ascending. Completed tasks and the task itself never consume
// capacity. A task with zero estimated effort is always feasible.
func EnoughTime(task *domain.Task, others []*domain.Task, avail *domain.Availability, ref time.Time) bool {
	if task.EstimatedHours == 0 {
		return true
	}

	window := ActiveWindow(task, ref)
	hoursLeft := task.HoursLeft()
	if AvailableHours(window, avail)-hoursLeft < 0 {
		return false
	}

	inWindow := make(map[time.Time]bool, len(window))
	for _, d := range window {
		inWindow[d] = true
	}

	for _, other := range others {
		if other.ID == task.ID || other.Status == domain.TaskCompleted {
			continue
		}
		if !overlapsSet(other, inWindow, ref) {
			continue
		}
		for _, d := range ActiveWindow(other, ref) {
			if !inWindow[d] {
				inWindow[d] = true
				window = append(window, d)
			}
		}
		hoursLeft += other.HoursLeft()
		if AvailableHours(window, avail)-hoursLeft < 0 {
			return false
		}
	}
	return true
}
