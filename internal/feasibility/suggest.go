package feasibility

import (
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

// NextFeasibleDeadline advances a task's deadline one day at a time until
// EnoughTime accepts it, and returns that deadline. The search runs on a
// working copy; the caller's task is never mutated and the returned date is
// purely a suggestion.
//
// Termination: each step grows the window by one day while total demand is
// fixed, so any profile with at least one positive weekday converges. A
// profile with zero hours on every weekday would loop forever and fails fast
// with ErrNoCapacityConfigured instead.
func NextFeasibleDeadline(task *domain.Task, others []*domain.Task, avail *domain.Availability, ref time.Time) (time.Time, error) {
	if !avail.HasCapacity() {
		return time.Time{}, domain.ErrNoCapacityConfigured
	}
	work := *task
	work.Deadline = DayStart(work.Deadline)
	for !EnoughTime(&work, others, avail, ref) {
		work.Deadline = work.Deadline.AddDate(0, 0, 1)
	}
	return work.Deadline, nil
}

// EarliestStart searches backward for the earliest start date that makes the
// task feasible, seeding the search from the deadline and decrementing while
// infeasible. The boolean is false when no start shift can help: once the
// start has been pulled back to the reference date the window cannot grow any
// further, so the search stops there.
func EarliestStart(task *domain.Task, others []*domain.Task, avail *domain.Availability, ref time.Time) (time.Time, bool, error) {
	if !avail.HasCapacity() {
		return time.Time{}, false, domain.ErrNoCapacityConfigured
	}
	floor := DayStart(ref)
	work := *task
	work.Start = DayStart(work.Deadline)
	for !EnoughTime(&work, others, avail, ref) {
		if !work.Start.After(floor) {
			return time.Time{}, false, nil
		}
		work.Start = work.Start.AddDate(0, 0, -1)
	}
	return work.Start, true, nil
}
