package feasibility

import (
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

// Result is the verdict for one candidate task. Infeasibility is a normal
// outcome, not an error: when Feasible is false the suggestions carry the
// fallback plan for user messaging.
type Result struct {
	Feasible          bool
	SuggestedDeadline *time.Time
	SuggestedStart    *time.Time
}

// Evaluate answers "can this task be saved as-is?" for a create or update.
// The candidate is checked against every other persisted non-completed task
// (callers must exclude the candidate itself) and the weekly availability
// profile. When the task does not fit, the earliest feasible deadline is
// computed, and then the earliest viable start against that relaxed deadline.
//
// Side-effect free: nothing is persisted and no input is mutated; the caller
// decides whether to reject the write, warn, or retry with adjusted dates.
func Evaluate(candidate *domain.Task, others []*domain.Task, avail *domain.Availability, ref time.Time) (*Result, error) {
	if avail == nil {
		return nil, domain.ErrConfigurationMissing
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	if EnoughTime(candidate, others, avail, ref) {
		return &Result{Feasible: true}, nil
	}

	deadline, err := NextFeasibleDeadline(candidate, others, avail, ref)
	if err != nil {
		return nil, err
	}
	result := &Result{SuggestedDeadline: &deadline}

	// The start search runs against the relaxed deadline, mirroring how the
	// deadline suggestion is presented: "move the deadline here, and you
	// could even begin as late as this".
	relaxed := *candidate
	relaxed.Deadline = deadline
	start, ok, err := EarliestStart(&relaxed, others, avail, ref)
	if err != nil {
		return nil, err
	}
	if ok {
		result.SuggestedStart = &start
	}
	return result, nil
}
