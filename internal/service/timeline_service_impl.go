package service

import (
	"context"
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/feasibility"
	"github.com/jmalmgren/tempus/internal/repository"
)

type timelineService struct {
	tasks        repository.TaskRepo
	availability repository.AvailabilityRepo
	now          func() time.Time
}

func NewTimelineService(
	tasks repository.TaskRepo,
	availability repository.AvailabilityRepo,
	opts ...TimelineServiceOption,
) TimelineService {
	s := &timelineService{
		tasks:        tasks,
		availability: availability,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type TimelineServiceOption func(*timelineService)

// WithTimelineClock overrides the reference-date source, for deterministic tests.
func WithTimelineClock(now func() time.Time) TimelineServiceOption {
	return func(s *timelineService) {
		s.now = now
	}
}

// Report projects a possible finish date for every open task: the earliest
// deadline the deadline search accepts once all competing open tasks are
// counted. A row is feasible when that projection does not fall past the
// task's own deadline.
func (s *timelineService) Report(ctx context.Context) (*TimelineReport, error) {
	avail, err := s.availability.Get(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	ref := s.now()
	report := &TimelineReport{WeeklyHours: avail.WeeklyHours()}

	for _, t := range all {
		row := TimelineRow{Task: t, Feasible: true}
		if t.Status != domain.TaskCompleted {
			report.DemandHours += t.HoursLeft()

			others := competitorsOf(t, all)
			finish, err := feasibility.NextFeasibleDeadline(t, others, avail, ref)
			if err != nil {
				return nil, err
			}
			row.PossibleFinish = &finish
			row.Feasible = !finish.After(feasibility.DayStart(t.Deadline))
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// competitorsOf filters the full set down to the open tasks competing with t,
// preserving the deadline-ascending order of the input.
func competitorsOf(t *domain.Task, all []*domain.Task) []*domain.Task {
	others := make([]*domain.Task, 0, len(all))
	for _, o := range all {
		if o.ID == t.ID || o.Status == domain.TaskCompleted {
			continue
		}
		others = append(others, o)
	}
	return others
}
