package feasibility

import (
	"math/rand"
	"testing"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/stretchr/testify/assert"
)

// Monday June 2 2025; every date below is relative to this reference week.
var ref = day(2025, 6, 1)

func TestEnoughTime_ZeroEstimateAlwaysFeasible(t *testing.T) {
	task := &domain.Task{
		ID:       "a",
		Start:    day(2025, 6, 7), // Saturday
		Deadline: day(2025, 6, 8), // Sunday
	}

	// Zero remaining effort fits anywhere, even a zero-hour weekend window.
	assert.True(t, EnoughTime(task, nil, weekdayProfile(), ref))
	assert.True(t, EnoughTime(task, nil, &domain.Availability{}, ref))
}

func TestEnoughTime_ExactFitOnSingleDay(t *testing.T) {
	// 8 available == 8 needed on a Monday.
	task := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 8,
	}

	assert.True(t, EnoughTime(task, nil, weekdayProfile(), ref))
}

func TestEnoughTime_OneHourOverSingleDayCapacity(t *testing.T) {
	task := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 9,
	}

	assert.False(t, EnoughTime(task, nil, weekdayProfile(), ref))
}

func TestEnoughTime_WeekendOnlyWindowIsInfeasible(t *testing.T) {
	task := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 7), // Saturday
		Deadline:       day(2025, 6, 7),
		EstimatedHours: 1,
	}

	assert.False(t, EnoughTime(task, nil, weekdayProfile(), ref))
}

func TestEnoughTime_LoggedTimeReducesDemand(t *testing.T) {
	task := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 12,
		ActualHours:    4,
		Status:         domain.TaskOngoing,
	}

	assert.True(t, EnoughTime(task, nil, weekdayProfile(), ref))
}

func TestEnoughTime_TwoTasksSharingOneDay(t *testing.T) {
	// Both tasks need 6h on the same 8h Monday: 12 > 8.
	task := &domain.Task{
		ID:             "b",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 6,
	}
	competitor := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 6,
	}

	assert.True(t, EnoughTime(task, nil, weekdayProfile(), ref))
	assert.False(t, EnoughTime(task, []*domain.Task{competitor}, weekdayProfile(), ref))
}

func TestEnoughTime_CompletedCompetitorsNeverConsumeCapacity(t *testing.T) {
	task := &domain.Task{
		ID:             "b",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 6,
	}
	done := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 6,
		Status:         domain.TaskCompleted,
	}

	assert.True(t, EnoughTime(task, []*domain.Task{done}, weekdayProfile(), ref))
}

func TestEnoughTime_SelfIsIgnoredWhenPresentInOthers(t *testing.T) {
	task := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 6,
	}

	// A stale copy of the task itself in the competitor list must not double
	// its demand.
	assert.True(t, EnoughTime(task, []*domain.Task{task}, weekdayProfile(), ref))
}

func TestEnoughTime_NonOverlappingCompetitorIgnored(t *testing.T) {
	task := &domain.Task{
		ID:             "b",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 3),
		EstimatedHours: 16,
	}
	elsewhere := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 5),
		Deadline:       day(2025, 6, 6),
		EstimatedHours: 16,
	}

	assert.True(t, EnoughTime(task, []*domain.Task{elsewhere}, weekdayProfile(), ref))
}

func TestEnoughTime_WindowExpandsToCompetitorHorizon(t *testing.T) {
	// The task occupies Mon-Tue (16h) needing 10h. The competitor overlaps on
	// Tuesday but runs through Friday, needing 20h. A fixed-window check
	// would see 16h against 30h and refuse; expanding the window to Friday
	// exposes 40h, which fits both.
	task := &domain.Task{
		ID:             "b",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 3),
		EstimatedHours: 10,
	}
	competitor := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 3),
		Deadline:       day(2025, 6, 6),
		EstimatedHours: 20,
	}

	assert.True(t, EnoughTime(task, []*domain.Task{competitor}, weekdayProfile(), ref))
}

func TestEnoughTime_ChainOfCompetitorsOverfillsWeek(t *testing.T) {
	// Three tasks share the Mon-Fri week (40h) with a combined demand of 42h.
	task := &domain.Task{
		ID:             "c",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 6),
		EstimatedHours: 14,
	}
	others := []*domain.Task{
		{ID: "a", Start: day(2025, 6, 2), Deadline: day(2025, 6, 4), EstimatedHours: 14},
		{ID: "b", Start: day(2025, 6, 4), Deadline: day(2025, 6, 6), EstimatedHours: 14},
	}

	assert.False(t, EnoughTime(task, others, weekdayProfile(), ref))
}

func TestEnoughTime_OverloggedCompetitorCreditsNegativeHours(t *testing.T) {
	// The competitor has overrun its estimate: hours-left is -4, which is
	// credited as-is and leaves room for the candidate.
	task := &domain.Task{
		ID:             "b",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 8,
	}
	overrun := &domain.Task{
		ID:             "a",
		Start:          day(2025, 6, 2),
		Deadline:       day(2025, 6, 2),
		EstimatedHours: 4,
		ActualHours:    8,
		Status:         domain.TaskOngoing,
	}

	assert.True(t, EnoughTime(task, []*domain.Task{overrun}, weekdayProfile(), ref))
}

// TestEnoughTime_SingleTaskVerdictMatchesWindowArithmetic property-tests the
// competitor-free case: the verdict must equal the plain window arithmetic
// available-hours >= hours-left, with the zero-estimate carve-out.
func TestEnoughTime_SingleTaskVerdictMatchesWindowArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	profile := weekdayProfile()

	for trial := 0; trial < 300; trial++ {
		startOffset := rng.Intn(20)
		length := rng.Intn(14)
		task := &domain.Task{
			ID:             "t",
			Start:          ref.AddDate(0, 0, startOffset),
			Deadline:       ref.AddDate(0, 0, startOffset+length),
			EstimatedHours: rng.Intn(120),
			ActualHours:    rng.Intn(40),
		}

		window := ActiveWindow(task, ref)
		expect := task.EstimatedHours == 0 ||
			AvailableHours(window, profile) >= task.HoursLeft()

		assert.Equal(t, expect, EnoughTime(task, nil, profile, ref),
			"trial %d: estimated=%d actual=%d window=%d days",
			trial, task.EstimatedHours, task.ActualHours, len(window))
	}
}

// TestEnoughTime_OverbookedSetsAlwaysRefused property-tests the negative
// half: when the union of all windows is one shared span whose total demand
// exceeds its total capacity, no competitor ordering can save the candidate.
func TestEnoughTime_OverbookedSetsAlwaysRefused(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	profile := weekdayProfile()

	for trial := 0; trial < 200; trial++ {
		// All tasks share the same single week so every competitor overlaps
		// and the expanded window never grows past it.
		task := &domain.Task{
			ID:             "t",
			Start:          day(2025, 6, 2),
			Deadline:       day(2025, 6, 8),
			EstimatedHours: rng.Intn(20) + 1,
		}
		demand := task.EstimatedHours

		n := rng.Intn(4) + 1
		others := make([]*domain.Task, n)
		for i := range others {
			others[i] = &domain.Task{
				ID:             string(rune('a' + i)),
				Start:          day(2025, 6, 2),
				Deadline:       day(2025, 6, 8),
				EstimatedHours: rng.Intn(20),
			}
			demand += others[i].EstimatedHours
		}
		if demand <= 40 {
			// Top up the last competitor to overbook the 40h week.
			others[n-1].EstimatedHours += 41 - demand
		}

		assert.False(t, EnoughTime(task, others, profile, ref),
			"trial %d: total demand exceeds the shared week", trial)
	}
}
