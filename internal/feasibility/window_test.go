package feasibility

import (
	"testing"
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekdayProfile is the standard workweek used across these tests:
// 8h Monday through Friday, weekends off.
func weekdayProfile() *domain.Availability {
	return &domain.Availability{Monday: 8, Tuesday: 8, Wednesday: 8, Thursday: 8, Friday: 8}
}

func TestActiveWindow_StartsAtTaskStartWhenInFuture(t *testing.T) {
	task := &domain.Task{Start: day(2025, 6, 10), Deadline: day(2025, 6, 12)}

	window := ActiveWindow(task, day(2025, 6, 1))

	assert.Equal(t, []time.Time{day(2025, 6, 10), day(2025, 6, 11), day(2025, 6, 12)}, window)
}

func TestActiveWindow_ClampsToReferenceWhenStartHasPassed(t *testing.T) {
	task := &domain.Task{Start: day(2025, 6, 1), Deadline: day(2025, 6, 12)}

	window := ActiveWindow(task, day(2025, 6, 11))

	assert.Equal(t, []time.Time{day(2025, 6, 11), day(2025, 6, 12)}, window)
}

func TestActiveWindow_SingleDay(t *testing.T) {
	task := &domain.Task{Start: day(2025, 6, 9), Deadline: day(2025, 6, 9)}

	window := ActiveWindow(task, day(2025, 6, 1))

	assert.Equal(t, []time.Time{day(2025, 6, 9)}, window)
}

func TestActiveWindow_EmptyWhenDeadlineBehindReference(t *testing.T) {
	task := &domain.Task{Start: day(2025, 6, 1), Deadline: day(2025, 6, 5)}

	// The deadline has already passed: no days remain to work on, which is a
	// zero-hour window rather than an error.
	window := ActiveWindow(task, day(2025, 6, 10))

	assert.Empty(t, window)
	assert.Equal(t, 0, AvailableHours(window, weekdayProfile()))
}

func TestActiveWindow_IgnoresClockComponents(t *testing.T) {
	task := &domain.Task{
		Start:    time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC),
		Deadline: time.Date(2025, 6, 11, 3, 0, 0, 0, time.UTC),
	}

	window := ActiveWindow(task, time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, []time.Time{day(2025, 6, 10), day(2025, 6, 11)}, window)
}

func TestOverlaps_SharedDay(t *testing.T) {
	ref := day(2025, 6, 1)
	task := &domain.Task{Start: day(2025, 6, 10), Deadline: day(2025, 6, 12)}

	assert.True(t, Overlaps(task, []time.Time{day(2025, 6, 12), day(2025, 6, 13)}, ref))
	assert.False(t, Overlaps(task, []time.Time{day(2025, 6, 13), day(2025, 6, 14)}, ref))
}

func TestOverlaps_UsesOwnActiveWindowNotRawStart(t *testing.T) {
	// The task nominally starts June 1 but the reference date clamps its
	// window to June 10 onward, so June 5 is not an overlap.
	ref := day(2025, 6, 10)
	task := &domain.Task{Start: day(2025, 6, 1), Deadline: day(2025, 6, 12)}

	assert.False(t, Overlaps(task, []time.Time{day(2025, 6, 5)}, ref))
	assert.True(t, Overlaps(task, []time.Time{day(2025, 6, 10)}, ref))
}

func TestAvailableHours_SumsWeekdayHours(t *testing.T) {
	// Mon Jun 9 through Sun Jun 15 2025: one full week.
	task := &domain.Task{Start: day(2025, 6, 9), Deadline: day(2025, 6, 15)}
	window := ActiveWindow(task, day(2025, 6, 1))

	assert.Equal(t, 40, AvailableHours(window, weekdayProfile()))

	uneven := &domain.Availability{Monday: 2, Wednesday: 4, Saturday: 6}
	assert.Equal(t, 12, AvailableHours(window, uneven))
}
