package feasibility

import (
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

// DayStart truncates a time to its calendar day at UTC midnight. All window
// arithmetic works on day-floored times so that two times on the same date
// always compare equal.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActiveWindow returns the ordered sequence of calendar days a task can be
// worked on: from its start date or the reference date, whichever is later,
// through its deadline inclusive. The window is empty when the deadline
// precedes the effective start; that is a zero-hour window, not an error.
func ActiveWindow(task *domain.Task, ref time.Time) []time.Time {
	start := DayStart(task.Start)
	if floor := DayStart(ref); floor.After(start) {
		start = floor
	}
	end := DayStart(task.Deadline)
	if end.Before(start) {
		return nil
	}
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlaps reports whether any day of the task's own active window is present
// in the given date set.
func Overlaps(task *domain.Task, dates []time.Time, ref time.Time) bool {
	set := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		set[DayStart(d)] = true
	}
	return overlapsSet(task, set, ref)
}

func overlapsSet(task *domain.Task, set map[time.Time]bool, ref time.Time) bool {
	for _, d := range ActiveWindow(task, ref) {
		if set[d] {
			return true
		}
	}
	return false
}

// AvailableHours sums the weekly profile's hours over every day in the window.
func AvailableHours(window []time.Time, avail *domain.Availability) int {
	hours := 0
	for _, d := range window {
		hours += avail.HoursOn(d.Weekday())
	}
	return hours
}
