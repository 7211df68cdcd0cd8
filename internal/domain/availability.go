package domain

import (
	"fmt"
	"time"
)

// Availability is the weekly recurring capacity profile: how many hours the
// user has free on each weekday. Exactly one profile exists per database;
// the repository layer enforces the singleton.
type Availability struct {
	Monday    int
	Tuesday   int
	Wednesday int
	Thursday  int
	Friday    int
	Saturday  int
	Sunday    int

	UpdatedAt time.Time
}

// HoursOn returns the available hours for the given weekday.
func (a *Availability) HoursOn(day time.Weekday) int {
	switch day {
	case time.Monday:
		return a.Monday
	case time.Tuesday:
		return a.Tuesday
	case time.Wednesday:
		return a.Wednesday
	case time.Thursday:
		return a.Thursday
	case time.Friday:
		return a.Friday
	case time.Saturday:
		return a.Saturday
	default:
		return a.Sunday
	}
}

// WeeklyHours is the total available hours over one week.
func (a *Availability) WeeklyHours() int {
	return a.Monday + a.Tuesday + a.Wednesday + a.Thursday + a.Friday +
		a.Saturday + a.Sunday
}

// HasCapacity reports whether at least one weekday has a positive hour value.
// A profile without capacity makes every deadline search diverge, so callers
// must check this before iterating.
func (a *Availability) HasCapacity() bool {
	return a.WeeklyHours() > 0
}

// Validate checks that every weekday value is within [0, 24].
func (a *Availability) Validate() error {
	days := []struct {
		name  string
		hours int
	}{
		{"monday", a.Monday},
		{"tuesday", a.Tuesday},
		{"wednesday", a.Wednesday},
		{"thursday", a.Thursday},
		{"friday", a.Friday},
		{"saturday", a.Saturday},
		{"sunday", a.Sunday},
	}
	for _, d := range days {
		if d.hours < 0 || d.hours > 24 {
			return fmt.Errorf("%s hours must be between 0 and 24, got %d", d.name, d.hours)
		}
	}
	return nil
}
