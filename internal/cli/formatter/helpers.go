package formatter

import (
	"fmt"
	"math"
	"time"
)

// FormatDate renders a date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// RelativeDateFrom returns a human-friendly relative date string measured
// from a reference time, with color reflecting urgency.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	var label string
	switch {
	case days < 0:
		label = fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		label = "today"
	case days == 1:
		label = "tomorrow"
	default:
		label = fmt.Sprintf("in %dd", days)
	}

	switch {
	case days < 0:
		return StyleRed.Render(label)
	case days <= 2:
		return StyleYellow.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// FormatHours renders an hour count such as "6h" with negatives preserved.
func FormatHours(hours int) string {
	return fmt.Sprintf("%dh", hours)
}

// FormatHoursPair renders logged-versus-estimated hours as "4h / 10h".
func FormatHoursPair(actual, estimated int) string {
	return fmt.Sprintf("%dh / %dh", actual, estimated)
}
