package repository

import (
	"errors"
	"time"
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

const dateLayout = "2006-01-02"

// parseDate parses a stored YYYY-MM-DD value. Stored dates always come from
// formatDate, so a parse failure is a corrupt row; the zero time is returned
// rather than an error to keep scan loops flat.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
