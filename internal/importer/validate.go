package importer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jmalmgren/tempus/internal/domain"
)

// dateLayouts are the accepted spellings for import dates. Day-first is the
// format the original spreadsheets used; ISO is accepted as well.
var dateLayouts = []string{"2-1-2006", "02-01-2006", "2006-01-02"}

// ValidateRecord checks one record for structural errors before conversion.
// Returns every problem found so a skipped row can be reported in full.
func ValidateRecord(rec *TaskRecord) []error {
	var errs []error

	if rec.Description == "" {
		errs = append(errs, fmt.Errorf("description is required"))
	}
	if rec.Category == "" {
		errs = append(errs, fmt.Errorf("category is required"))
	}

	if rec.StartDate == "" {
		errs = append(errs, fmt.Errorf("start date is required"))
	} else if _, err := parseImportDate(rec.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("start date: %w", err))
	}
	if rec.Deadline == "" {
		errs = append(errs, fmt.Errorf("deadline is required"))
	} else if _, err := parseImportDate(rec.Deadline); err != nil {
		errs = append(errs, fmt.Errorf("deadline: %w", err))
	}

	if rec.EstimatedDuration == "" {
		errs = append(errs, fmt.Errorf("estimated duration is required"))
	} else if _, err := parseHours(rec.EstimatedDuration); err != nil {
		errs = append(errs, fmt.Errorf("estimated duration: %w", err))
	}
	if rec.ElapsedTime != "" {
		if _, err := parseHours(rec.ElapsedTime); err != nil {
			errs = append(errs, fmt.Errorf("elapsed time: %w", err))
		}
	}

	if rec.Status != "" {
		if _, err := domain.ParseTaskStatus(rec.Status); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func parseImportDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected DD-MM-YYYY or YYYY-MM-DD)", s)
}

func parseHours(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hour count %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("hour count may not be negative")
	}
	return n, nil
}
