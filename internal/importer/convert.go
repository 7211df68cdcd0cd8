package importer

import (
	"fmt"

	"github.com/jmalmgren/tempus/internal/domain"
)

// Convert builds a candidate task from a validated record. The task carries
// no ID and no category reference yet; the import service resolves the
// category by name and runs the feasibility gate.
func Convert(rec *TaskRecord) (*domain.Task, error) {
	if errs := ValidateRecord(rec); len(errs) > 0 {
		return nil, fmt.Errorf("invalid record: %v", errs[0])
	}

	start, err := parseImportDate(rec.StartDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseImportDate(rec.Deadline)
	if err != nil {
		return nil, err
	}
	estimated, err := parseHours(rec.EstimatedDuration)
	if err != nil {
		return nil, err
	}

	elapsed := 0
	if rec.ElapsedTime != "" {
		if elapsed, err = parseHours(rec.ElapsedTime); err != nil {
			return nil, err
		}
	}

	status := domain.TaskNotStarted
	if rec.Status != "" {
		if status, err = domain.ParseTaskStatus(rec.Status); err != nil {
			return nil, err
		}
	} else if elapsed > 0 {
		status = domain.TaskOngoing
	}

	return &domain.Task{
		Description:    rec.Description,
		CategoryName:   rec.Category,
		Start:          start,
		Deadline:       deadline,
		EstimatedHours: estimated,
		ActualHours:    elapsed,
		Status:         status,
	}, nil
}
