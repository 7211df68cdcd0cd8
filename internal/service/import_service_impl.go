package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmalmgren/tempus/internal/db"
	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/feasibility"
	"github.com/jmalmgren/tempus/internal/importer"
	"github.com/jmalmgren/tempus/internal/repository"
)

// SkippedRow is one import row that was not scheduled, with the reason.
type SkippedRow struct {
	Description string
	Reason      string
}

// ImportResult holds the outcome of a bulk task import.
type ImportResult struct {
	Scheduled []string
	Skipped   []SkippedRow
}

type ImportService interface {
	// ImportFile reads a .json or .csv task file and schedules every row
	// that passes validation and the feasibility gate. Rows that do not fit
	// are skipped and reported, never failing the batch. Accepted rows are
	// committed in one transaction.
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportRecords(ctx context.Context, records []importer.TaskRecord) (*ImportResult, error)
}

type importService struct {
	uow db.UnitOfWork
	now func() time.Time
}

type ImportServiceOption func(*importService)

// WithImportClock overrides the reference-date source, for deterministic tests.
func WithImportClock(now func() time.Time) ImportServiceOption {
	return func(s *importService) {
		s.now = now
	}
}

func NewImportService(uow db.UnitOfWork, opts ...ImportServiceOption) ImportService {
	s := &importService{uow: uow, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	records, err := importer.LoadTaskRecords(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportRecords(ctx, records)
}

func (s *importService) ImportRecords(ctx context.Context, records []importer.TaskRecord) (*ImportResult, error) {
	result := &ImportResult{}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		categories := repository.NewSQLiteCategoryRepo(tx)

		// A missing profile aborts the whole import; there is nothing to
		// evaluate any row against.
		avail, err := repository.NewSQLiteAvailabilityRepo(tx).Get(ctx)
		if err != nil {
			return err
		}

		ref := s.now()
		for i, rec := range records {
			label := rec.Description
			if label == "" {
				label = fmt.Sprintf("row %d", i+1)
			}

			candidate, err := importer.Convert(&rec)
			if err != nil {
				result.Skipped = append(result.Skipped, SkippedRow{Description: label, Reason: err.Error()})
				continue
			}

			// Rows accepted earlier in the batch are already visible inside
			// the transaction and count as competitors here.
			others, err := tasks.ListActive(ctx, "")
			if err != nil {
				return err
			}

			verdict, err := feasibility.Evaluate(candidate, others, avail, ref)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidDateOrder) {
					result.Skipped = append(result.Skipped, SkippedRow{Description: label, Reason: err.Error()})
					continue
				}
				return err
			}
			if !verdict.Feasible {
				conflict := &ScheduleConflictError{
					Description:       candidate.Description,
					SuggestedDeadline: verdict.SuggestedDeadline,
					SuggestedStart:    verdict.SuggestedStart,
				}
				result.Skipped = append(result.Skipped, SkippedRow{Description: label, Reason: conflict.Error()})
				continue
			}

			cat, err := categories.GetOrCreate(ctx, candidate.CategoryName)
			if err != nil {
				return err
			}
			candidate.ID = uuid.New().String()
			candidate.CategoryID = cat.ID
			now := time.Now().UTC()
			candidate.CreatedAt = now
			candidate.UpdatedAt = now

			if err := tasks.Create(ctx, candidate); err != nil {
				return err
			}
			result.Scheduled = append(result.Scheduled, candidate.Description)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
