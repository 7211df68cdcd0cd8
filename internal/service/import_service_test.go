package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/importer"
	"github.com/jmalmgren/tempus/internal/repository"
	"github.com/jmalmgren/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(description, category, start, deadline, estimated string) importer.TaskRecord {
	return importer.TaskRecord{
		Description:       description,
		Category:          category,
		StartDate:         start,
		Deadline:          deadline,
		EstimatedDuration: estimated,
	}
}

func TestImport_SchedulesValidRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteAvailabilityRepo(database).Upsert(ctx, testutil.NewTestAvailability()))

	svc := NewImportService(testutil.NewTestUoW(database), WithImportClock(testClock))
	result, err := svc.ImportRecords(ctx, []importer.TaskRecord{
		record("essay", "studies", "02-06-2025", "06-06-2025", "10"),
		record("mow lawn", "home", "02-06-2025", "06-06-2025", "5"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"essay", "mow lawn"}, result.Scheduled)
	assert.Empty(t, result.Skipped)

	tasks, err := repository.NewSQLiteTaskRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	byDescription := make(map[string]string)
	for _, task := range tasks {
		assert.NotEmpty(t, task.ID)
		byDescription[task.Description] = task.CategoryName
	}
	assert.Equal(t, "studies", byDescription["essay"])
	assert.Equal(t, "home", byDescription["mow lawn"])
}

func TestImport_SkipsInfeasibleRowsWithoutFailingBatch(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteAvailabilityRepo(database).Upsert(ctx, testutil.NewTestAvailability()))

	svc := NewImportService(testutil.NewTestUoW(database), WithImportClock(testClock))
	result, err := svc.ImportRecords(ctx, []importer.TaskRecord{
		record("fits", "work", "02-06-2025", "06-06-2025", "10"),
		// Saturday-only: zero capacity.
		record("weekend overload", "work", "07-06-2025", "07-06-2025", "2"),
		record("also fits", "work", "02-06-2025", "06-06-2025", "10"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"fits", "also fits"}, result.Scheduled)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "weekend overload", result.Skipped[0].Description)
	assert.Contains(t, result.Skipped[0].Reason, "next possible deadline")
}

func TestImport_EarlierRowsCompeteWithLaterOnes(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteAvailabilityRepo(database).Upsert(ctx, testutil.NewTestAvailability()))

	svc := NewImportService(testutil.NewTestUoW(database), WithImportClock(testClock))
	// Two 6h tasks on the same 8h Monday: only the first fits.
	result, err := svc.ImportRecords(ctx, []importer.TaskRecord{
		record("first", "work", "02-06-2025", "02-06-2025", "6"),
		record("second", "work", "02-06-2025", "02-06-2025", "6"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, result.Scheduled)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "second", result.Skipped[0].Description)
}

func TestImport_SkipsMalformedRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteAvailabilityRepo(database).Upsert(ctx, testutil.NewTestAvailability()))

	svc := NewImportService(testutil.NewTestUoW(database), WithImportClock(testClock))
	result, err := svc.ImportRecords(ctx, []importer.TaskRecord{
		{Description: "no dates", Category: "work"},
		record("valid", "work", "02-06-2025", "06-06-2025", "4"),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"valid"}, result.Scheduled)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "no dates", result.Skipped[0].Description)
}

func TestImport_AbortsWithoutProfile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database), WithImportClock(testClock))

	_, err := svc.ImportRecords(context.Background(), []importer.TaskRecord{
		record("anything", "work", "02-06-2025", "06-06-2025", "4"),
	})
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestImport_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteAvailabilityRepo(database).Upsert(ctx, testutil.NewTestAvailability()))

	// Fail the third write inside the transaction (category + task for the
	// first row succeed, the second row's write fails).
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: fmt.Errorf("disk full")}
	svc := NewImportService(uow, WithImportClock(testClock))

	_, err := svc.ImportRecords(ctx, []importer.TaskRecord{
		record("one", "work", "02-06-2025", "06-06-2025", "4"),
		record("two", "home", "02-06-2025", "06-06-2025", "4"),
	})
	require.Error(t, err)

	tasks, listErr := repository.NewSQLiteTaskRepo(database).List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, tasks, "a failed import must leave no partial rows behind")
}

func TestImport_FromJSONFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, repository.NewSQLiteAvailabilityRepo(database).Upsert(ctx, testutil.NewTestAvailability()))

	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[{"description": "from file", "category": "work",
		"start date": "02-06-2025", "deadline": "06-06-2025",
		"estimated duration": 4, "elapsed time": 0, "status": "NS"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	svc := NewImportService(testutil.NewTestUoW(database), WithImportClock(testClock))
	result, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"from file"}, result.Scheduled)
}

func TestImport_RejectsUnknownExtension(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	path := filepath.Join(t.TempDir(), "tasks.xml")
	require.NoError(t, os.WriteFile(path, []byte("<tasks/>"), 0644))

	_, err := svc.ImportFile(context.Background(), path)
	assert.Error(t, err)
}
