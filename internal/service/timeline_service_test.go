package service

import (
	"context"
	"testing"

	"github.com/jmalmgren/tempus/internal/domain"
	"github.com/jmalmgren/tempus/internal/repository"
	"github.com/jmalmgren/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTimeline(t *testing.T) (context.Context, TimelineService, repository.TaskRepo, repository.AvailabilityRepo, *domain.Category) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	availability := repository.NewSQLiteAvailabilityRepo(database)
	cat, err := repository.NewSQLiteCategoryRepo(database).GetOrCreate(context.Background(), "work")
	require.NoError(t, err)

	svc := NewTimelineService(tasks, availability, WithTimelineClock(testClock))
	return context.Background(), svc, tasks, availability, cat
}

func TestTimeline_Report_RequiresProfile(t *testing.T) {
	ctx, svc, _, _, _ := setupTimeline(t)

	_, err := svc.Report(ctx)
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestTimeline_Report_ProjectsPossibleFinishDates(t *testing.T) {
	ctx, svc, tasks, availability, cat := setupTimeline(t)
	require.NoError(t, availability.Upsert(ctx, testutil.NewTestAvailability()))

	// Fits its own window comfortably.
	fine := testutil.NewTestTask("fine", testutil.WithCategoryID(cat.ID),
		testutil.WithEstimate(10))
	// Saturday-only task: must be flagged with a Monday projection.
	stuck := testutil.NewTestTask("stuck", testutil.WithCategoryID(cat.ID),
		testutil.WithDates(testutil.Day(2025, 6, 7), testutil.Day(2025, 6, 7)),
		testutil.WithEstimate(2))
	require.NoError(t, tasks.Create(ctx, fine))
	require.NoError(t, tasks.Create(ctx, stuck))

	report, err := svc.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, 40, report.WeeklyHours)
	assert.Equal(t, 12, report.DemandHours)

	byID := make(map[string]TimelineRow)
	for _, row := range report.Rows {
		byID[row.Task.ID] = row
	}

	require.NotNil(t, byID[fine.ID].PossibleFinish)
	assert.True(t, byID[fine.ID].Feasible)

	stuckRow := byID[stuck.ID]
	assert.False(t, stuckRow.Feasible)
	require.NotNil(t, stuckRow.PossibleFinish)
	assert.Equal(t, testutil.Day(2025, 6, 9), *stuckRow.PossibleFinish)
}

func TestTimeline_Report_CompletedTasksHaveNoProjection(t *testing.T) {
	ctx, svc, tasks, availability, cat := setupTimeline(t)
	require.NoError(t, availability.Upsert(ctx, testutil.NewTestAvailability()))

	done := testutil.NewTestTask("done", testutil.WithCategoryID(cat.ID),
		testutil.WithStatus(domain.TaskCompleted), testutil.WithEstimate(100))
	require.NoError(t, tasks.Create(ctx, done))

	report, err := svc.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Nil(t, report.Rows[0].PossibleFinish)
	assert.True(t, report.Rows[0].Feasible)
	assert.Equal(t, 0, report.DemandHours, "completed work never counts as demand")
}
