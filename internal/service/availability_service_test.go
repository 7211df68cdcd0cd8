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

func TestAvailabilityService_SetAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewAvailabilityService(repository.NewSQLiteAvailabilityRepo(database))
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, testutil.NewTestAvailability()))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, got.WeeklyHours())
}

func TestAvailabilityService_Set_RejectsOutOfRangeHours(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewAvailabilityService(repository.NewSQLiteAvailabilityRepo(database))

	err := svc.Set(context.Background(), &domain.Availability{Tuesday: 25})
	assert.Error(t, err)

	err = svc.Set(context.Background(), &domain.Availability{Friday: -1})
	assert.Error(t, err)
}
