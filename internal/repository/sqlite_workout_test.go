package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pacerapp/pacer/internal/domain"
	"github.com/pacerapp/pacer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutRepo_CreateAndListRange(t *testing.T) {
	repo := NewSQLiteWorkoutRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	w := testutil.NewTestWorkout(testutil.Date(2025, time.March, 10), "run", 50,
		testutil.WithEffort(6.5),
		testutil.WithZones([domain.ZoneCount]int{5, 30, 10, 5, 0}),
		testutil.WithWorkoutNote("easy loop"),
	)
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.ListRange(ctx, testutil.Date(2025, time.March, 1), testutil.Date(2025, time.March, 31))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, w.ID, got[0].ID)
	assert.Equal(t, "run", got[0].Type)
	assert.Equal(t, 50, got[0].DurationMin)
	require.NotNil(t, got[0].EffortScore)
	assert.InDelta(t, 6.5, *got[0].EffortScore, 0.001)
	assert.True(t, got[0].HasZones)
	assert.Equal(t, [domain.ZoneCount]int{5, 30, 10, 5, 0}, got[0].ZoneMinutes)
	assert.Equal(t, "easy loop", got[0].Note)
	assert.Equal(t, testutil.Date(2025, time.March, 10), got[0].Date)
}

func TestWorkoutRepo_ListRange_BoundsInclusive(t *testing.T) {
	repo := NewSQLiteWorkoutRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, day := range []int{9, 10, 15, 16} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestWorkout(testutil.Date(2025, time.March, day), "run", 40)))
	}

	got, err := repo.ListRange(ctx, testutil.Date(2025, time.March, 10), testutil.Date(2025, time.March, 15))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, testutil.Date(2025, time.March, 10), got[0].Date)
	assert.Equal(t, testutil.Date(2025, time.March, 15), got[1].Date)
}

func TestWorkoutRepo_NullEffortRoundTrips(t *testing.T) {
	repo := NewSQLiteWorkoutRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkout(testutil.Date(2025, time.March, 12), "strength", 45)))

	got, err := repo.ListRange(ctx, testutil.Date(2025, time.March, 12), testutil.Date(2025, time.March, 12))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].EffortScore)
	assert.False(t, got[0].HasZones)
}

func TestWorkoutRepo_ListRecent(t *testing.T) {
	repo := NewSQLiteWorkoutRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, day := range []int{1, 5, 20} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestWorkout(testutil.Date(2025, time.March, day), "run", 40)))
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, testutil.Date(2025, time.March, 20), got[0].Date)
	assert.Equal(t, testutil.Date(2025, time.March, 5), got[1].Date)
}
