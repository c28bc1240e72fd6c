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

func TestScheduleRepo_ReplacePlannedAndListRange(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sessions := []domain.PlanSession{
		*testutil.NewTestSession(testutil.Date(2025, time.March, 17), domain.SessionLongRun,
			testutil.WithHardness(domain.StressHard), testutil.WithDuration(75),
			testutil.WithNotes("milestone build")),
		*testutil.NewTestSession(testutil.Date(2025, time.March, 18), domain.SessionStrength,
			testutil.WithVariant("Full Body A")),
	}
	require.NoError(t, repo.ReplacePlanned(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23), sessions))

	got, err := repo.ListRange(ctx, testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.SessionLongRun, got[0].Type)
	assert.Equal(t, domain.StressHard, got[0].Hardness)
	assert.Equal(t, 75, got[0].DurationMin)
	assert.Equal(t, []string{"milestone build"}, got[0].Notes)
	assert.Equal(t, "Full Body A", got[1].Variant)
	assert.Equal(t, domain.ModalityStrength, got[1].Modality)
}

func TestScheduleRepo_ReplacePlannedPreservesTerminalRows(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	completed := testutil.NewTestSession(testutil.Date(2025, time.March, 18), domain.SessionZone2,
		testutil.WithStatus(domain.StatusCompleted))
	planned := testutil.NewTestSession(testutil.Date(2025, time.March, 19), domain.SessionTempo)
	require.NoError(t, repo.ReplacePlanned(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23),
		[]domain.PlanSession{*completed, *planned}))

	replacement := testutil.NewTestSession(testutil.Date(2025, time.March, 20), domain.SessionZone2)
	require.NoError(t, repo.ReplacePlanned(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23),
		[]domain.PlanSession{*replacement}))

	got, err := repo.ListRange(ctx, testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, completed.ID, got[0].ID, "completed row must survive re-planning")
	assert.Equal(t, replacement.ID, got[1].ID)
}

func TestScheduleRepo_TerminalDates(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sessions := []domain.PlanSession{
		*testutil.NewTestSession(testutil.Date(2025, time.March, 17), domain.SessionZone2,
			testutil.WithStatus(domain.StatusCompleted)),
		*testutil.NewTestSession(testutil.Date(2025, time.March, 18), domain.SessionTempo,
			testutil.WithStatus(domain.StatusMissed)),
		*testutil.NewTestSession(testutil.Date(2025, time.March, 19), domain.SessionZone2),
	}
	require.NoError(t, repo.ReplacePlanned(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23), sessions))

	dates, err := repo.TerminalDates(ctx, testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 23))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"2025-03-17": true, "2025-03-18": true}, dates)
}

func TestScheduleRepo_UpdateStatus(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.Date(2025, time.March, 17), domain.SessionZone2)
	require.NoError(t, repo.ReplacePlanned(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 17),
		[]domain.PlanSession{*s}))

	updatedAt := time.Date(2025, time.March, 18, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateStatus(ctx, s.ID, domain.StatusCompleted, updatedAt))

	got, err := repo.ListByStatus(ctx, domain.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s.ID, got[0].ID)
	assert.Equal(t, updatedAt, got[0].UpdatedAt)
}

func TestScheduleRepo_UpdateStatus_NotFound(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))

	err := repo.UpdateStatus(context.Background(), "nonexistent", domain.StatusCompleted, time.Now().UTC())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepo_EmptyNotesRoundTripAsNil(t *testing.T) {
	repo := NewSQLiteScheduleRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSession(testutil.Date(2025, time.March, 17), domain.SessionZone2)
	require.NoError(t, repo.ReplacePlanned(ctx,
		testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 17),
		[]domain.PlanSession{*s}))

	got, err := repo.ListRange(ctx, testutil.Date(2025, time.March, 17), testutil.Date(2025, time.March, 17))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Notes)
}
