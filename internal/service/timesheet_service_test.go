package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/repository"
	"github.com/sirapatk/clockwise/internal/testutil"
	"github.com/sirapatk/clockwise/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTimesheet(t *testing.T) (TimesheetService, *repository.SQLiteTimeEntryRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTimeEntryRepo(database)
	return NewTimesheetService(repo, testutil.NewTestUoW(database)), repo
}

func TestClock_ReturnsPersistedEvent(t *testing.T) {
	svc, repo := setupTimesheet(t)
	ctx := context.Background()

	loc := "13.7563,100.5018"
	e, err := svc.Clock(ctx, "w1", domain.ActionCheckIn, domain.ModeHome, &loc)
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "w1", e.WorkerID)
	assert.Equal(t, domain.ModeHome, e.WorkMode)

	start, end := timeline.DayWindow(e.Timestamp)
	stored, err := repo.ListDay(ctx, "w1", start, end)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, e.ID, stored[0].ID)
	require.NotNil(t, stored[0].Location)
	assert.Equal(t, loc, *stored[0].Location)
}

func TestClock_PersistFailureRecordsNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTimeEntryRepo(database)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: errors.New("disk full")}
	svc := NewTimesheetService(repo, uow)
	ctx := context.Background()

	_, err := svc.Clock(ctx, "w1", domain.ActionCheckIn, domain.ModeOffice, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)

	start, end := timeline.DayWindow(time.Now().UTC())
	stored, listErr := repo.ListDay(ctx, "w1", start, end)
	require.NoError(t, listErr)
	assert.Empty(t, stored, "failed append must leave the store untouched")
}

func TestDayReport_FromStoredEvents(t *testing.T) {
	svc, repo := setupTimesheet(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionCheckIn, day.Add(9*time.Hour))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionBreakStart, day.Add(12*time.Hour))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionBreakEnd, day.Add(12*time.Hour+30*time.Minute))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionCheckOut, day.Add(17*time.Hour))))

	report, err := svc.DayReport(ctx, "w1", day.Add(18*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 7, report.Totals.Hours)
	assert.Equal(t, 30, report.Totals.Minutes)
	require.NotNil(t, report.Session)
	assert.Len(t, report.Breaks, 1)
}

func TestDayReport_EmptyDay(t *testing.T) {
	svc, _ := setupTimesheet(t)

	report, err := svc.DayReport(context.Background(), "w1", time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, report.Session)
	assert.Empty(t, report.Breaks)
	assert.Equal(t, timeline.DailyTotals{}, report.Totals)
}

// The optimistic strategy (append the returned event to a cached
// snapshot) and the refetch strategy must agree on the totals.
func TestClock_OptimisticAppendMatchesRefetch(t *testing.T) {
	svc, _ := setupTimesheet(t)
	ctx := context.Background()

	cached, err := svc.DayEvents(ctx, "w1", time.Now().UTC())
	require.NoError(t, err)

	for _, action := range []domain.EntryAction{
		domain.ActionCheckIn,
		domain.ActionBreakStart,
		domain.ActionBreakEnd,
	} {
		e, err := svc.Clock(ctx, "w1", action, domain.ModeOffice, nil)
		require.NoError(t, err)
		cached = append(cached, *e)
	}

	now := time.Now().UTC()
	refetched, err := svc.DayEvents(ctx, "w1", now)
	require.NoError(t, err)

	assert.Equal(t,
		timeline.BuildDayReport(refetched, now),
		timeline.BuildDayReport(cached, now),
		"cached-append and refetch must produce identical reports")
}

func TestStatus_FollowsLatestAction(t *testing.T) {
	svc, _ := setupTimesheet(t)
	ctx := context.Background()
	now := time.Now().UTC()

	status, err := svc.Status(ctx, "w1", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOffline, status)

	_, err = svc.Clock(ctx, "w1", domain.ActionCheckIn, domain.ModeOffice, nil)
	require.NoError(t, err)

	status, err = svc.Status(ctx, "w1", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWorking, status)
}

func TestDayEvents_FetchFailureWrapped(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTimeEntryRepo(database)
	svc := NewTimesheetService(repo, testutil.NewTestUoW(database))
	database.Close()

	_, err := svc.DayEvents(context.Background(), "w1", time.Now().UTC())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
}
