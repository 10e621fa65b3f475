package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/testutil"
	"github.com/sirapatk/clockwise/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryRepo_AppendAndListDay(t *testing.T) {
	repo := NewSQLiteTimeEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	in := testutil.NewTestEntry("w1", domain.ActionCheckIn, day.Add(9*time.Hour),
		testutil.WithLocation("13.7563,100.5018"))
	out := testutil.NewTestEntry("w1", domain.ActionCheckOut, day.Add(17*time.Hour))
	require.NoError(t, repo.Append(ctx, in))
	require.NoError(t, repo.Append(ctx, out))

	start, end := timeline.DayWindow(day)
	entries, err := repo.ListDay(ctx, "w1", start, end)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, in.ID, entries[0].ID)
	assert.Equal(t, domain.ActionCheckIn, entries[0].Action)
	require.NotNil(t, entries[0].Location)
	assert.Equal(t, "13.7563,100.5018", *entries[0].Location)
	assert.Nil(t, entries[1].Location)
	assert.True(t, entries[0].Timestamp.Equal(in.Timestamp))
}

func TestTimeEntryRepo_ListDay_AscendingRegardlessOfInsertOrder(t *testing.T) {
	repo := NewSQLiteTimeEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	late := testutil.NewTestEntry("w1", domain.ActionCheckOut, day.Add(17*time.Hour))
	early := testutil.NewTestEntry("w1", domain.ActionCheckIn, day.Add(9*time.Hour))
	require.NoError(t, repo.Append(ctx, late))
	require.NoError(t, repo.Append(ctx, early))

	start, end := timeline.DayWindow(day)
	entries, err := repo.ListDay(ctx, "w1", start, end)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, early.ID, entries[0].ID)
	assert.Equal(t, late.ID, entries[1].ID)
}

func TestTimeEntryRepo_ListDay_WindowExcludesOtherDaysAndWorkers(t *testing.T) {
	repo := NewSQLiteTimeEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionCheckIn, day.Add(9*time.Hour))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionCheckIn, day.AddDate(0, 0, -1).Add(9*time.Hour))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w2", domain.ActionCheckIn, day.Add(9*time.Hour))))

	start, end := timeline.DayWindow(day)
	entries, err := repo.ListDay(ctx, "w1", start, end)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTimeEntryRepo_SubSecondTimestampSurvivesRoundTrip(t *testing.T) {
	repo := NewSQLiteTimeEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	ts := time.Date(2025, 3, 10, 9, 0, 59, 900_000_000, time.UTC)

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry("w1", domain.ActionCheckIn, ts)))

	start, end := timeline.DayWindow(ts)
	entries, err := repo.ListDay(ctx, "w1", start, end)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Timestamp.Equal(ts), "fractional seconds must not be lost; minute truncation depends on them")
}
