package service

import (
	"context"
	"testing"
	"time"

	"github.com/sirapatk/clockwise/internal/repository"
	"github.com/sirapatk/clockwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddHoliday_TrimsAndLists(t *testing.T) {
	svc := NewHolidayService(repository.NewSQLiteHolidayRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	_, err := svc.Add(ctx, "  Songkran  ", date(2025, 4, 13), "Thai new year")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "New Year", date(2025, 1, 1), "")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "New Year", list[0].Name)
	assert.Equal(t, "Songkran", list[1].Name)
}

func TestAddHoliday_EmptyNameRejected(t *testing.T) {
	svc := NewHolidayService(repository.NewSQLiteHolidayRepo(testutil.NewTestDB(t)))

	_, err := svc.Add(context.Background(), "   ", time.Now(), "")
	assert.Error(t, err)
}

func TestUpcomingHolidays(t *testing.T) {
	svc := NewHolidayService(repository.NewSQLiteHolidayRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	_, err := svc.Add(ctx, "New Year", date(2025, 1, 1), "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Songkran", date(2025, 4, 13), "")
	require.NoError(t, err)

	list, err := svc.Upcoming(ctx, date(2025, 2, 1), 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Songkran", list[0].Name)
}
