package repository

import (
	"context"
	"testing"
	"time"

	"github.com/sirapatk/clockwise/internal/domain"
	"github.com/sirapatk/clockwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteLeaveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	l := testutil.NewTestLeave("w1", testutil.WithLeaveType(domain.LeaveSick))
	require.NoError(t, repo.Create(ctx, l))

	fetched, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, fetched.ID)
	assert.Equal(t, domain.LeaveSick, fetched.Type)
	assert.Equal(t, domain.LeavePending, fetched.Status)
	assert.True(t, fetched.StartDate.Equal(l.StartDate))
}

func TestLeaveRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteLeaveRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaveRepo_ListByWorker_NewestFirst(t *testing.T) {
	repo := NewSQLiteLeaveRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	older := testutil.NewTestLeave("w1", testutil.WithLeaveRange(day, day.AddDate(0, 0, 1)))
	newer := testutil.NewTestLeave("w1", testutil.WithLeaveRange(day.AddDate(0, 1, 0), day.AddDate(0, 1, 2)))
	other := testutil.NewTestLeave("w2")
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByWorker(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID, "ordered by start date descending")
	assert.Equal(t, older.ID, list[1].ID)
}

func TestLeaveRepo_UpdateStatus(t *testing.T) {
	repo := NewSQLiteLeaveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	l := testutil.NewTestLeave("w1")
	require.NoError(t, repo.Create(ctx, l))

	require.NoError(t, repo.UpdateStatus(ctx, l.ID, domain.LeaveApproved))

	fetched, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveApproved, fetched.Status)
}

func TestLeaveRepo_UpdateStatus_NotFound(t *testing.T) {
	repo := NewSQLiteLeaveRepo(testutil.NewTestDB(t))

	err := repo.UpdateStatus(context.Background(), "nonexistent", domain.LeaveApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}
