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

func TestProfileRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "w1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := domain.DefaultProfile("w1")
	p.DisplayName = "Somsak"
	p.Email = "somsak@example.com"
	p.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err := repo.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Somsak", fetched.DisplayName)
	assert.True(t, fetched.EmailNotifications)
	assert.False(t, fetched.AutoCheckout)
}

func TestProfileRepo_UpsertOverwrites(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := domain.DefaultProfile("w1")
	p.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, p))

	p.PushNotifications = false
	p.BreakReminder = true
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err := repo.Get(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, fetched.PushNotifications)
	assert.True(t, fetched.BreakReminder)
}
