package service

import (
	"context"
	"testing"

	"github.com/sirapatk/clockwise/internal/repository"
	"github.com/sirapatk/clockwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_DefaultsForNewWorker(t *testing.T) {
	svc := NewProfileService(repository.NewSQLiteProfileRepo(testutil.NewTestDB(t)))

	p, err := svc.Get(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", p.WorkerID)
	assert.True(t, p.EmailNotifications)
	assert.False(t, p.AutoCheckout)
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	svc := NewProfileService(repository.NewSQLiteProfileRepo(testutil.NewTestDB(t)))
	ctx := context.Background()

	p, err := svc.Get(ctx, "w1")
	require.NoError(t, err)
	p.DisplayName = "Somsak"
	p.PushNotifications = false
	p.BreakReminder = true
	require.NoError(t, svc.Update(ctx, p))

	stored, err := svc.Get(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Somsak", stored.DisplayName)
	assert.False(t, stored.PushNotifications)
	assert.True(t, stored.BreakReminder)
	assert.False(t, stored.UpdatedAt.IsZero())
}
