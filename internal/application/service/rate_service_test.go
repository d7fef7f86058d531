package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentRateFallsBackWhenNoVersionExists(t *testing.T) {
	env := newTestEnv(t)

	current, err := env.rate.CurrentRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testFallbackRate, current.Rate)
}

func TestCurrentRateIgnoresFutureVersions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.rate.SetRate(ctx, 2800, timeAgo(2*time.Hour), env.userID)
	require.NoError(t, err)
	_, err = env.rate.SetRate(ctx, 2900, timeAgo(time.Hour), env.userID)
	require.NoError(t, err)
	// Scheduled for tomorrow, must not apply yet.
	_, err = env.rate.SetRate(ctx, 3100, time.Now().Add(24*time.Hour), env.userID)
	require.NoError(t, err)

	current, err := env.rate.CurrentRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2900.0, current.Rate)
}

func TestSetRateInvalidatesCachedCurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.rate.SetRate(ctx, 2800, timeAgo(time.Hour), env.userID)
	require.NoError(t, err)

	current, err := env.rate.CurrentRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2800.0, current.Rate)

	// The cache is warm now; a new version must still win immediately.
	_, err = env.rate.SetRate(ctx, 2950, timeAgo(time.Minute), env.userID)
	require.NoError(t, err)

	current, err = env.rate.CurrentRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2950.0, current.Rate)
}

func TestSetRateRejectsNonPositiveRate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.rate.SetRate(context.Background(), 0, time.Now(), env.userID)
	require.Error(t, err)
	_, err = env.rate.SetRate(context.Background(), -10, time.Now(), env.userID)
	require.Error(t, err)
}
