// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/repository"
	"codeberg.org/oliverandrich/tripwell/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecoveryRequest(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	expiresAt := time.Now().Add(15 * time.Minute)

	req, err := repo.CreateRecoveryRequest(ctx, user.ID, "123456", expiresAt)

	require.NoError(t, err)
	assert.NotZero(t, req.ID)
	assert.False(t, req.Used)

	stored, err := repo.GetRecoveryRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", stored.OTP)
	assert.False(t, stored.Used)
	assert.Nil(t, stored.UsedAt)
	assert.WithinDuration(t, expiresAt, stored.ExpiresAt, time.Second)
}

func TestActiveRecoveryRequest_PicksLatest(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	now := time.Now()

	first, err := repo.CreateRecoveryRequest(ctx, user.ID, "111111", now.Add(15*time.Minute))
	require.NoError(t, err)
	second, err := repo.CreateRecoveryRequest(ctx, user.ID, "222222", now.Add(15*time.Minute))
	require.NoError(t, err)

	active, err := repo.ActiveRecoveryRequest(ctx, user.ID, now)

	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.NotEqual(t, first.ID, active.ID)
}

func TestActiveRecoveryRequest_SkipsExpired(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	now := time.Now()

	_, err := repo.CreateRecoveryRequest(ctx, user.ID, "111111", now.Add(-time.Minute))
	require.NoError(t, err)

	_, err = repo.ActiveRecoveryRequest(ctx, user.ID, now)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActiveRecoveryRequest_SkipsUsed(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	now := time.Now()

	req, err := repo.CreateRecoveryRequest(ctx, user.ID, "111111", now.Add(15*time.Minute))
	require.NoError(t, err)

	consumed, err := repo.ConsumeRecoveryRequestAndSetPassword(ctx, req.ID, user.ID, "hash")
	require.NoError(t, err)
	require.True(t, consumed)

	_, err = repo.ActiveRecoveryRequest(ctx, user.ID, now)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActiveRecoveryRequest_NoRows(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")

	_, err := repo.ActiveRecoveryRequest(ctx, user.ID, time.Now())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConsumeRecoveryRequestAndSetPassword(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	req, err := repo.CreateRecoveryRequest(ctx, user.ID, "123456", time.Now().Add(15*time.Minute))
	require.NoError(t, err)

	consumed, err := repo.ConsumeRecoveryRequestAndSetPassword(ctx, req.ID, user.ID, "new-hash")

	require.NoError(t, err)
	assert.True(t, consumed)

	stored, err := repo.GetRecoveryRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, stored.Used)
	assert.NotNil(t, stored.UsedAt)

	updated, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
}

func TestConsumeRecoveryRequestAndSetPassword_AlreadyUsed(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	req, err := repo.CreateRecoveryRequest(ctx, user.ID, "123456", time.Now().Add(15*time.Minute))
	require.NoError(t, err)

	consumed, err := repo.ConsumeRecoveryRequestAndSetPassword(ctx, req.ID, user.ID, "first-hash")
	require.NoError(t, err)
	require.True(t, consumed)

	// The second attempt loses the conditional update and must not
	// touch the password.
	consumed, err = repo.ConsumeRecoveryRequestAndSetPassword(ctx, req.ID, user.ID, "second-hash")
	require.NoError(t, err)
	assert.False(t, consumed)

	updated, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "first-hash", updated.PasswordHash)
}

func TestConsumeRecoveryRequestAndSetPassword_Concurrent(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")
	req, err := repo.CreateRecoveryRequest(ctx, user.ID, "123456", time.Now().Add(15*time.Minute))
	require.NoError(t, err)

	const attempts = 8
	results := make([]bool, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			consumed, err := repo.ConsumeRecoveryRequestAndSetPassword(ctx, req.ID, user.ID, "hash")
			assert.NoError(t, err)
			results[i] = consumed
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, ok := range results {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestCountRecoveryRequests(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "anna@example.com")

	count, err := repo.CountRecoveryRequests(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.CreateRecoveryRequest(ctx, user.ID, "111111", time.Now().Add(15*time.Minute))
	require.NoError(t, err)
	_, err = repo.CreateRecoveryRequest(ctx, user.ID, "222222", time.Now().Add(15*time.Minute))
	require.NoError(t, err)

	count, err = repo.CountRecoveryRequests(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
