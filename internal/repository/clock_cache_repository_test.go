package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, ttl time.Duration) (*ClockCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewClockCacheRepository(rdb, ttl), mr
}

func TestClockCacheRepositoryMissAndHit(t *testing.T) {
	repo, mr := newTestRepository(t, 10*time.Minute)
	ctx := context.Background()

	data, ok, err := repo.Get(ctx, "clock:svg:a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	require.NoError(t, repo.Set(ctx, "clock:svg:a", []byte("<svg/>")))
	assert.Equal(t, 10*time.Minute, mr.TTL("clock:svg:a"))

	data, ok, err = repo.Get(ctx, "clock:svg:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("<svg/>"), data)
}

func TestClockCacheRepositoryExpiry(t *testing.T) {
	repo, mr := newTestRepository(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	mr.FastForward(2 * time.Minute)

	_, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClockCacheRepositoryErrors(t *testing.T) {
	repo, mr := newTestRepository(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	mr.SetError("ERR cache unavailable")
	_, ok, err := repo.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, repo.Set(ctx, "k", []byte("v")))
	assert.Error(t, repo.Ping(ctx))
}
