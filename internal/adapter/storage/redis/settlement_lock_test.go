package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementLock_AcquireRelease(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSettlementLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "order:21", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = lock.Acquire(ctx, "order:21", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must wait")

	require.NoError(t, lock.Release(ctx, "order:21"))

	ok, err = lock.Acquire(ctx, "order:21", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "lock is free after release")
}

func TestSettlementLock_IndependentOrders(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSettlementLock(client)
	ctx := context.Background()

	ok1, err := lock.Acquire(ctx, "order:1", time.Minute)
	require.NoError(t, err)
	ok2, err := lock.Acquire(ctx, "order:2", time.Minute)
	require.NoError(t, err)

	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestSettlementLock_ExpiresAfterTTL(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewSettlementLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "order:9", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = lock.Acquire(ctx, "order:9", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "abandoned lock should expire")
}
