package organizations

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDecider struct {
	allow map[string]bool
	calls int
}

func deciderKey(orgID, userID uuid.UUID) string {
	return fmt.Sprintf("%s|%s", orgID, userID)
}

func (f *fakeDecider) HasAccess(_ context.Context, orgID, userID uuid.UUID) (bool, error) {
	f.calls++
	return f.allow[deciderKey(orgID, userID)], nil
}

func newCacheFixture(t *testing.T) (*fakeDecider, *AccessCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	decider := &fakeDecider{allow: make(map[string]bool)}
	cache := NewAccessCache(decider, rdb, time.Minute, zap.NewNop())
	return decider, cache, mr
}

func TestAccessCacheReadThrough(t *testing.T) {
	decider, cache, _ := newCacheFixture(t)
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()
	decider.allow[deciderKey(orgID, userID)] = true

	ok, err := cache.CanAccess(ctx, userID, orgID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, decider.calls)

	// Second lookup is served from the cache.
	ok, err = cache.CanAccess(ctx, userID, orgID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, decider.calls)
}

func TestAccessCacheCachesDenials(t *testing.T) {
	decider, cache, _ := newCacheFixture(t)
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()

	for i := 0; i < 2; i++ {
		ok, err := cache.CanAccess(ctx, userID, orgID)
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, 1, decider.calls)
}

func TestAccessCacheInvalidate(t *testing.T) {
	decider, cache, _ := newCacheFixture(t)
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()

	ok, err := cache.CanAccess(ctx, userID, orgID)
	require.NoError(t, err)
	require.False(t, ok)

	// Grant access, then invalidate so the change is visible immediately.
	decider.allow[deciderKey(orgID, userID)] = true
	cache.Invalidate(ctx, orgID, userID)

	ok, err = cache.CanAccess(ctx, userID, orgID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, decider.calls)
}

func TestAccessCacheFallsBackWhenRedisDown(t *testing.T) {
	decider, cache, mr := newCacheFixture(t)
	ctx := context.Background()
	orgID, userID := uuid.New(), uuid.New()
	decider.allow[deciderKey(orgID, userID)] = true

	mr.Close()

	for i := 0; i < 2; i++ {
		ok, err := cache.CanAccess(ctx, userID, orgID)
		require.NoError(t, err)
		require.True(t, ok)
	}
	// No cache available, so every call hits the store.
	require.Equal(t, 2, decider.calls)
}
