package organizations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// accessDecider is the slice of Store the cache needs.
type accessDecider interface {
	HasAccess(ctx context.Context, orgID, userID uuid.UUID) (bool, error)
}

// AccessCache is a read-through Redis cache over the access-control
// predicate. Redis failures degrade to a direct store query; membership
// changes invalidate the affected entry.
type AccessCache struct {
	store  accessDecider
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewAccessCache creates an access cache with the given TTL.
func NewAccessCache(store accessDecider, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *AccessCache {
	return &AccessCache{store: store, rdb: rdb, ttl: ttl, logger: logger}
}

func accessKey(orgID, userID uuid.UUID) string {
	return fmt.Sprintf("org_access:%s:%s", orgID, userID)
}

// CanAccess reports whether the user may view or act on the organisation:
// creator or membership-edge holder. Results are cached for the TTL.
func (a *AccessCache) CanAccess(ctx context.Context, userID, orgID uuid.UUID) (bool, error) {
	key := accessKey(orgID, userID)
	if a.rdb != nil {
		val, err := a.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			return val == "1", nil
		case !errors.Is(err, redis.Nil):
			a.logger.Debug("access cache read failed", zap.Error(err))
		}
	}

	ok, err := a.store.HasAccess(ctx, orgID, userID)
	if err != nil {
		return false, err
	}

	if a.rdb != nil {
		val := "0"
		if ok {
			val = "1"
		}
		if err := a.rdb.Set(ctx, key, val, a.ttl).Err(); err != nil {
			a.logger.Debug("access cache write failed", zap.Error(err))
		}
	}
	return ok, nil
}

// Invalidate drops the cached decision for one (org, user) pair. Called when
// a membership edge is added so the grant is visible immediately.
func (a *AccessCache) Invalidate(ctx context.Context, orgID, userID uuid.UUID) {
	if a.rdb == nil {
		return
	}
	if err := a.rdb.Del(ctx, accessKey(orgID, userID)).Err(); err != nil {
		a.logger.Debug("access cache invalidate failed", zap.Error(err))
	}
}
