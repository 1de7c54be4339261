// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/carbon-tracker/backend/internal/application/adapter"
)

const targetLockKeyPrefix = "replan:lock:"

// redisTargetLock implements adapter.TargetLock on Redis SET NX with a TTL.
// The TTL bounds how long a crashed holder can block other replans.
type redisTargetLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTargetLock creates a new Redis-backed target lock.
func NewRedisTargetLock(client *redis.Client, ttl time.Duration) adapter.TargetLock {
	return &redisTargetLock{
		client: client,
		ttl:    ttl,
	}
}

// Acquire attempts to take the lock for a target. Returns false without error
// when another holder has it.
func (l *redisTargetLock) Acquire(ctx context.Context, targetID uuid.UUID) (bool, error) {
	return l.client.SetNX(ctx, targetLockKeyPrefix+targetID.String(), "1", l.ttl).Result()
}

// Release frees the lock for a target. Releasing an unheld lock is a no-op.
func (l *redisTargetLock) Release(ctx context.Context, targetID uuid.UUID) error {
	return l.client.Del(ctx, targetLockKeyPrefix+targetID.String()).Err()
}
