// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestLockClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestRedisTargetLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire and release", func(t *testing.T) {
		_, client := newTestLockClient(t)
		lock := NewRedisTargetLock(client, time.Minute)
		targetID := uuid.New()

		acquired, err := lock.Acquire(ctx, targetID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acquired {
			t.Fatal("expected the lock to be acquired")
		}

		if err := lock.Release(ctx, targetID); err != nil {
			t.Fatalf("unexpected error on release: %v", err)
		}

		acquired, err = lock.Acquire(ctx, targetID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acquired {
			t.Fatal("expected the lock reacquirable after release")
		}
	})

	t.Run("second acquire fails without error while held", func(t *testing.T) {
		_, client := newTestLockClient(t)
		lock := NewRedisTargetLock(client, time.Minute)
		targetID := uuid.New()

		if acquired, _ := lock.Acquire(ctx, targetID); !acquired {
			t.Fatal("expected the first acquire to succeed")
		}

		acquired, err := lock.Acquire(ctx, targetID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acquired {
			t.Fatal("expected the second acquire to fail while held")
		}
	})

	t.Run("locks are per target", func(t *testing.T) {
		_, client := newTestLockClient(t)
		lock := NewRedisTargetLock(client, time.Minute)

		if acquired, _ := lock.Acquire(ctx, uuid.New()); !acquired {
			t.Fatal("expected the first target's lock")
		}
		if acquired, _ := lock.Acquire(ctx, uuid.New()); !acquired {
			t.Fatal("expected an unrelated target's lock to be free")
		}
	})

	t.Run("lock expires after its TTL", func(t *testing.T) {
		server, client := newTestLockClient(t)
		lock := NewRedisTargetLock(client, 30*time.Second)
		targetID := uuid.New()

		if acquired, _ := lock.Acquire(ctx, targetID); !acquired {
			t.Fatal("expected the lock to be acquired")
		}

		// A crashed holder never releases; the TTL frees the lock.
		server.FastForward(31 * time.Second)

		acquired, err := lock.Acquire(ctx, targetID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acquired {
			t.Fatal("expected the lock free after TTL expiry")
		}
	})

	t.Run("releasing an unheld lock is a no-op", func(t *testing.T) {
		_, client := newTestLockClient(t)
		lock := NewRedisTargetLock(client, time.Minute)

		if err := lock.Release(ctx, uuid.New()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
