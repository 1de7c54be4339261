// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TargetLock serializes destructive rewrites per target across processes.
// The store's transaction isolates a single replan; the lock makes two
// concurrent replans against the same target fail fast instead of racing.
type TargetLock interface {
	// Acquire attempts to take the lock for a target. Returns false without
	// error when another holder has it.
	Acquire(ctx context.Context, targetID uuid.UUID) (bool, error)

	// Release frees the lock for a target. Releasing an unheld lock is a no-op.
	Release(ctx context.Context, targetID uuid.UUID) error
}
