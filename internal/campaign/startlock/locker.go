package startlock

import (
	"campaign-server/internal/observability"
	"context"
	"fmt"
	"time"
)

const keyPrefix = "campaign-start:customer:"

// LockClient is the distributed lock primitive backing the locker
type LockClient interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	ReleaseLock(ctx context.Context, key, token string) error
	IsEnabled() bool
}

// Locker serializes campaign starts per customer. With a nil or disabled
// client every acquisition succeeds and relies on the database lock rows alone.
type Locker struct {
	client LockClient
	ttl    time.Duration
	logger *observability.Logger
}

func New(client LockClient, ttl time.Duration, logger *observability.Logger) *Locker {
	return &Locker{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Acquire takes the start lock of a customer. The returned release func is
// always non-nil and safe to call when acquired is false.
func (l *Locker) Acquire(ctx context.Context, customerID int64) (release func(), acquired bool, err error) {
	noop := func() {}
	if l == nil || l.client == nil || !l.client.IsEnabled() {
		return noop, true, nil
	}

	key := Key(customerID)
	token, acquired, err := l.client.AcquireLock(ctx, key, l.ttl)
	if err != nil {
		l.logger.Error(ctx, "failed to acquire campaign start lock", err)
		return noop, false, fmt.Errorf("failed to acquire campaign start lock: %w", err)
	}
	if !acquired {
		return noop, false, nil
	}

	return func() {
		// The request context may already be cancelled when the release runs.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		if err := l.client.ReleaseLock(releaseCtx, key, token); err != nil {
			l.logger.Error(releaseCtx, "failed to release campaign start lock", err)
		}
	}, true, nil
}

// Key returns the lock key of a customer
func Key(customerID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, customerID)
}
