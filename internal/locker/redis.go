package locker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	"marketplace-bidding/utils"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisOptions tunes the distributed mutex. A held lock is extended every
// RenewInterval (Expiry/3 by default), so Expiry only bounds how long the lock
// outlives a holder that died.
type RedisOptions struct {
	KeyPrefix     string
	Expiry        time.Duration
	Tries         int
	RetryDelay    time.Duration
	RenewInterval time.Duration
}

// RedisLocker is a Locker shared by every instance talking to the same Redis
type RedisLocker struct {
	rs      *redsync.Redsync
	options RedisOptions
}

// NewRedisLocker builds a redsync pool on client
func NewRedisLocker(client *redis.Client, opts RedisOptions) *RedisLocker {
	if opts.Expiry <= 0 {
		opts.Expiry = 8 * time.Second
	}
	if opts.Tries <= 0 {
		opts.Tries = 32
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 100 * time.Millisecond
	}
	if opts.RenewInterval <= 0 {
		opts.RenewInterval = opts.Expiry / 3
	}
	return &RedisLocker{
		rs:      redsync.New(goredis.NewPool(client)),
		options: opts,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	name := l.options.KeyPrefix + key
	mutex := l.rs.NewMutex(
		name,
		redsync.WithExpiry(l.options.Expiry),
		redsync.WithTries(l.options.Tries),
		redsync.WithRetryDelay(l.options.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		var commErr *redsync.RedisError
		if errors.As(err, &commErr) {
			return nil, fmt.Errorf("lock %s: %w", name, err)
		}
		return nil, fmt.Errorf("lock %s: %w: %v", name, biddingerrors.ErrAcceptanceInProgress, err)
	}

	renewCtx, stopRenew := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.renew(renewCtx, mutex)
	}()

	return func() {
		stopRenew()
		wg.Wait()

		// the caller's context may already be cancelled; the lock must still go
		if ok, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil || !ok {
			utils.Warn("Failed to release lock", map[string]any{
				"lock":  name,
				"error": fmt.Sprint(err),
			})
		}
	}, nil
}

// renew extends mutex until ctx is done or an extension fails
func (l *RedisLocker) renew(ctx context.Context, mutex *redsync.Mutex) {
	ticker := time.NewTicker(l.options.RenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ok, err := mutex.ExtendContext(ctx); err != nil || !ok {
				if ctx.Err() != nil {
					return
				}
				utils.Warn("Failed to extend lock", map[string]any{
					"lock":  mutex.Name(),
					"error": fmt.Sprint(err),
				})
				return
			}
		}
	}
}
