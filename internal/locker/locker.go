// Package locker serialises work on a single key, such as accepting one placed bid.
package locker

import (
	"context"
	"fmt"
	"sync"

	"marketplace-bidding/internal/biddingerrors"
)

// Locker grants exclusive access to a key until the returned release is called.
// Acquire fails with ErrAcceptanceInProgress when the key cannot be obtained in time.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MemoryLocker is a process-local Locker; waiters block until the holder releases
// or their context ends
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{} // key: lock key, closed on release
}

// NewMemoryLocker creates an empty MemoryLocker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]chan struct{})}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	for {
		l.mu.Lock()
		held, busy := l.locks[key]
		if !busy {
			done := make(chan struct{})
			l.locks[key] = done
			l.mu.Unlock()
			return l.releaser(key, done), nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("lock %s: %w: %v", key, biddingerrors.ErrAcceptanceInProgress, ctx.Err())
		case <-held:
		}
	}
}

func (l *MemoryLocker) releaser(key string, done chan struct{}) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.locks, key)
			l.mu.Unlock()
			close(done)
		})
	}
}
