package locker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-bidding/internal/biddingerrors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMemoryLocker_SerialisesSameKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewMemoryLocker()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		inside  int32
		maxSeen int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(ctx, "placed-bid-1")
			require.NoError(t, err)
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				seen := atomic.LoadInt32(&maxSeen)
				if n <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), maxSeen, "only one holder at a time")
}

func TestMemoryLocker_IndependentKeys(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewMemoryLocker()
	ctx := context.Background()

	releaseA, err := l.Acquire(ctx, "a")
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := l.Acquire(ctx, "b")
	require.NoError(t, err)
	releaseB()
}

func TestMemoryLocker_ContextCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewMemoryLocker()
	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, "k")
	require.True(t, errors.Is(err, biddingerrors.ErrAcceptanceInProgress), "got: %v", err)

	release()
	release() // second call is a no-op

	again, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	again()
}

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	client, mr := setupRedis(t)
	l := NewRedisLocker(client, RedisOptions{KeyPrefix: "lock:", Tries: 1})
	ctx := context.Background()

	release, err := l.Acquire(ctx, "placed-bid-1")
	require.NoError(t, err)
	require.True(t, mr.Exists("lock:placed-bid-1"))

	release()
	require.False(t, mr.Exists("lock:placed-bid-1"))
}

func TestRedisLocker_Contention(t *testing.T) {
	client, _ := setupRedis(t)
	l := NewRedisLocker(client, RedisOptions{KeyPrefix: "lock:", Tries: 2, RetryDelay: 10 * time.Millisecond})
	ctx := context.Background()

	release, err := l.Acquire(ctx, "placed-bid-1")
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "placed-bid-1")
	require.True(t, errors.Is(err, biddingerrors.ErrAcceptanceInProgress), "got: %v", err)

	release()

	release, err = l.Acquire(ctx, "placed-bid-1")
	require.NoError(t, err)
	release()
}

func TestRedisLocker_Expiry(t *testing.T) {
	client, mr := setupRedis(t)
	l := NewRedisLocker(client, RedisOptions{Expiry: time.Second, Tries: 1, RenewInterval: time.Hour})
	ctx := context.Background()

	_, err := l.Acquire(ctx, "abandoned")
	require.NoError(t, err)

	// a crashed holder's lock frees itself once it expires
	mr.FastForward(2 * time.Second)

	release, err := l.Acquire(ctx, "abandoned")
	require.NoError(t, err)
	release()
}

func TestRedisLocker_ServerDown(t *testing.T) {
	client, mr := setupRedis(t)
	l := NewRedisLocker(client, RedisOptions{Tries: 1})
	mr.Close()

	_, err := l.Acquire(context.Background(), "k")
	require.Error(t, err)
	require.False(t, errors.Is(err, biddingerrors.ErrAcceptanceInProgress), "connection failures are not contention")
}

func TestRedisLocker_RenewsWhileHeld(t *testing.T) {
	client, mr := setupRedis(t)
	l := NewRedisLocker(client, RedisOptions{
		KeyPrefix:     "lock:",
		Expiry:        time.Second,
		Tries:         1,
		RenewInterval: 20 * time.Millisecond,
	})
	ctx := context.Background()

	release, err := l.Acquire(ctx, "slow-handshake")
	require.NoError(t, err)

	// without renewal the key would be gone after this
	mr.FastForward(900 * time.Millisecond)
	require.Eventually(t, func() bool {
		return mr.TTL("lock:slow-handshake") > 500*time.Millisecond
	}, time.Second, 10*time.Millisecond, "held lock is extended")

	mr.FastForward(900 * time.Millisecond)
	require.True(t, mr.Exists("lock:slow-handshake"))

	_, err = l.Acquire(ctx, "slow-handshake")
	require.True(t, errors.Is(err, biddingerrors.ErrAcceptanceInProgress), "got: %v", err)

	release()
	require.False(t, mr.Exists("lock:slow-handshake"))
}
