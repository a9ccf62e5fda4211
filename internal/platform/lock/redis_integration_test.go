package lock

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func openIntegrationRedis(t *testing.T) *redis.Client {
	t.Helper()
	rawURL := os.Getenv("EAS_TEST_REDIS_URL")
	if rawURL == "" {
		t.Skip("set EAS_TEST_REDIS_URL to run redis integration tests")
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return client
}

func TestRedisLockerAcquireConflictRelease(t *testing.T) {
	client := openIntegrationRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())
	ctx := context.Background()

	// Fresh ids per run so tests can share a server.
	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()

	lease, err := locker.Acquire(ctx, []string{b, a}, time.Minute)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if got := len(lease.Accounts()); got != 2 {
		t.Fatalf("lease covers %d accounts, want 2", got)
	}

	// Any overlap conflicts, and the failed attempt must roll back the ids
	// it had already taken.
	if _, err := locker.Acquire(ctx, []string{c, b}, time.Minute); !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("overlapping acquire err = %v, want ErrNotAcquired", err)
	}
	spare, err := locker.Acquire(ctx, []string{c}, time.Minute)
	if err != nil {
		t.Fatalf("rolled-back id still locked: %v", err)
	}
	locker.Release(ctx, spare)

	locker.Release(ctx, lease)
	again, err := locker.Acquire(ctx, []string{a, b}, time.Minute)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	locker.Release(ctx, again)
}

func TestRedisLockerDuplicateIdsLockOnce(t *testing.T) {
	client := openIntegrationRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())
	ctx := context.Background()
	id := uuid.NewString()

	lease, err := locker.Acquire(ctx, []string{id, id}, time.Minute)
	if err != nil {
		t.Fatalf("acquire with duplicate id: %v", err)
	}
	defer locker.Release(ctx, lease)
	if got := len(lease.Accounts()); got != 1 {
		t.Fatalf("lease covers %d accounts, want 1", got)
	}
}

func TestRedisLockerExpiryFreesTheLock(t *testing.T) {
	client := openIntegrationRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())
	ctx := context.Background()
	id := uuid.NewString()

	if _, err := locker.Acquire(ctx, []string{id}, 100*time.Millisecond); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	lease, err := locker.Acquire(ctx, []string{id}, time.Minute)
	if err != nil {
		t.Fatalf("acquire after expiry: %v", err)
	}
	locker.Release(ctx, lease)
}

func TestRedisLockerStaleReleaseKeepsNewHolder(t *testing.T) {
	client := openIntegrationRedis(t)
	locker := NewRedisLocker(client, zap.NewNop())
	ctx := context.Background()
	id := uuid.NewString()

	stale, err := locker.Acquire(ctx, []string{id}, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	current, err := locker.Acquire(ctx, []string{id}, time.Minute)
	if err != nil {
		t.Fatalf("acquire after expiry: %v", err)
	}
	defer locker.Release(context.Background(), current)

	// The expired lease carries a token that no longer matches; releasing it
	// must not free the new holder's lock.
	locker.Release(ctx, stale)
	if _, err := locker.Acquire(ctx, []string{id}, time.Minute); !errors.Is(err, ErrNotAcquired) {
		t.Fatalf("stale release freed a held lock: err = %v", err)
	}
}
