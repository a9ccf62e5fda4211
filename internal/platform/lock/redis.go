package lock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "acctlock:"

// releaseScript deletes a lock key only while it still stores our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`)

// RedisLocker takes account locks on a Redis-compatible server using
// set-if-not-exists with a TTL.
type RedisLocker struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisLocker(client *redis.Client, log *zap.Logger) *RedisLocker {
	return &RedisLocker{client: client, log: log}
}

// Acquire locks every id in accounts or none of them. Ids are locked in
// lexicographic order; two callers locking the same pair in opposite
// directions therefore cannot deadlock.
func (l *RedisLocker) Acquire(ctx context.Context, accounts []string, ttl time.Duration) (*Lease, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ids := append([]string(nil), accounts...)
	sort.Strings(ids)

	lease := &Lease{tokens: make(map[string]string, len(ids))}
	for _, id := range ids {
		if _, held := lease.tokens[id]; held {
			continue
		}
		token := uuid.NewString()
		ok, err := l.client.SetNX(ctx, keyPrefix+id, token, ttl).Result()
		if err != nil {
			l.Release(ctx, lease)
			return nil, fmt.Errorf("lock %s: %w", id, err)
		}
		if !ok {
			l.Release(ctx, lease)
			return nil, fmt.Errorf("%w: %s", ErrNotAcquired, id)
		}
		lease.tokens[id] = token
	}
	return lease, nil
}

// Release frees every lock in the lease that still carries our token. It
// detaches from the caller's cancellation so locks are freed even when the
// request that took them has timed out.
func (l *RedisLocker) Release(ctx context.Context, lease *Lease) {
	if lease == nil || len(lease.tokens) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	for id, token := range lease.tokens {
		err := releaseScript.Run(ctx, l.client, []string{keyPrefix + id}, token).Err()
		if err != nil && !errors.Is(err, redis.Nil) {
			l.log.Warn("account lock release failed",
				zap.String("account_id", id), zap.Error(err))
		}
	}
	lease.tokens = map[string]string{}
}
