package lock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

type memoryLock struct {
	token   string
	expires time.Time
}

// MemoryLocker is a process-local Locker used in tests and single-node
// development runs. TTL expiry follows the injected clock.
type MemoryLocker struct {
	clk clock.Clock

	mu   sync.Mutex
	held map[string]memoryLock
}

func NewMemoryLocker(clk clock.Clock) *MemoryLocker {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &MemoryLocker{clk: clk, held: make(map[string]memoryLock)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, accounts []string, ttl time.Duration) (*Lease, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	ids := append([]string(nil), accounts...)
	sort.Strings(ids)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clk.Now()
	lease := &Lease{tokens: make(map[string]string, len(ids))}
	for _, id := range ids {
		if _, ours := lease.tokens[id]; ours {
			continue
		}
		if cur, ok := l.held[id]; ok && now.Before(cur.expires) {
			for taken := range lease.tokens {
				delete(l.held, taken)
			}
			return nil, fmt.Errorf("%w: %s", ErrNotAcquired, id)
		}
		token := uuid.NewString()
		l.held[id] = memoryLock{token: token, expires: now.Add(ttl)}
		lease.tokens[id] = token
	}
	return lease, nil
}

func (l *MemoryLocker) Release(ctx context.Context, lease *Lease) {
	if lease == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, token := range lease.tokens {
		if cur, ok := l.held[id]; ok && cur.token == token {
			delete(l.held, id)
		}
	}
	lease.tokens = map[string]string{}
}

// Held reports whether an unexpired lock exists for the account.
func (l *MemoryLocker) Held(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.held[id]
	return ok && l.clk.Now().Before(cur.expires)
}
