// Package lock provides TTL-bounded, token-guarded locks keyed by account id.
//
// The locks are advisory: they narrow the window in which two transfers
// touching the same account can reach the ledger concurrently. Money-movement
// correctness does not depend on them; the ledger's database transaction is
// the authority.
package lock

import (
	"errors"
	"time"
)

// DefaultTTL bounds how long a dead holder can park a lock.
const DefaultTTL = 10 * time.Second

// ErrNotAcquired reports that at least one requested lock was already held.
// Any locks taken earlier in the same call have been released.
var ErrNotAcquired = errors.New("account lock not acquired")

// A Lease holds the tokens for one acquisition. Release deletes a lock only
// while it still stores the lease's token, so a lease that outlived its TTL
// cannot free a lock someone else now holds.
type Lease struct {
	tokens map[string]string
}

// Accounts returns the locked account ids in unspecified order.
func (l *Lease) Accounts() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, 0, len(l.tokens))
	for id := range l.tokens {
		ids = append(ids, id)
	}
	return ids
}
