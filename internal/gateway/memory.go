package gateway

import (
	"context"
	"sync"

	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

// MemoryStore mirrors PostgresStore for tests and database-free local runs.
type MemoryStore struct {
	clk clock.Clock

	mu            sync.Mutex
	accounts      map[string]Account
	accountOrder  []string
	keys          map[string]IdempotencyRecord
	keyOrder      []string
	notifications []Notification
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clk:      clk,
		accounts: make(map[string]Account),
		keys:     make(map[string]IdempotencyRecord),
	}
}

// AddAccount seeds one account; production accounts come from the seeder.
func (s *MemoryStore) AddAccount(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.clk.Now()
	}
	if _, ok := s.accounts[a.ID]; !ok {
		s.accountOrder = append(s.accountOrder, a.ID)
	}
	s.accounts[a.ID] = a
}

func (s *MemoryStore) GetIdempotency(ctx context.Context, key string) (IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.keys[key]
	if !ok {
		return IdempotencyRecord{}, false, nil
	}
	rec.Response = append([]byte(nil), rec.Response...)
	return rec, true, nil
}

func (s *MemoryStore) AdmitIdempotency(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[key]; ok {
		return nil
	}
	s.keys[key] = IdempotencyRecord{Key: key, Status: StatusInProgress, CreatedAt: s.clk.Now()}
	s.keyOrder = append(s.keyOrder, key)
	return nil
}

func (s *MemoryStore) FinalizeIdempotency(ctx context.Context, key, status, txID string, response []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.keys[key]
	if !ok {
		rec = IdempotencyRecord{Key: key, CreatedAt: s.clk.Now()}
		s.keyOrder = append(s.keyOrder, key)
	}
	rec.Status = status
	rec.TxID = txID
	rec.Response = append([]byte(nil), response...)
	s.keys[key] = rec
	return nil
}

func (s *MemoryStore) AccountExists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.accounts[id]
	return ok, nil
}

func (s *MemoryStore) InsertNotification(ctx context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *MemoryStore) ListAccounts(ctx context.Context) ([]Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		out = append(out, s.accounts[id])
	}
	return out, nil
}

func (s *MemoryStore) ListIdempotencyKeys(ctx context.Context) ([]IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]IdempotencyRecord, 0, len(s.keyOrder))
	for i := len(s.keyOrder) - 1; i >= 0; i-- {
		rec := s.keys[s.keyOrder[i]]
		rec.Response = append([]byte(nil), rec.Response...)
		out = append(out, rec)
	}
	return out, nil
}

func (s *MemoryStore) ListNotifications(ctx context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, 0, len(s.notifications))
	for i := len(s.notifications) - 1; i >= 0; i-- {
		out = append(out, s.notifications[i])
	}
	return out, nil
}
