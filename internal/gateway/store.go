package gateway

import (
	"context"
	"time"
)

// Idempotency statuses persisted with each key.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusSuccess    = "SUCCESS"
	StatusFailed     = "FAILED"
)

// An IdempotencyRecord is one admission row. Response holds the exact bytes
// served for the key once it reached a terminal status; replays must write
// them back unchanged.
type IdempotencyRecord struct {
	Key       string
	TxID      string
	Status    string
	Response  []byte
	CreatedAt time.Time
}

type Account struct {
	ID           string
	Name         string
	Currency     string
	StartBalance int64
	CreatedAt    time.Time
}

type Notification struct {
	ID        string
	AccountID string
	TxID      string
	Direction string
	Amount    int64
	Currency  string
	Message   string
	CreatedAt time.Time
}

// Store is the gateway's slice of the shared database: idempotency admission
// and finalization, account existence, the notification table, and the read
// endpoints.
type Store interface {
	GetIdempotency(ctx context.Context, key string) (IdempotencyRecord, bool, error)

	// AdmitIdempotency inserts an IN_PROGRESS row for key. A pre-existing row
	// is a normal outcome and is left untouched.
	AdmitIdempotency(ctx context.Context, key string) error

	// FinalizeIdempotency records the terminal status and the response bytes
	// every future replay of key serves.
	FinalizeIdempotency(ctx context.Context, key, status, txID string, response []byte) error

	AccountExists(ctx context.Context, id string) (bool, error)
	InsertNotification(ctx context.Context, n Notification) error

	ListAccounts(ctx context.Context) ([]Account, error)
	ListIdempotencyKeys(ctx context.Context) ([]IdempotencyRecord, error)
	ListNotifications(ctx context.Context) ([]Notification, error)
}
