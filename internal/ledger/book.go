// Package ledger implements the double-entry book and its gRPC surface.
//
// Every transfer is one transaction id materialized as exactly two rows, a
// DEBIT against the source account and a CREDIT against the destination, with
// equal amounts. Balances are never stored; they are derived from the start
// balance plus the signed sum of an account's entries.
package ledger

import (
	"context"
	"errors"
	"time"
)

// Entry directions.
const (
	DirectionDebit  = "DEBIT"
	DirectionCredit = "CREDIT"
)

// Transfer statuses on the wire.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// DefaultCurrency is reported for unknown accounts and substituted for empty
// request currencies. Preserved for compatibility with existing clients.
const DefaultCurrency = "INR"

// Domain failures. They are deterministic outcomes of a transfer attempt and
// surface as FAILED responses over a successful RPC, never as RPC errors.
var (
	ErrInvalidAmount     = errors.New("transfer amount must be positive")
	ErrAccountNotFound   = errors.New("account not found")
	ErrCurrencyMismatch  = errors.New("account currencies differ")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ErrIdempotencyMismatch reports a reused idempotency key whose recorded
// transfer does not match the request's accounts or amount.
var ErrIdempotencyMismatch = errors.New("idempotency key reused with different arguments")

// failureMessage maps a domain failure to its wire diagnostic.
func failureMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "Amount must be > 0", true
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found", true
	case errors.Is(err, ErrCurrencyMismatch):
		return "Currency mismatch", true
	case errors.Is(err, ErrInsufficientFunds):
		return "Insufficient funds", true
	}
	return "", false
}

// A Movement is one committed transfer.
type Movement struct {
	TxID             string
	FromAccount      string
	ToAccount        string
	Amount           int64
	FromBalanceAfter int64
	ToBalanceAfter   int64

	// Replayed is set when the idempotency key had already committed and the
	// recorded movement was returned instead of executing a new one.
	Replayed bool
}

// A Balance is the derived position of one account.
type Balance struct {
	AccountID string
	Balance   int64
	Currency  string
}

// An Entry is one committed transaction joined across its two legs.
type Entry struct {
	TxID        string
	FromAccount string
	ToAccount   string
	Amount      int64
	Currency    string
	CreatedAt   time.Time
}

// Book is the transactional store behind the service. Implementations must
// make Transfer atomic: either both legs commit or neither does, and a
// concurrent transfer from the same source cannot pass the funds check when
// the combined result would go negative.
type Book interface {
	// Transfer moves amount from one account to the other. A non-empty
	// idempotencyKey is claimed inside the same transaction; if the key's
	// transfer already committed, the recorded movement is returned with
	// Replayed set and no new rows are written.
	Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, idempotencyKey string) (Movement, error)

	// Balance derives the account's position. Unknown accounts yield a zero
	// balance with DefaultCurrency.
	Balance(ctx context.Context, accountID string) (Balance, error)

	// Entries lists committed transactions, newest first.
	Entries(ctx context.Context) ([]Entry, error)
}
