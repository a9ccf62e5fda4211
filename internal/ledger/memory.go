package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

// MemoryBook keeps the whole book under one mutex. It mirrors PostgresBook's
// observable behavior, including idempotent replay, and backs tests and local
// runs without a database.
type MemoryBook struct {
	clk clock.Clock

	mu       sync.Mutex
	accounts map[string]memoryAccount
	entries  []memoryEntry
	byKey    map[string]string
	nextID   int64
}

type memoryAccount struct {
	name         string
	currency     string
	startBalance int64
}

type memoryEntry struct {
	id        int64
	txID      string
	accountID string
	direction string
	amount    int64
	createdAt time.Time
}

func NewMemoryBook(clk clock.Clock) *MemoryBook {
	return &MemoryBook{
		clk:      clk,
		accounts: make(map[string]memoryAccount),
		byKey:    make(map[string]string),
	}
}

// AddAccount seeds one account. Accounts are created externally in
// production; tests call this directly.
func (b *MemoryBook) AddAccount(id, name, currency string, startBalance int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if currency == "" {
		currency = DefaultCurrency
	}
	b.accounts[id] = memoryAccount{name: name, currency: currency, startBalance: startBalance}
}

func (b *MemoryBook) Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, idempotencyKey string) (Movement, error) {
	if amount <= 0 {
		return Movement{}, ErrInvalidAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if idempotencyKey != "" {
		if txID, ok := b.byKey[idempotencyKey]; ok {
			return b.replayLocked(txID, fromAccount, toAccount, amount)
		}
	}

	from, ok := b.accounts[fromAccount]
	if !ok {
		return Movement{}, ErrAccountNotFound
	}
	to, ok := b.accounts[toAccount]
	if !ok {
		return Movement{}, ErrAccountNotFound
	}
	if from.currency != to.currency {
		return Movement{}, ErrCurrencyMismatch
	}
	if b.balanceLocked(fromAccount) < amount {
		return Movement{}, ErrInsufficientFunds
	}

	txID := uuid.NewString()
	now := b.clk.Now()
	for _, leg := range []struct {
		accountID string
		direction string
	}{
		{fromAccount, DirectionDebit},
		{toAccount, DirectionCredit},
	} {
		b.nextID++
		b.entries = append(b.entries, memoryEntry{
			id:        b.nextID,
			txID:      txID,
			accountID: leg.accountID,
			direction: leg.direction,
			amount:    amount,
			createdAt: now,
		})
	}
	if idempotencyKey != "" {
		b.byKey[idempotencyKey] = txID
	}

	return Movement{
		TxID:             txID,
		FromAccount:      fromAccount,
		ToAccount:        toAccount,
		Amount:           amount,
		FromBalanceAfter: b.balanceLocked(fromAccount),
		ToBalanceAfter:   b.balanceLocked(toAccount),
	}, nil
}

func (b *MemoryBook) replayLocked(txID, fromAccount, toAccount string, amount int64) (Movement, error) {
	var (
		maxID      int64
		debitAcct  string
		creditAcct string
		legAmount  int64
	)
	for _, e := range b.entries {
		if e.txID != txID {
			continue
		}
		if e.id > maxID {
			maxID = e.id
		}
		legAmount = e.amount
		if e.direction == DirectionDebit {
			debitAcct = e.accountID
		} else {
			creditAcct = e.accountID
		}
	}
	if debitAcct != fromAccount || creditAcct != toAccount || legAmount != amount {
		return Movement{}, ErrIdempotencyMismatch
	}
	return Movement{
		TxID:             txID,
		FromAccount:      fromAccount,
		ToAccount:        toAccount,
		Amount:           amount,
		FromBalanceAfter: b.balanceAsOfLocked(fromAccount, maxID),
		ToBalanceAfter:   b.balanceAsOfLocked(toAccount, maxID),
		Replayed:         true,
	}, nil
}

func (b *MemoryBook) balanceLocked(accountID string) int64 {
	return b.balanceAsOfLocked(accountID, b.nextID)
}

func (b *MemoryBook) balanceAsOfLocked(accountID string, maxEntryID int64) int64 {
	balance := b.accounts[accountID].startBalance
	for _, e := range b.entries {
		if e.accountID != accountID || e.id > maxEntryID {
			continue
		}
		if e.direction == DirectionCredit {
			balance += e.amount
		} else {
			balance -= e.amount
		}
	}
	return balance
}

func (b *MemoryBook) Balance(ctx context.Context, accountID string) (Balance, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[accountID]
	if !ok {
		return Balance{AccountID: accountID, Balance: 0, Currency: DefaultCurrency}, nil
	}
	return Balance{AccountID: accountID, Balance: b.balanceLocked(accountID), Currency: acct.currency}, nil
}

func (b *MemoryBook) Entries(ctx context.Context) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	credits := make(map[string]string, len(b.entries)/2)
	for _, e := range b.entries {
		if e.direction == DirectionCredit {
			credits[e.txID] = e.accountID
		}
	}

	out := make([]Entry, 0, len(b.entries)/2)
	for i := len(b.entries) - 1; i >= 0; i-- {
		e := b.entries[i]
		if e.direction != DirectionDebit {
			continue
		}
		out = append(out, Entry{
			TxID:        e.txID,
			FromAccount: e.accountID,
			ToAccount:   credits[e.txID],
			Amount:      e.amount,
			Currency:    b.accounts[e.accountID].currency,
			CreatedAt:   e.createdAt,
		})
	}
	return out, nil
}
