package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PostgresBook is the production Book. Every transfer runs in a single
// REPEATABLE READ transaction that locks both account rows in sorted id
// order, so two transfers over the same pair cannot deadlock and the funds
// check sits behind the source account's row lock.
type PostgresBook struct {
	db *sql.DB
}

func NewPostgresBook(db *sql.DB) *PostgresBook {
	return &PostgresBook{db: db}
}

func (b *PostgresBook) Transfer(ctx context.Context, fromAccount, toAccount string, amount int64, idempotencyKey string) (Movement, error) {
	if amount <= 0 {
		return Movement{}, ErrInvalidAmount
	}

	tx, err := b.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return Movement{}, fmt.Errorf("begin transfer: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if idempotencyKey != "" {
		replayed, mv, err := b.claimKeyTx(ctx, tx, idempotencyKey, fromAccount, toAccount, amount)
		if err != nil {
			return Movement{}, err
		}
		if replayed {
			if err := tx.Commit(); err != nil {
				return Movement{}, fmt.Errorf("commit replay: %w", err)
			}
			return mv, nil
		}
	}

	// Lock both account rows, smallest id first. Sorted acquisition keeps
	// opposite-direction transfers over the same pair deadlock-free.
	ids := []string{fromAccount, toAccount}
	if ids[1] < ids[0] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	currencies := make(map[string]string, 2)
	for _, id := range ids {
		const q = `SELECT currency FROM accounts WHERE id = $1 FOR UPDATE`
		var currency string
		err := tx.QueryRowContext(ctx, q, id).Scan(&currency)
		if err == sql.ErrNoRows {
			return Movement{}, ErrAccountNotFound
		}
		if err != nil {
			return Movement{}, err
		}
		currencies[id] = currency
	}
	if currencies[fromAccount] != currencies[toAccount] {
		return Movement{}, ErrCurrencyMismatch
	}

	fromBefore, err := accountBalanceTx(ctx, tx, fromAccount)
	if err != nil {
		return Movement{}, err
	}
	if fromBefore < amount {
		return Movement{}, ErrInsufficientFunds
	}

	txID := uuid.NewString()
	const ins = `INSERT INTO ledger_entries (tx_id, account_id, direction, amount) VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, ins, txID, fromAccount, DirectionDebit, amount); err != nil {
		return Movement{}, err
	}
	if _, err := tx.ExecContext(ctx, ins, txID, toAccount, DirectionCredit, amount); err != nil {
		return Movement{}, err
	}

	if idempotencyKey != "" {
		const bind = `UPDATE idempotency_keys SET tx_id = $2 WHERE key = $1`
		if _, err := tx.ExecContext(ctx, bind, idempotencyKey, txID); err != nil {
			return Movement{}, err
		}
	}

	fromAfter, err := accountBalanceTx(ctx, tx, fromAccount)
	if err != nil {
		return Movement{}, err
	}
	toAfter, err := accountBalanceTx(ctx, tx, toAccount)
	if err != nil {
		return Movement{}, err
	}
	// Backstop for snapshots that missed a concurrent debit. Aborting here
	// keeps the committed book non-negative no matter how we got here.
	if fromAfter < 0 {
		return Movement{}, ErrInsufficientFunds
	}

	if err := tx.Commit(); err != nil {
		return Movement{}, fmt.Errorf("commit transfer: %w", err)
	}
	return Movement{
		TxID:             txID,
		FromAccount:      fromAccount,
		ToAccount:        toAccount,
		Amount:           amount,
		FromBalanceAfter: fromAfter,
		ToBalanceAfter:   toAfter,
	}, nil
}

// claimKeyTx claims idempotencyKey inside the transfer transaction. A key
// whose transfer already committed has tx_id bound; the recorded movement is
// rebuilt and returned with replayed=true. A fresh or still-unbound key is
// locked FOR UPDATE so a concurrent attempt with the same key serializes
// behind this transaction.
func (b *PostgresBook) claimKeyTx(ctx context.Context, tx *sql.Tx, key, fromAccount, toAccount string, amount int64) (bool, Movement, error) {
	const claim = `INSERT INTO idempotency_keys (key, status) VALUES ($1, 'IN_PROGRESS') ON CONFLICT (key) DO NOTHING`
	if _, err := tx.ExecContext(ctx, claim, key); err != nil {
		return false, Movement{}, err
	}

	const sel = `SELECT COALESCE(tx_id, '') FROM idempotency_keys WHERE key = $1 FOR UPDATE`
	var txID string
	err := tx.QueryRowContext(ctx, sel, key).Scan(&txID)
	if err == sql.ErrNoRows {
		// The row exists but was committed after our snapshot began. The
		// caller retries and lands on the replay path.
		return false, Movement{}, fmt.Errorf("idempotency key claimed concurrently")
	}
	if err != nil {
		return false, Movement{}, err
	}
	if txID == "" {
		return false, Movement{}, nil
	}

	mv, err := b.replayTx(ctx, tx, txID, fromAccount, toAccount, amount)
	if err != nil {
		return false, Movement{}, err
	}
	return true, mv, nil
}

// replayTx rebuilds the movement recorded under txID and verifies the request
// matches it. Post-balances are recomputed as of the recorded legs, so a
// replay reports the same numbers the original commit did even if later
// transfers moved the accounts.
func (b *PostgresBook) replayTx(ctx context.Context, tx *sql.Tx, txID, fromAccount, toAccount string, amount int64) (Movement, error) {
	const legs = `SELECT id, account_id, direction, amount FROM ledger_entries WHERE tx_id = $1 ORDER BY id`
	rows, err := tx.QueryContext(ctx, legs, txID)
	if err != nil {
		return Movement{}, err
	}
	defer rows.Close()

	var (
		maxID      int64
		debitAcct  string
		creditAcct string
		debitAmt   int64
		creditAmt  int64
		n          int
	)
	for rows.Next() {
		var (
			id   int64
			acct string
			dir  string
			amt  int64
		)
		if err := rows.Scan(&id, &acct, &dir, &amt); err != nil {
			return Movement{}, err
		}
		if id > maxID {
			maxID = id
		}
		switch dir {
		case DirectionDebit:
			debitAcct, debitAmt = acct, amt
		case DirectionCredit:
			creditAcct, creditAmt = acct, amt
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return Movement{}, err
	}
	if n != 2 {
		return Movement{}, fmt.Errorf("transaction %s has %d legs", txID, n)
	}
	if debitAcct != fromAccount || creditAcct != toAccount || debitAmt != amount || creditAmt != amount {
		return Movement{}, ErrIdempotencyMismatch
	}

	fromAfter, err := accountBalanceAsOfTx(ctx, tx, fromAccount, maxID)
	if err != nil {
		return Movement{}, err
	}
	toAfter, err := accountBalanceAsOfTx(ctx, tx, toAccount, maxID)
	if err != nil {
		return Movement{}, err
	}
	return Movement{
		TxID:             txID,
		FromAccount:      fromAccount,
		ToAccount:        toAccount,
		Amount:           amount,
		FromBalanceAfter: fromAfter,
		ToBalanceAfter:   toAfter,
		Replayed:         true,
	}, nil
}

func accountBalanceTx(ctx context.Context, tx *sql.Tx, accountID string) (int64, error) {
	const q = `
SELECT a.start_balance + COALESCE((
  SELECT SUM(CASE WHEN e.direction = 'CREDIT' THEN e.amount ELSE -e.amount END)
  FROM ledger_entries e
  WHERE e.account_id = a.id
), 0)
FROM accounts a
WHERE a.id = $1
`
	var balance int64
	err := tx.QueryRowContext(ctx, q, accountID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func accountBalanceAsOfTx(ctx context.Context, tx *sql.Tx, accountID string, maxEntryID int64) (int64, error) {
	const q = `
SELECT a.start_balance + COALESCE((
  SELECT SUM(CASE WHEN e.direction = 'CREDIT' THEN e.amount ELSE -e.amount END)
  FROM ledger_entries e
  WHERE e.account_id = a.id AND e.id <= $2
), 0)
FROM accounts a
WHERE a.id = $1
`
	var balance int64
	err := tx.QueryRowContext(ctx, q, accountID, maxEntryID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (b *PostgresBook) Balance(ctx context.Context, accountID string) (Balance, error) {
	const q = `
SELECT a.currency, a.start_balance + COALESCE((
  SELECT SUM(CASE WHEN e.direction = 'CREDIT' THEN e.amount ELSE -e.amount END)
  FROM ledger_entries e
  WHERE e.account_id = a.id
), 0)
FROM accounts a
WHERE a.id = $1
`
	var (
		currency string
		balance  int64
	)
	err := b.db.QueryRowContext(ctx, q, accountID).Scan(&currency, &balance)
	if err == sql.ErrNoRows {
		return Balance{AccountID: accountID, Balance: 0, Currency: DefaultCurrency}, nil
	}
	if err != nil {
		return Balance{}, err
	}
	return Balance{AccountID: accountID, Balance: balance, Currency: currency}, nil
}

func (b *PostgresBook) Entries(ctx context.Context) ([]Entry, error) {
	const q = `
SELECT d.tx_id, d.account_id, c.account_id, d.amount, a.currency, d.created_at
FROM ledger_entries d
JOIN ledger_entries c ON c.tx_id = d.tx_id AND c.direction = 'CREDIT'
JOIN accounts a ON a.id = d.account_id
WHERE d.direction = 'DEBIT'
ORDER BY d.id DESC
`
	rows, err := b.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.TxID, &e.FromAccount, &e.ToAccount, &e.Amount, &e.Currency, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
