package gateway

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresStore backs the gateway with the shared database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetIdempotency(ctx context.Context, key string) (IdempotencyRecord, bool, error) {
	const q = `
SELECT key, COALESCE(tx_id, ''), status, response, created_at
FROM idempotency_keys
WHERE key = $1
`
	var rec IdempotencyRecord
	err := s.db.QueryRowContext(ctx, q, key).Scan(&rec.Key, &rec.TxID, &rec.Status, &rec.Response, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return IdempotencyRecord{}, false, nil
	}
	if err != nil {
		return IdempotencyRecord{}, false, err
	}
	return rec, true, nil
}

func (s *PostgresStore) AdmitIdempotency(ctx context.Context, key string) error {
	const q = `INSERT INTO idempotency_keys (key, status) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, q, key, StatusInProgress); err != nil {
		// A concurrent or earlier attempt already admitted this key. That is
		// the coordination working, not a failure.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return err
	}
	return nil
}

// FinalizeIdempotency stores the response as json, not jsonb: the json type
// keeps the input text byte-for-byte, which replay depends on.
func (s *PostgresStore) FinalizeIdempotency(ctx context.Context, key, status, txID string, response []byte) error {
	const q = `
UPDATE idempotency_keys
SET status = $2, tx_id = NULLIF($3, ''), response = $4::json
WHERE key = $1
`
	_, err := s.db.ExecContext(ctx, q, key, status, txID, string(response))
	return err
}

func (s *PostgresStore) AccountExists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT 1 FROM accounts WHERE id = $1`
	var one int
	err := s.db.QueryRowContext(ctx, q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) InsertNotification(ctx context.Context, n Notification) error {
	const q = `
INSERT INTO notifications (id, account_id, tx_id, direction, amount, currency, message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := s.db.ExecContext(ctx, q, n.ID, n.AccountID, n.TxID, n.Direction, n.Amount, n.Currency, n.Message, n.CreatedAt)
	return err
}

func (s *PostgresStore) ListAccounts(ctx context.Context) ([]Account, error) {
	const q = `SELECT id, name, currency, start_balance, created_at FROM accounts ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Account, 0)
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Currency, &a.StartBalance, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListIdempotencyKeys(ctx context.Context) ([]IdempotencyRecord, error) {
	const q = `
SELECT key, COALESCE(tx_id, ''), status, response, created_at
FROM idempotency_keys
ORDER BY created_at DESC, key
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]IdempotencyRecord, 0)
	for rows.Next() {
		var rec IdempotencyRecord
		if err := rows.Scan(&rec.Key, &rec.TxID, &rec.Status, &rec.Response, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListNotifications(ctx context.Context) ([]Notification, error) {
	const q = `
SELECT id, account_id, tx_id, direction, amount, currency, message, created_at
FROM notifications
ORDER BY created_at DESC, id
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.TxID, &n.Direction, &n.Amount, &n.Currency, &n.Message, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
