// Command seedaccounts provisions the demo accounts so transfers can be
// exercised immediately. It is idempotent: existing accounts are left alone.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/easpayments/easpayments-go/internal/platform/config"
	"github.com/easpayments/easpayments-go/internal/platform/postgres"
)

type demoAccount struct {
	id           string
	name         string
	startBalance int64
}

// Balances are minor units (paise).
var demoAccounts = []demoAccount{
	{"00000000-0000-0000-0000-0000000000a1", "Alice", 100000},
	{"00000000-0000-0000-0000-0000000000b1", "Bob", 50000},
	{"00000000-0000-0000-0000-0000000000c1", "Charlie", 0},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := postgres.Open(ctx, config.PostgresURL())
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()
	// The seeder may run before any service has started.
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal("ensure schema", zap.Error(err))
	}

	const q = `
INSERT INTO accounts (id, name, currency, start_balance)
VALUES ($1, $2, 'INR', $3)
ON CONFLICT (id) DO NOTHING
`
	for _, a := range demoAccounts {
		res, err := db.ExecContext(ctx, q, a.id, a.name, a.startBalance)
		if err != nil {
			log.Fatal("seed account", zap.String("account_id", a.id), zap.Error(err))
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			log.Fatal("seed account result", zap.String("account_id", a.id), zap.Error(err))
		}
		log.Info("account ensured",
			zap.String("account_id", a.id),
			zap.String("name", a.name),
			zap.Int64("start_balance", a.startBalance),
			zap.Bool("created", inserted == 1),
		)
	}
}
