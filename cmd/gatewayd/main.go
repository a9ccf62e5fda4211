// Command gatewayd serves the public HTTP API: idempotent transfer
// admission, per-account locking, delegation to the ledger, and the detached
// notification fan-out.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/easpayments/easpayments-go/internal/gateway"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
	"github.com/easpayments/easpayments-go/internal/platform/config"
	"github.com/easpayments/easpayments-go/internal/platform/lock"
	"github.com/easpayments/easpayments-go/internal/platform/postgres"
	"github.com/easpayments/easpayments-go/internal/platform/tlsconf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.LoadGateway()
	tlsCfg, err := tlsconf.Build(cfg.TLS)
	if err != nil {
		log.Fatal("configure tls", zap.Error(err))
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal("ensure schema", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("parse redis url", zap.String("url", cfg.RedisURL), zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("ping redis", zap.Error(err))
	}

	clients, err := gateway.DialClients(cfg.LedgerTarget, cfg.NotifyTarget)
	if err != nil {
		log.Fatal("dial backends", zap.Error(err))
	}
	defer clients.Close()

	clk := clock.RealClock{}
	store := gateway.NewPostgresStore(db)
	metrics := gateway.NewMetrics()
	fanout := gateway.NewFanout(store, clients.Notify, clk, log, metrics)
	fanout.Start()

	handler := gateway.NewHandler(gateway.HandlerParams{
		Store:          store,
		Locker:         lock.NewRedisLocker(redisClient, log),
		Ledger:         clients.Ledger,
		Fanout:         fanout,
		Clock:          clk,
		Log:            log,
		Metrics:        metrics,
		RequestTimeout: cfg.RequestTimeout,
	})
	httpServer := &http.Server{Addr: cfg.ListenAddr, Handler: handler.Router(), TLSConfig: tlsCfg}

	go func() {
		log.Info("http listening", zap.String("addr", cfg.ListenAddr))
		var err error
		if tlsCfg != nil {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Warn("http server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	// Drain queued notification jobs before the process exits.
	fanout.Close()
}
