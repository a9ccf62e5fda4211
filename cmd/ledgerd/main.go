// Command ledgerd serves the double-entry book over gRPC, with an
// operational HTTP listener carrying the proto-JSON mirror, health, and
// metrics.
package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/ledger"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
	"github.com/easpayments/easpayments-go/internal/platform/config"
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

	cfg := config.LoadLedger()
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

	svc := ledger.NewService(ledger.NewPostgresBook(db), clock.RealClock{}, log, ledger.NewMetrics())

	grpcOpts := make([]grpc.ServerOption, 0)
	if tlsCfg != nil {
		grpcOpts = append(grpcOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
	}
	grpcServer := grpc.NewServer(grpcOpts...)
	hs := health.NewServer()
	hs.SetServingStatus("", healthv1.HealthCheckResponse_SERVING)
	healthv1.RegisterHealthServer(grpcServer, hs)
	paymentv1.RegisterLedgerServiceServer(grpcServer, svc)

	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen grpc", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	gwMux := runtime.NewServeMux()
	if err := paymentv1.RegisterLedgerServiceHandlerServer(ctx, gwMux, svc); err != nil {
		log.Fatal("register gateway handlers", zap.Error(err))
	}
	mux.Handle("/", gwMux)
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: mux, TLSConfig: tlsCfg}

	go func() {
		log.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Warn("grpc server stopped", zap.Error(err))
		}
	}()

	go func() {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
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
	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
}
