// Command notifyd serves the notification sink over gRPC.
package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/notifier"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
	"github.com/easpayments/easpayments-go/internal/platform/config"
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

	cfg := config.LoadNotify()
	tlsCfg, err := tlsconf.Build(cfg.TLS)
	if err != nil {
		log.Fatal("configure tls", zap.Error(err))
	}

	grpcOpts := make([]grpc.ServerOption, 0)
	if tlsCfg != nil {
		grpcOpts = append(grpcOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
	}
	grpcServer := grpc.NewServer(grpcOpts...)
	hs := health.NewServer()
	hs.SetServingStatus("", healthv1.HealthCheckResponse_SERVING)
	healthv1.RegisterHealthServer(grpcServer, hs)
	paymentv1.RegisterNotificationServiceServer(grpcServer, notifier.NewService(clock.RealClock{}, log, cfg.LogPath))

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen grpc", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		log.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(listener); err != nil {
			log.Warn("grpc server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
