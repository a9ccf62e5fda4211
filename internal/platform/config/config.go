// Package config loads per-process settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/easpayments/easpayments-go/internal/platform/tlsconf"
)

// Gateway configures the public HTTP process.
type Gateway struct {
	ListenAddr     string
	DatabaseURL    string
	RedisURL       string
	LedgerTarget   string
	NotifyTarget   string
	RequestTimeout time.Duration
	TLS            tlsconf.Config
}

// Ledger configures the ledger gRPC process and its operational HTTP listener.
type Ledger struct {
	GRPCAddr    string
	HTTPAddr    string
	DatabaseURL string
	TLS         tlsconf.Config
}

// Notify configures the notification sink process.
type Notify struct {
	GRPCAddr string
	LogPath  string
	TLS      tlsconf.Config
}

func LoadGateway() Gateway {
	return Gateway{
		ListenAddr:     envOr("API_HOST", "0.0.0.0") + ":" + envOr("API_PORT", "8000"),
		DatabaseURL:    PostgresURL(),
		RedisURL:       envOr("REDIS_URL", "redis://redis:6379/0"),
		LedgerTarget:   envOr("LEDGER_GRPC_TARGET", "localhost:50051"),
		NotifyTarget:   envOr("NOTIFY_GRPC_TARGET", "notifications:50052"),
		RequestTimeout: time.Duration(envOrInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		TLS:            loadTLS(),
	}
}

func LoadLedger() Ledger {
	return Ledger{
		GRPCAddr:    ":" + envOr("LEDGER_GRPC_PORT", "50051"),
		HTTPAddr:    ":" + envOr("LEDGER_HTTP_PORT", "8050"),
		DatabaseURL: PostgresURL(),
		TLS:         loadTLS(),
	}
}

func LoadNotify() Notify {
	return Notify{
		GRPCAddr: ":" + envOr("NOTIFY_GRPC_PORT", "50052"),
		LogPath:  envOr("NOTIFY_LOG_PATH", "notifications.log"),
		TLS:      loadTLS(),
	}
}

// loadTLS reads the optional listener TLS material. Everything defaults to
// off; TLS normally terminates in front of these processes.
func loadTLS() tlsconf.Config {
	return tlsconf.Config{
		Enabled:           envOr("TLS_ENABLED", "false") == "true",
		CertFile:          envOr("TLS_CERT_FILE", ""),
		KeyFile:           envOr("TLS_KEY_FILE", ""),
		ClientCAFile:      envOr("TLS_CLIENT_CA_FILE", ""),
		RequireClientCert: envOr("TLS_REQUIRE_CLIENT_CERT", "false") == "true",
	}
}

// PostgresURL assembles a pgx URL from the individual POSTGRES_* variables.
func PostgresURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(envOr("POSTGRES_USER", "easuser"), envOr("POSTGRES_PASSWORD", "easpass")),
		Host:   fmt.Sprintf("%s:%s", envOr("POSTGRES_HOST", "postgres"), envOr("POSTGRES_PORT", "5432")),
		Path:   "/" + envOr("POSTGRES_DB", "easpayments"),
	}
	q := url.Values{}
	q.Set("sslmode", envOr("POSTGRES_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
