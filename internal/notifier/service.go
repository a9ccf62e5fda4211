// Package notifier implements the notification sink service.
//
// Notify records one message per transfer leg: every request lands in the
// process log, and when a file path is configured, one line is appended to
// that file. The sink is best-effort by contract; delivery upstream is
// already at-least-once, so consumers dedupe on (tx_id, direction).
package notifier

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

// Service implements payment.v1.NotificationService.
type Service struct {
	paymentv1.UnimplementedNotificationServiceServer

	clk     clock.Clock
	log     *zap.Logger
	logPath string

	mu sync.Mutex
}

// NewService builds the sink. An empty logPath disables the file sink; the
// process log always receives the legs.
func NewService(clk clock.Clock, log *zap.Logger, logPath string) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{clk: clk, log: log, logPath: logPath}
}

func (s *Service) Notify(ctx context.Context, req *paymentv1.NotificationRequest) (*paymentv1.NotificationResponse, error) {
	s.log.Info("notification received",
		zap.String("account_id", req.GetAccountId()),
		zap.String("tx_id", req.GetTxId()),
		zap.String("direction", req.GetDirection()),
		zap.Int64("amount", req.GetAmount()),
		zap.String("currency", req.GetCurrency()),
		zap.String("message", req.GetMessage()),
	)
	if s.logPath != "" {
		if err := s.append(req); err != nil {
			// An unwritable file must not fail the leg; the caller has
			// already given up on delivery guarantees past this point.
			s.log.Warn("notification log append failed",
				zap.String("path", s.logPath),
				zap.Error(err),
			)
		}
	}
	return &paymentv1.NotificationResponse{Ok: true}, nil
}

func (s *Service) append(req *paymentv1.NotificationRequest) error {
	line := fmt.Sprintf("%s NOTIFY acct=%s dir=%s amt=%d cur=%s tx=%s msg=%s\n",
		s.clk.Now().UTC().Format(time.RFC3339),
		req.GetAccountId(),
		req.GetDirection(),
		req.GetAmount(),
		req.GetCurrency(),
		req.GetTxId(),
		req.GetMessage(),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
