package ledger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

// Service implements payment.v1.LedgerService over a Book.
//
// Domain failures (bad amount, unknown account, currency mismatch,
// insufficient funds) are deterministic outcomes and travel in-band as
// status=FAILED responses. Only infrastructure trouble becomes an RPC error,
// so callers can tell "your transfer was refused" from "try again".
type Service struct {
	paymentv1.UnimplementedLedgerServiceServer

	book    Book
	clk     clock.Clock
	log     *zap.Logger
	metrics *Metrics
}

func NewService(book Book, clk clock.Clock, log *zap.Logger, metrics *Metrics) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{book: book, clk: clk, log: log, metrics: metrics}
}

func (s *Service) Transfer(ctx context.Context, req *paymentv1.TransferRequest) (*paymentv1.TransferResponse, error) {
	start := s.clk.Now()
	currency := req.GetCurrency()
	if currency == "" {
		currency = DefaultCurrency
	}

	mv, err := s.book.Transfer(ctx, req.GetFromAccount(), req.GetToAccount(), req.GetAmount(), req.GetIdempotencyKey())
	if err != nil {
		if msg, ok := failureMessage(err); ok {
			s.log.Info("transfer refused",
				zap.String("from_account", req.GetFromAccount()),
				zap.String("to_account", req.GetToAccount()),
				zap.Int64("amount", req.GetAmount()),
				zap.String("reason", msg),
			)
			s.metrics.ObserveTransfer("failed", s.clk.Now().Sub(start), false)
			return &paymentv1.TransferResponse{
				FromAccount: req.GetFromAccount(),
				ToAccount:   req.GetToAccount(),
				Amount:      req.GetAmount(),
				Currency:    currency,
				Status:      StatusFailed,
				Message:     msg,
			}, nil
		}
		if errors.Is(err, ErrIdempotencyMismatch) {
			s.metrics.ObserveTransfer("error", s.clk.Now().Sub(start), false)
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.log.Error("transfer aborted",
			zap.String("from_account", req.GetFromAccount()),
			zap.String("to_account", req.GetToAccount()),
			zap.Int64("amount", req.GetAmount()),
			zap.Error(err),
		)
		s.metrics.ObserveTransfer("error", s.clk.Now().Sub(start), false)
		return nil, status.Error(codes.Internal, "transfer failed")
	}

	s.log.Info("transfer committed",
		zap.String("tx_id", mv.TxID),
		zap.String("from_account", mv.FromAccount),
		zap.String("to_account", mv.ToAccount),
		zap.Int64("amount", mv.Amount),
		zap.Bool("replayed", mv.Replayed),
	)
	s.metrics.ObserveTransfer("success", s.clk.Now().Sub(start), mv.Replayed)
	return &paymentv1.TransferResponse{
		TxId:             mv.TxID,
		FromAccount:      mv.FromAccount,
		ToAccount:        mv.ToAccount,
		Amount:           mv.Amount,
		Currency:         currency,
		FromBalanceAfter: mv.FromBalanceAfter,
		ToBalanceAfter:   mv.ToBalanceAfter,
		Status:           StatusSuccess,
	}, nil
}

func (s *Service) GetBalance(ctx context.Context, req *paymentv1.BalanceRequest) (*paymentv1.BalanceResponse, error) {
	bal, err := s.book.Balance(ctx, req.GetAccountId())
	if err != nil {
		s.log.Error("balance lookup failed",
			zap.String("account_id", req.GetAccountId()),
			zap.Error(err),
		)
		return nil, status.Error(codes.Internal, "balance lookup failed")
	}
	return &paymentv1.BalanceResponse{
		AccountId: bal.AccountID,
		Balance:   bal.Balance,
		Currency:  bal.Currency,
	}, nil
}

func (s *Service) GetAllEntries(ctx context.Context, req *paymentv1.GetAllRequest) (*paymentv1.GetAllResponse, error) {
	entries, err := s.book.Entries(ctx)
	if err != nil {
		s.log.Error("entry listing failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "entry listing failed")
	}
	out := make([]*paymentv1.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &paymentv1.LedgerEntry{
			TxId:        e.TxID,
			FromAccount: e.FromAccount,
			ToAccount:   e.ToAccount,
			Amount:      e.Amount,
			Currency:    e.Currency,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return &paymentv1.GetAllResponse{Entries: out}, nil
}
