package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

const (
	directionDebit  = "DEBIT"
	directionCredit = "CREDIT"

	fanoutQueueDepth = 256
	fanoutWorkers    = 4
	fanoutJobTimeout = 10 * time.Second
)

// A FanoutJob carries one successful transfer into the notification path.
type FanoutJob struct {
	TxID        string
	FromAccount string
	ToAccount   string
	Amount      int64
	Currency    string
}

// Fanout persists and delivers the two per-leg notifications of each
// successful transfer without holding up the transfer response. The queue is
// bounded; when it is full the job is dropped with a log line and a counter.
// Losing jobs on crash is accepted, so delivery is at-least-once only from
// the submitting request's point of view.
type Fanout struct {
	store   Store
	notify  paymentv1.NotificationServiceClient
	clk     clock.Clock
	log     *zap.Logger
	metrics *Metrics

	jobs chan FanoutJob
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewFanout(store Store, notify paymentv1.NotificationServiceClient, clk clock.Clock, log *zap.Logger, metrics *Metrics) *Fanout {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fanout{
		store:   store,
		notify:  notify,
		clk:     clk,
		log:     log,
		metrics: metrics,
		jobs:    make(chan FanoutJob, fanoutQueueDepth),
	}
}

// Start launches the worker pool.
func (f *Fanout) Start() {
	for i := 0; i < fanoutWorkers; i++ {
		f.wg.Add(1)
		go func() {
			defer f.wg.Done()
			for job := range f.jobs {
				f.run(job)
			}
		}()
	}
}

// Submit enqueues one job without blocking the caller. It reports false when
// the job was dropped because the queue is full or the fanout is closed.
func (f *Fanout) Submit(job FanoutJob) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	select {
	case f.jobs <- job:
		return true
	default:
		f.log.Warn("notification queue full, dropping transfer", zap.String("tx_id", job.TxID))
		f.metrics.ObserveFanoutDrop()
		return false
	}
}

// Close stops intake and waits for already queued jobs to finish.
func (f *Fanout) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	close(f.jobs)
	f.mu.Unlock()
	f.wg.Wait()
}

func (f *Fanout) run(job FanoutJob) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("notification worker panic",
				zap.String("tx_id", job.TxID),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), fanoutJobTimeout)
	defer cancel()

	legs := []struct {
		accountID string
		direction string
		message   string
	}{
		{job.FromAccount, directionDebit, fmt.Sprintf("Sent %d %s to %s", job.Amount, job.Currency, job.ToAccount)},
		{job.ToAccount, directionCredit, fmt.Sprintf("Received %d %s from %s", job.Amount, job.Currency, job.FromAccount)},
	}

	// DEBIT row lands before CREDIT row; RPC legs are delivered one at a
	// time in the same order. A row failure abandons the job, an RPC failure
	// only skips that leg.
	now := f.clk.Now()
	for _, leg := range legs {
		err := f.store.InsertNotification(ctx, Notification{
			ID:        uuid.NewString(),
			AccountID: leg.accountID,
			TxID:      job.TxID,
			Direction: leg.direction,
			Amount:    job.Amount,
			Currency:  job.Currency,
			Message:   leg.message,
			CreatedAt: now,
		})
		if err != nil {
			f.log.Error("notification row insert failed",
				zap.String("tx_id", job.TxID),
				zap.String("direction", leg.direction),
				zap.Error(err),
			)
			f.metrics.ObserveNotification(leg.direction, "store_error")
			return
		}
	}

	for _, leg := range legs {
		_, err := f.notify.Notify(ctx, &paymentv1.NotificationRequest{
			AccountId: leg.accountID,
			TxId:      job.TxID,
			Amount:    job.Amount,
			Direction: leg.direction,
			Currency:  job.Currency,
			Message:   leg.message,
		})
		if err != nil {
			f.log.Error("notification delivery failed",
				zap.String("tx_id", job.TxID),
				zap.String("direction", leg.direction),
				zap.Error(err),
			)
			f.metrics.ObserveNotification(leg.direction, "rpc_error")
			continue
		}
		f.metrics.ObserveNotification(leg.direction, "delivered")
	}
}
