package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/easpayments/easpayments-go/internal/platform/clock"
)

func testJob(txID string) FanoutJob {
	return FanoutJob{
		TxID:        txID,
		FromAccount: "acct-from",
		ToAccount:   "acct-to",
		Amount:      750,
		Currency:    "INR",
	}
}

func TestFanoutDeliveryFailureKeepsRows(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clk)
	notify := &notifyClientStub{err: errors.New("sink down")}

	f := NewFanout(store, notify, clk, zap.NewNop(), nil)
	f.Start()
	if !f.Submit(testJob("tx-keep-rows")) {
		t.Fatal("submit reported a drop")
	}
	f.Close()

	rows, err := store.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("notification rows = %d, want 2 despite delivery failure", len(rows))
	}
	if got := notify.deliveries(); len(got) != 0 {
		t.Fatalf("deliveries = %d, want 0", len(got))
	}
}

func TestFanoutFailedLegDoesNotBlockTheOther(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clk)
	notify := &notifyClientStub{failDirection: directionDebit}

	f := NewFanout(store, notify, clk, zap.NewNop(), nil)
	f.Start()
	f.Submit(testJob("tx-partial"))
	f.Close()

	sent := notify.deliveries()
	if len(sent) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(sent))
	}
	if sent[0].GetDirection() != directionCredit {
		t.Fatalf("delivered direction = %q, want %q", sent[0].GetDirection(), directionCredit)
	}
}

func TestFanoutRowFailureSkipsDelivery(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	store := &failingInsertStore{
		MemoryStore: NewMemoryStore(clk),
		err:         errors.New("database gone"),
	}
	notify := &notifyClientStub{}

	f := NewFanout(store, notify, clk, zap.NewNop(), nil)
	f.Start()
	f.Submit(testJob("tx-no-row"))
	f.Close()

	if got := notify.deliveries(); len(got) != 0 {
		t.Fatalf("deliveries = %d, want 0 when the rows never landed", len(got))
	}
}

func TestFanoutSubmitAfterClose(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	f := NewFanout(NewMemoryStore(clk), &notifyClientStub{}, clk, zap.NewNop(), nil)
	f.Start()
	f.Close()

	if f.Submit(testJob("tx-late")) {
		t.Fatal("submit after close reported success")
	}
	// A second close is a no-op, not a close of a closed channel.
	f.Close()
}

func TestFanoutFullQueueDropsWithoutBlocking(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	// No Start: nothing drains the queue, so it fills to capacity.
	f := NewFanout(NewMemoryStore(clk), &notifyClientStub{}, clk, zap.NewNop(), nil)

	for i := 0; i < fanoutQueueDepth; i++ {
		if !f.Submit(testJob(fmt.Sprintf("tx-fill-%d", i))) {
			t.Fatalf("submit %d dropped below capacity", i)
		}
	}
	done := make(chan bool, 1)
	go func() {
		done <- f.Submit(testJob("tx-overflow"))
	}()
	select {
	case accepted := <-done:
		if accepted {
			t.Fatal("submit into a full queue reported success")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("submit into a full queue blocked")
	}
}

func TestFanoutRecoversFromPanic(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	store := &panickyStore{MemoryStore: NewMemoryStore(clk), panicTx: "tx-boom"}
	notify := &notifyClientStub{}

	f := NewFanout(store, notify, clk, zap.NewNop(), nil)
	f.Start()
	f.Submit(testJob("tx-boom"))
	f.Submit(testJob("tx-fine"))
	f.Close()

	rows, err := store.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("notification rows = %d, want 2 from the surviving job", len(rows))
	}
	for _, row := range rows {
		if row.TxID != "tx-fine" {
			t.Fatalf("row tx = %q, want tx-fine", row.TxID)
		}
	}
	if got := notify.deliveries(); len(got) != 2 {
		t.Fatalf("deliveries = %d, want 2", len(got))
	}
}

type failingInsertStore struct {
	*MemoryStore
	err error
}

func (s *failingInsertStore) InsertNotification(ctx context.Context, n Notification) error {
	return s.err
}

type panickyStore struct {
	*MemoryStore
	panicTx string
}

func (s *panickyStore) InsertNotification(ctx context.Context, n Notification) error {
	if n.TxID == s.panicTx {
		panic("notification store exploded")
	}
	return s.MemoryStore.InsertNotification(ctx, n)
}
