package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/ledger"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
	"github.com/easpayments/easpayments-go/internal/platform/lock"
)

const (
	acctAlice = "00000000-0000-0000-0000-0000000000a1"
	acctBob   = "00000000-0000-0000-0000-0000000000b1"
	acctGhost = "00000000-0000-0000-0000-0000000000c9"
)

// ledgerClientStub satisfies paymentv1.LedgerServiceClient by calling a real
// ledger service in-process, so handler tests observe true double-entry
// balances and replay behavior. Transfer calls are counted and can be forced
// to fail to simulate an outage.
type ledgerClientStub struct {
	svc *ledger.Service

	mu            sync.Mutex
	transferCalls int
	transferErr   error
}

func (c *ledgerClientStub) setTransferErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transferErr = err
}

func (c *ledgerClientStub) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transferCalls
}

func (c *ledgerClientStub) Transfer(ctx context.Context, in *paymentv1.TransferRequest, _ ...grpc.CallOption) (*paymentv1.TransferResponse, error) {
	c.mu.Lock()
	c.transferCalls++
	err := c.transferErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.svc.Transfer(ctx, in)
}

func (c *ledgerClientStub) GetBalance(ctx context.Context, in *paymentv1.BalanceRequest, _ ...grpc.CallOption) (*paymentv1.BalanceResponse, error) {
	return c.svc.GetBalance(ctx, in)
}

func (c *ledgerClientStub) GetAllEntries(ctx context.Context, in *paymentv1.GetAllRequest, _ ...grpc.CallOption) (*paymentv1.GetAllResponse, error) {
	return c.svc.GetAllEntries(ctx, in)
}

type notifyClientStub struct {
	mu            sync.Mutex
	err           error
	failDirection string
	sent          []*paymentv1.NotificationRequest
}

func (c *notifyClientStub) deliveries() []*paymentv1.NotificationRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*paymentv1.NotificationRequest(nil), c.sent...)
}

func (c *notifyClientStub) Notify(ctx context.Context, in *paymentv1.NotificationRequest, _ ...grpc.CallOption) (*paymentv1.NotificationResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if c.failDirection != "" && in.GetDirection() == c.failDirection {
		return nil, errors.New("leg rejected")
	}
	c.sent = append(c.sent, in)
	return &paymentv1.NotificationResponse{Ok: true}, nil
}

type fixture struct {
	store  *MemoryStore
	locker *lock.MemoryLocker
	book   *ledger.MemoryBook
	ledger *ledgerClientStub
	notify *notifyClientStub
	fanout *Fanout
	router http.Handler
}

// newFixture wires a handler over in-memory everything: a real ledger service
// on a MemoryBook, a memory store and locker, and a started fanout. Metrics
// stay nil so repeated tests do not fight over the default prometheus
// registry.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	book := ledger.NewMemoryBook(clk)
	book.AddAccount(acctAlice, "Alice", "INR", 100000)
	book.AddAccount(acctBob, "Bob", "INR", 50000)

	store := NewMemoryStore(clk)
	store.AddAccount(Account{ID: acctAlice, Name: "Alice", Currency: "INR", StartBalance: 100000})
	store.AddAccount(Account{ID: acctBob, Name: "Bob", Currency: "INR", StartBalance: 50000})

	f := &fixture{
		store:  store,
		locker: lock.NewMemoryLocker(clk),
		book:   book,
		ledger: &ledgerClientStub{svc: ledger.NewService(book, clk, zap.NewNop(), nil)},
		notify: &notifyClientStub{},
	}
	f.fanout = NewFanout(store, f.notify, clk, zap.NewNop(), nil)
	f.fanout.Start()
	t.Cleanup(f.fanout.Close)

	h := NewHandler(HandlerParams{
		Store:  store,
		Locker: f.locker,
		Ledger: f.ledger,
		Fanout: f.fanout,
		Clock:  clk,
		Log:    zap.NewNop(),
	})
	f.router = h.Router()
	return f
}

func (f *fixture) postTransfer(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/transfer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func transferBody(from, to string, amount int64, key string) string {
	return fmt.Sprintf(`{"from_account":%q,"to_account":%q,"amount":%d,"currency":"INR","idempotency_key":%q}`, from, to, amount, key)
}

func decodeTransfer(t *testing.T, rec *httptest.ResponseRecorder) TransferOut {
	t.Helper()
	var out TransferOut
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode transfer response %q: %v", rec.Body.String(), err)
	}
	return out
}

func errorDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error response %q: %v", rec.Body.String(), err)
	}
	return out["detail"]
}

func TestTransferHappyPath(t *testing.T) {
	f := newFixture(t)

	rec := f.postTransfer(transferBody(acctAlice, acctBob, 1000, "key-happy"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q, want application/json", ct)
	}

	out := decodeTransfer(t, rec)
	if out.Status != StatusSuccess {
		t.Fatalf("status = %q, want %q", out.Status, StatusSuccess)
	}
	if out.TxID == "" {
		t.Fatal("tx_id is empty")
	}
	if out.FromBalanceAfter != 99000 || out.ToBalanceAfter != 51000 {
		t.Fatalf("balances after = %d/%d, want 99000/51000", out.FromBalanceAfter, out.ToBalanceAfter)
	}
	if out.Currency != "INR" || out.Amount != 1000 {
		t.Fatalf("echoed amount/currency = %d %q", out.Amount, out.Currency)
	}
	if out.Message != nil {
		t.Fatalf("message = %q, want null", *out.Message)
	}
	if !strings.Contains(rec.Body.String(), `"message":null`) {
		t.Fatalf("body %q does not carry an explicit null message", rec.Body.String())
	}

	// The served bytes are persisted verbatim under the key.
	stored, found, err := f.store.GetIdempotency(context.Background(), "key-happy")
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.Status != StatusSuccess || stored.TxID != out.TxID {
		t.Fatalf("stored record = %+v", stored)
	}
	if string(stored.Response) != rec.Body.String() {
		t.Fatalf("stored response %q differs from served body %q", stored.Response, rec.Body.String())
	}
}

func TestTransferReplayServesStoredBytes(t *testing.T) {
	f := newFixture(t)

	body := transferBody(acctAlice, acctBob, 2500, "key-replay")
	first := f.postTransfer(body)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, body %q", first.Code, first.Body.String())
	}

	for i := 0; i < 5; i++ {
		again := f.postTransfer(body)
		if again.Code != http.StatusOK {
			t.Fatalf("replay %d status = %d", i, again.Code)
		}
		if again.Body.String() != first.Body.String() {
			t.Fatalf("replay %d body %q differs from first %q", i, again.Body.String(), first.Body.String())
		}
	}

	if got := f.ledger.calls(); got != 1 {
		t.Fatalf("ledger transfer calls = %d, want 1", got)
	}
	entries, err := f.book.Entries(context.Background())
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("committed transfers = %d, want 1", len(entries))
	}
}

func TestTransferConcurrentSameKey(t *testing.T) {
	f := newFixture(t)

	const attempts = 6
	body := transferBody(acctAlice, acctBob, 1000, "key-race")

	type result struct {
		code int
		body string
	}
	results := make([]result, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := f.postTransfer(body)
			results[i] = result{code: rec.Code, body: rec.Body.String()}
		}(i)
	}
	wg.Wait()

	successes := 0
	var successBody string
	for i, r := range results {
		switch r.code {
		case http.StatusOK:
			successes++
			if successBody == "" {
				successBody = r.body
			} else if r.body != successBody {
				t.Fatalf("attempt %d served %q, earlier success served %q", i, r.body, successBody)
			}
		case http.StatusConflict:
			// Lost the lock race; acceptable, client retries.
		default:
			t.Fatalf("attempt %d status = %d, body %q", i, r.code, r.body)
		}
	}
	if successes == 0 {
		t.Fatal("no attempt succeeded")
	}

	// However the attempts interleaved, money moved exactly once.
	entries, err := f.book.Entries(context.Background())
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("committed transfers = %d, want 1", len(entries))
	}
	if entries[0].Amount != 1000 {
		t.Fatalf("committed amount = %d, want 1000", entries[0].Amount)
	}
}

func TestTransferRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		detail string
		key    string
	}{
		{
			name:   "invalid json",
			body:   `{"from_account":`,
			detail: "Invalid JSON body",
		},
		{
			name:   "bad from uuid",
			body:   transferBody("not-a-uuid", acctBob, 100, "key-bad-from"),
			detail: "Invalid from_account",
			key:    "key-bad-from",
		},
		{
			name:   "bad to uuid",
			body:   transferBody(acctAlice, "also-not-a-uuid", 100, "key-bad-to"),
			detail: "Invalid to_account",
			key:    "key-bad-to",
		},
		{
			name:   "self transfer",
			body:   transferBody(acctAlice, acctAlice, 100, "key-self"),
			detail: "from_account and to_account must differ",
			key:    "key-self",
		},
		{
			name:   "zero amount",
			body:   transferBody(acctAlice, acctBob, 0, "key-zero"),
			detail: "Amount must be >= 1",
			key:    "key-zero",
		},
		{
			name:   "negative amount",
			body:   transferBody(acctAlice, acctBob, -5, "key-negative"),
			detail: "Amount must be >= 1",
			key:    "key-negative",
		},
		{
			name:   "empty key",
			body:   transferBody(acctAlice, acctBob, 100, ""),
			detail: "idempotency_key must be 1..128 characters",
		},
		{
			name:   "oversized key",
			body:   transferBody(acctAlice, acctBob, 100, strings.Repeat("k", 129)),
			detail: "idempotency_key must be 1..128 characters",
			key:    strings.Repeat("k", 129),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.postTransfer(tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %q", rec.Code, rec.Body.String())
			}
			if got := errorDetail(t, rec); got != tc.detail {
				t.Fatalf("detail = %q, want %q", got, tc.detail)
			}
			if got := f.ledger.calls(); got != 0 {
				t.Fatalf("ledger transfer calls = %d, want 0", got)
			}
			// Rejections happen before admission, so no row is left behind.
			if tc.key != "" {
				if _, found, _ := f.store.GetIdempotency(context.Background(), tc.key); found {
					t.Fatalf("idempotency row exists for rejected key %q", tc.key)
				}
			}
		})
	}
}

func TestTransferUnknownAccount(t *testing.T) {
	cases := []struct {
		name   string
		from   string
		to     string
		detail string
	}{
		{name: "unknown sender", from: acctGhost, to: acctBob, detail: "from_account not found"},
		{name: "unknown receiver", from: acctAlice, to: acctGhost, detail: "to_account not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.postTransfer(transferBody(tc.from, tc.to, 100, "key-unknown"))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400, body %q", rec.Code, rec.Body.String())
			}
			if got := errorDetail(t, rec); got != tc.detail {
				t.Fatalf("detail = %q, want %q", got, tc.detail)
			}
			if got := f.ledger.calls(); got != 0 {
				t.Fatalf("ledger transfer calls = %d, want 0", got)
			}
		})
	}
}

func TestTransferCurrencyDefaultsToINR(t *testing.T) {
	f := newFixture(t)

	body := fmt.Sprintf(`{"from_account":%q,"to_account":%q,"amount":50,"idempotency_key":"key-default-currency"}`, acctAlice, acctBob)
	rec := f.postTransfer(body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	out := decodeTransfer(t, rec)
	if out.Currency != "INR" {
		t.Fatalf("currency = %q, want INR", out.Currency)
	}
}

func TestTransferInsufficientFundsIsTerminal(t *testing.T) {
	f := newFixture(t)

	body := transferBody(acctAlice, acctBob, 10000000, "key-broke")
	rec := f.postTransfer(body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %q", rec.Code, rec.Body.String())
	}
	out := decodeTransfer(t, rec)
	if out.Status != StatusFailed {
		t.Fatalf("status = %q, want %q", out.Status, StatusFailed)
	}
	if out.Message == nil || *out.Message != "Insufficient funds" {
		t.Fatalf("message = %v, want Insufficient funds", out.Message)
	}
	if out.TxID != "" {
		t.Fatalf("tx_id = %q, want empty on refusal", out.TxID)
	}

	// The refusal is terminal: replays serve it without touching the ledger
	// again, and no entries were written.
	stored, found, err := f.store.GetIdempotency(context.Background(), "key-broke")
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.Status != StatusFailed {
		t.Fatalf("stored status = %q, want %q", stored.Status, StatusFailed)
	}

	again := f.postTransfer(body)
	if again.Body.String() != rec.Body.String() {
		t.Fatalf("replayed refusal %q differs from first %q", again.Body.String(), rec.Body.String())
	}
	if got := f.ledger.calls(); got != 1 {
		t.Fatalf("ledger transfer calls = %d, want 1", got)
	}
	entries, err := f.book.Entries(context.Background())
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func TestTransferLockConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	held, err := f.locker.Acquire(ctx, []string{acctBob}, time.Minute)
	if err != nil {
		t.Fatalf("pre-acquire: %v", err)
	}

	body := transferBody(acctAlice, acctBob, 300, "key-locked")
	rec := f.postTransfer(body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body %q", rec.Code, rec.Body.String())
	}
	if got := f.ledger.calls(); got != 0 {
		t.Fatalf("ledger transfer calls = %d, want 0", got)
	}
	// The key was admitted before the conflict and stays IN_PROGRESS so the
	// retry below can reuse it.
	stored, found, err := f.store.GetIdempotency(ctx, "key-locked")
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.Status != StatusInProgress || len(stored.Response) != 0 {
		t.Fatalf("stored record after conflict = %+v", stored)
	}
	// The failed attempt must not leave its own partial locks behind.
	if f.locker.Held(acctAlice) {
		t.Fatal("sender lock still held after conflict rollback")
	}

	f.locker.Release(ctx, held)
	retry := f.postTransfer(body)
	if retry.Code != http.StatusOK {
		t.Fatalf("retry status = %d, body %q", retry.Code, retry.Body.String())
	}
	if out := decodeTransfer(t, retry); out.Status != StatusSuccess {
		t.Fatalf("retry status = %q, want %q", out.Status, StatusSuccess)
	}
}

func TestTransferLedgerOutage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.setTransferErr(status.Error(codes.Unavailable, "ledger down"))
	body := transferBody(acctAlice, acctBob, 400, "key-outage")
	rec := f.postTransfer(body)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502, body %q", rec.Code, rec.Body.String())
	}
	if got := errorDetail(t, rec); got != "ledger unavailable" {
		t.Fatalf("detail = %q", got)
	}

	// The key keeps its IN_PROGRESS row and both locks are free, so the same
	// key is the recovery path once the ledger is back.
	stored, found, err := f.store.GetIdempotency(ctx, "key-outage")
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.Status != StatusInProgress {
		t.Fatalf("stored status = %q, want %q", stored.Status, StatusInProgress)
	}
	if f.locker.Held(acctAlice) || f.locker.Held(acctBob) {
		t.Fatal("locks still held after failed rpc")
	}

	f.ledger.setTransferErr(nil)
	retry := f.postTransfer(body)
	if retry.Code != http.StatusOK {
		t.Fatalf("retry status = %d, body %q", retry.Code, retry.Body.String())
	}
	out := decodeTransfer(t, retry)
	if out.Status != StatusSuccess || out.FromBalanceAfter != 99600 {
		t.Fatalf("retry response = %+v", out)
	}
}

// TestTransferRetryAfterLostFinalization covers the crash window between the
// ledger commit and the idempotency finalization: the retry repeats the call
// and the ledger replays the recorded movement instead of moving money twice.
func TestTransferRetryAfterLostFinalization(t *testing.T) {
	clk := clock.Fixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	book := ledger.NewMemoryBook(clk)
	book.AddAccount(acctAlice, "Alice", "INR", 100000)
	book.AddAccount(acctBob, "Bob", "INR", 50000)

	mem := NewMemoryStore(clk)
	mem.AddAccount(Account{ID: acctAlice, Name: "Alice", Currency: "INR", StartBalance: 100000})
	mem.AddAccount(Account{ID: acctBob, Name: "Bob", Currency: "INR", StartBalance: 50000})
	store := &flakyFinalizeStore{MemoryStore: mem, failuresLeft: 1}

	ledgerClient := &ledgerClientStub{svc: ledger.NewService(book, clk, zap.NewNop(), nil)}
	notify := &notifyClientStub{}
	fanout := NewFanout(store, notify, clk, zap.NewNop(), nil)
	fanout.Start()
	t.Cleanup(fanout.Close)

	h := NewHandler(HandlerParams{
		Store:  store,
		Locker: lock.NewMemoryLocker(clk),
		Ledger: ledgerClient,
		Fanout: fanout,
		Clock:  clk,
		Log:    zap.NewNop(),
	})
	router := h.Router()

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/transfer", strings.NewReader(transferBody(acctAlice, acctBob, 900, "key-lost-finalize")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// First attempt commits on the ledger but loses the finalization write.
	first := post()
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, body %q", first.Code, first.Body.String())
	}
	stored, found, err := mem.GetIdempotency(context.Background(), "key-lost-finalize")
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.Status != StatusInProgress {
		t.Fatalf("stored status = %q, want %q after lost finalization", stored.Status, StatusInProgress)
	}

	// The retry reaches the ledger again, gets the replayed movement with the
	// original tx id and balances, and finalizes this time.
	retry := post()
	if retry.Code != http.StatusOK {
		t.Fatalf("retry status = %d, body %q", retry.Code, retry.Body.String())
	}
	if retry.Body.String() != first.Body.String() {
		t.Fatalf("retry body %q differs from first %q", retry.Body.String(), first.Body.String())
	}
	if got := ledgerClient.calls(); got != 2 {
		t.Fatalf("ledger transfer calls = %d, want 2", got)
	}
	entries, err := book.Entries(context.Background())
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("committed transfers = %d, want 1", len(entries))
	}
	stored, _, err = mem.GetIdempotency(context.Background(), "key-lost-finalize")
	if err != nil {
		t.Fatalf("stored record: %v", err)
	}
	if stored.Status != StatusSuccess || string(stored.Response) != retry.Body.String() {
		t.Fatalf("record after retry = %+v", stored)
	}
}

type flakyFinalizeStore struct {
	*MemoryStore

	mu           sync.Mutex
	failuresLeft int
}

func (s *flakyFinalizeStore) FinalizeIdempotency(ctx context.Context, key, status, txID string, response []byte) error {
	s.mu.Lock()
	if s.failuresLeft > 0 {
		s.failuresLeft--
		s.mu.Unlock()
		return errors.New("connection reset")
	}
	s.mu.Unlock()
	return s.MemoryStore.FinalizeIdempotency(ctx, key, status, txID, response)
}

func TestOppositeTransfersSettle(t *testing.T) {
	f := newFixture(t)

	// Both directions lock {alice, bob}; sorted acquisition means the loser
	// sees a clean 409 instead of a deadlock and retries with the same key.
	run := func(from, to, key string) (int, string) {
		body := transferBody(from, to, 800, key)
		for attempt := 0; attempt < 200; attempt++ {
			rec := f.postTransfer(body)
			if rec.Code != http.StatusConflict {
				return rec.Code, rec.Body.String()
			}
			time.Sleep(time.Millisecond)
		}
		return http.StatusConflict, ""
	}

	type result struct {
		code int
		body string
	}
	var wg sync.WaitGroup
	results := make([]result, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		code, body := run(acctAlice, acctBob, "key-a-to-b")
		results[0] = result{code, body}
	}()
	go func() {
		defer wg.Done()
		code, body := run(acctBob, acctAlice, "key-b-to-a")
		results[1] = result{code, body}
	}()
	wg.Wait()

	for i, r := range results {
		if r.code != http.StatusOK {
			t.Fatalf("direction %d finished with status %d, body %q", i, r.code, r.body)
		}
		var out TransferOut
		if err := json.Unmarshal([]byte(r.body), &out); err != nil {
			t.Fatalf("direction %d body %q: %v", i, r.body, err)
		}
		if out.Status != StatusSuccess {
			t.Fatalf("direction %d status = %q", i, out.Status)
		}
	}

	// Equal amounts in both directions leave the balances where they started.
	for _, tc := range []struct {
		id   string
		want int64
	}{
		{acctAlice, 100000},
		{acctBob, 50000},
	} {
		rec := f.get("/balance/" + tc.id)
		if rec.Code != http.StatusOK {
			t.Fatalf("balance status = %d", rec.Code)
		}
		var bal BalanceOut
		if err := json.Unmarshal(rec.Body.Bytes(), &bal); err != nil {
			t.Fatalf("decode balance: %v", err)
		}
		if bal.Balance != tc.want {
			t.Fatalf("balance of %s = %d, want %d", tc.id, bal.Balance, tc.want)
		}
	}
}

func TestBalanceEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/balance/" + acctAlice)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var bal BalanceOut
	if err := json.Unmarshal(rec.Body.Bytes(), &bal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bal.AccountID != acctAlice || bal.Balance != 100000 || bal.Currency != "INR" {
		t.Fatalf("balance = %+v", bal)
	}

	if rec := f.get("/balance/not-a-uuid"); rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id status = %d, want 400", rec.Code)
	}

	// Unknown accounts read as empty rather than erroring.
	rec = f.get("/balance/" + acctGhost)
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown account status = %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &bal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bal.Balance != 0 || bal.Currency != "INR" {
		t.Fatalf("unknown account balance = %+v", bal)
	}
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture(t)
	rec := f.get("/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != `{"ok":true}` {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestTransferNotificationsBothLegs(t *testing.T) {
	f := newFixture(t)

	rec := f.postTransfer(transferBody(acctAlice, acctBob, 1200, "key-notify"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	out := decodeTransfer(t, rec)

	// Close drains the queue so the async legs are observable.
	f.fanout.Close()

	notifications, err := f.store.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("notification rows = %d, want 2", len(notifications))
	}
	// Listing is newest first; the DEBIT row was written before the CREDIT.
	credit, debit := notifications[0], notifications[1]
	if debit.Direction != directionDebit || debit.AccountID != acctAlice {
		t.Fatalf("debit row = %+v", debit)
	}
	if credit.Direction != directionCredit || credit.AccountID != acctBob {
		t.Fatalf("credit row = %+v", credit)
	}
	wantSent := fmt.Sprintf("Sent 1200 INR to %s", acctBob)
	if debit.Message != wantSent {
		t.Fatalf("debit message = %q, want %q", debit.Message, wantSent)
	}
	wantReceived := fmt.Sprintf("Received 1200 INR from %s", acctAlice)
	if credit.Message != wantReceived {
		t.Fatalf("credit message = %q, want %q", credit.Message, wantReceived)
	}
	if debit.TxID != out.TxID || credit.TxID != out.TxID {
		t.Fatalf("notification tx ids = %q/%q, want %q", debit.TxID, credit.TxID, out.TxID)
	}

	sent := f.notify.deliveries()
	if len(sent) != 2 {
		t.Fatalf("delivered legs = %d, want 2", len(sent))
	}
	if sent[0].GetDirection() != directionDebit || sent[1].GetDirection() != directionCredit {
		t.Fatalf("delivery order = %q then %q", sent[0].GetDirection(), sent[1].GetDirection())
	}
}

func TestFailedTransferSendsNoNotifications(t *testing.T) {
	f := newFixture(t)

	rec := f.postTransfer(transferBody(acctAlice, acctBob, 10000000, "key-no-notify"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if out := decodeTransfer(t, rec); out.Status != StatusFailed {
		t.Fatalf("status = %q, want %q", out.Status, StatusFailed)
	}

	f.fanout.Close()
	notifications, err := f.store.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("notification rows = %d, want 0", len(notifications))
	}
	if got := f.notify.deliveries(); len(got) != 0 {
		t.Fatalf("delivered legs = %d, want 0", len(got))
	}
}

func TestListingEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.postTransfer(transferBody(acctAlice, acctBob, 600, "key-listing"))
	if rec.Code != http.StatusOK {
		t.Fatalf("transfer status = %d", rec.Code)
	}
	out := decodeTransfer(t, rec)
	f.fanout.Close()

	t.Run("accounts", func(t *testing.T) {
		rec := f.get("/accounts")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var accounts []AccountOut
		if err := json.Unmarshal(rec.Body.Bytes(), &accounts); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(accounts) != 2 {
			t.Fatalf("accounts = %d, want 2", len(accounts))
		}
		if accounts[0].ID != acctAlice || accounts[0].StartBalance != 100000 {
			t.Fatalf("first account = %+v", accounts[0])
		}
	})

	t.Run("ledger entries", func(t *testing.T) {
		rec := f.get("/ledger_entries")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var entries []LedgerEntryOut
		if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("entries = %d, want 1", len(entries))
		}
		e := entries[0]
		if e.TxID != out.TxID || e.FromAccount != acctAlice || e.ToAccount != acctBob || e.Amount != 600 {
			t.Fatalf("entry = %+v", e)
		}
	})

	t.Run("idempotency keys", func(t *testing.T) {
		rec := f.get("/idempotency_keys")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var keys []IdempotencyKeyOut
		if err := json.Unmarshal(rec.Body.Bytes(), &keys); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(keys) != 1 {
			t.Fatalf("keys = %d, want 1", len(keys))
		}
		k := keys[0]
		if k.Key != "key-listing" || k.Status != StatusSuccess {
			t.Fatalf("key = %+v", k)
		}
		if k.TxID == nil || *k.TxID != out.TxID {
			t.Fatalf("key tx_id = %v, want %q", k.TxID, out.TxID)
		}
		if len(k.Response) == 0 {
			t.Fatal("key response is empty")
		}
	})

	t.Run("notifications", func(t *testing.T) {
		rec := f.get("/notifications")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var notifications []NotificationOut
		if err := json.Unmarshal(rec.Body.Bytes(), &notifications); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(notifications) != 2 {
			t.Fatalf("notifications = %d, want 2", len(notifications))
		}
	})
}
