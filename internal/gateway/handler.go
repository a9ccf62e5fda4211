// Package gateway implements the public HTTP surface of the payments
// platform: idempotent transfer admission, per-account advisory locking
// around the ledger call, persisted response replay, and the detached
// notification fan-out.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	paymentv1 "github.com/easpayments/easpayments-go/gen/payment/v1"
	"github.com/easpayments/easpayments-go/internal/platform/clock"
	"github.com/easpayments/easpayments-go/internal/platform/lock"
)

const defaultCurrency = "INR"

// Locker is the per-account advisory lock held across the ledger call.
type Locker interface {
	Acquire(ctx context.Context, accounts []string, ttl time.Duration) (*lock.Lease, error)
	Release(ctx context.Context, lease *lock.Lease)
}

type TransferIn struct {
	FromAccount    string `json:"from_account"`
	ToAccount      string `json:"to_account"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	IdempotencyKey string `json:"idempotency_key"`
}

// validate returns a rejection detail, or "" when the input is acceptable.
// Rejections happen before any admission write, so a rejected request leaves
// no idempotency row behind.
func (in TransferIn) validate() string {
	if !isUUID(in.FromAccount) {
		return "Invalid from_account"
	}
	if !isUUID(in.ToAccount) {
		return "Invalid to_account"
	}
	if in.FromAccount == in.ToAccount {
		return "from_account and to_account must differ"
	}
	if in.Amount < 1 {
		return "Amount must be >= 1"
	}
	if l := len(in.IdempotencyKey); l < 1 || l > 128 {
		return "idempotency_key must be 1..128 characters"
	}
	return ""
}

// TransferOut is the persisted and replayed response shape. Field order and
// names are the wire contract.
type TransferOut struct {
	TxID             string  `json:"tx_id"`
	FromAccount      string  `json:"from_account"`
	ToAccount        string  `json:"to_account"`
	Amount           int64   `json:"amount"`
	Currency         string  `json:"currency"`
	FromBalanceAfter int64   `json:"from_balance_after"`
	ToBalanceAfter   int64   `json:"to_balance_after"`
	Status           string  `json:"status"`
	Message          *string `json:"message"`
}

type BalanceOut struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
}

type AccountOut struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Currency     string    `json:"currency"`
	StartBalance int64     `json:"start_balance"`
	CreatedAt    time.Time `json:"created_at"`
}

type LedgerEntryOut struct {
	TxID        string `json:"tx_id"`
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	CreatedAt   string `json:"created_at"`
}

type IdempotencyKeyOut struct {
	Key       string          `json:"key"`
	TxID      *string         `json:"tx_id"`
	Status    string          `json:"status"`
	Response  json.RawMessage `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

type NotificationOut struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	TxID      string    `json:"tx_id"`
	Direction string    `json:"direction"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type HandlerParams struct {
	Store          Store
	Locker         Locker
	Ledger         paymentv1.LedgerServiceClient
	Fanout         *Fanout
	Clock          clock.Clock
	Log            *zap.Logger
	Metrics        *Metrics
	RequestTimeout time.Duration
}

type Handler struct {
	store          Store
	locker         Locker
	ledger         paymentv1.LedgerServiceClient
	fanout         *Fanout
	clk            clock.Clock
	log            *zap.Logger
	metrics        *Metrics
	requestTimeout time.Duration
}

func NewHandler(p HandlerParams) *Handler {
	if p.Log == nil {
		p.Log = zap.NewNop()
	}
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = 30 * time.Second
	}
	return &Handler{
		store:          p.Store,
		locker:         p.Locker,
		ledger:         p.Ledger,
		fanout:         p.Fanout,
		clk:            p.Clock,
		log:            p.Log,
		metrics:        p.Metrics,
		requestTimeout: p.RequestTimeout,
	}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/transfer", h.handleTransfer).Methods(http.MethodPost)
	r.HandleFunc("/balance/{account_id}", h.handleBalance).Methods(http.MethodGet)
	r.HandleFunc("/accounts", h.handleListAccounts).Methods(http.MethodGet)
	r.HandleFunc("/ledger_entries", h.handleListEntries).Methods(http.MethodGet)
	r.HandleFunc("/idempotency_keys", h.handleListKeys).Methods(http.MethodGet)
	r.HandleFunc("/notifications", h.handleListNotifications).Methods(http.MethodGet)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func (h *Handler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	start := h.clk.Now()
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var in TransferIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.metrics.ObserveTransfer("rejected", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if detail := in.validate(); detail != "" {
		h.metrics.ObserveTransfer("rejected", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusBadRequest, detail)
		return
	}
	if in.Currency == "" {
		in.Currency = defaultCurrency
	}
	log := h.log.With(
		zap.String("idempotency_key", in.IdempotencyKey),
		zap.String("from_account", in.FromAccount),
		zap.String("to_account", in.ToAccount),
		zap.Int64("amount", in.Amount),
	)

	// Terminal keys replay their stored bytes untouched; IN_PROGRESS keys
	// proceed, serialized against any in-flight attempt by the locks and by
	// the ledger's own key claim.
	rec, found, err := h.store.GetIdempotency(ctx, in.IdempotencyKey)
	if err != nil {
		log.Error("idempotency lookup failed", zap.Error(err))
		h.metrics.ObserveTransfer("store_error", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if found && len(rec.Response) > 0 && (rec.Status == StatusSuccess || rec.Status == StatusFailed) {
		log.Info("idempotent replay", zap.String("status", rec.Status))
		h.metrics.ObserveTransfer("replayed", h.clk.Now().Sub(start))
		h.writeBytes(w, http.StatusOK, rec.Response)
		return
	}

	if err := h.store.AdmitIdempotency(ctx, in.IdempotencyKey); err != nil {
		log.Error("idempotency admission failed", zap.Error(err))
		h.metrics.ObserveTransfer("store_error", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	for _, check := range []struct{ id, detail string }{
		{in.FromAccount, "from_account not found"},
		{in.ToAccount, "to_account not found"},
	} {
		exists, err := h.store.AccountExists(ctx, check.id)
		if err != nil {
			log.Error("account lookup failed", zap.String("account_id", check.id), zap.Error(err))
			h.metrics.ObserveTransfer("store_error", h.clk.Now().Sub(start))
			h.writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !exists {
			h.metrics.ObserveTransfer("rejected", h.clk.Now().Sub(start))
			h.writeError(w, http.StatusBadRequest, check.detail)
			return
		}
	}

	lease, err := h.locker.Acquire(ctx, []string{in.FromAccount, in.ToAccount}, lock.DefaultTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			log.Info("account lock conflict", zap.Error(err))
			h.metrics.ObserveTransfer("lock_conflict", h.clk.Now().Sub(start))
			h.writeError(w, http.StatusConflict, err.Error())
			return
		}
		log.Error("lock acquisition failed", zap.Error(err))
		h.metrics.ObserveTransfer("lock_error", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	grpcResp, rpcErr := h.ledger.Transfer(ctx, &paymentv1.TransferRequest{
		FromAccount:    in.FromAccount,
		ToAccount:      in.ToAccount,
		Amount:         in.Amount,
		Currency:       in.Currency,
		IdempotencyKey: in.IdempotencyKey,
	})
	// Locks are released on every path, including timeouts; Release detaches
	// itself from the request's cancellation.
	h.locker.Release(ctx, lease)
	if rpcErr != nil {
		// The ledger may or may not have committed. Leaving the key
		// IN_PROGRESS keeps a retry with the same key as the recovery path.
		log.Error("ledger rpc failed", zap.Error(rpcErr))
		h.metrics.ObserveTransfer("rpc_error", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusBadGateway, "ledger unavailable")
		return
	}

	out := TransferOut{
		TxID:             grpcResp.GetTxId(),
		FromAccount:      grpcResp.GetFromAccount(),
		ToAccount:        grpcResp.GetToAccount(),
		Amount:           grpcResp.GetAmount(),
		Currency:         grpcResp.GetCurrency(),
		FromBalanceAfter: grpcResp.GetFromBalanceAfter(),
		ToBalanceAfter:   grpcResp.GetToBalanceAfter(),
		Status:           grpcResp.GetStatus(),
	}
	if msg := grpcResp.GetMessage(); msg != "" {
		out.Message = &msg
	}
	body, err := json.Marshal(out)
	if err != nil {
		log.Error("response encoding failed", zap.Error(err))
		h.metrics.ObserveTransfer("encode_error", h.clk.Now().Sub(start))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.store.FinalizeIdempotency(ctx, in.IdempotencyKey, grpcResp.GetStatus(), grpcResp.GetTxId(), body); err != nil {
		// The ledger has committed; a retry with the same key observes
		// IN_PROGRESS, repeats the call, and the ledger replays the recorded
		// movement. Alarm, not a user-visible failure.
		log.Error("idempotency finalization failed", zap.Error(err))
	}

	if grpcResp.GetStatus() == StatusSuccess {
		h.fanout.Submit(FanoutJob{
			TxID:        grpcResp.GetTxId(),
			FromAccount: grpcResp.GetFromAccount(),
			ToAccount:   grpcResp.GetToAccount(),
			Amount:      grpcResp.GetAmount(),
			Currency:    grpcResp.GetCurrency(),
		})
		log.Info("transfer succeeded", zap.String("tx_id", grpcResp.GetTxId()))
		h.metrics.ObserveTransfer("success", h.clk.Now().Sub(start))
	} else {
		log.Info("transfer failed", zap.String("reason", grpcResp.GetMessage()))
		h.metrics.ObserveTransfer("failed", h.clk.Now().Sub(start))
	}
	h.writeBytes(w, http.StatusOK, body)
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["account_id"]
	if !isUUID(accountID) {
		h.writeError(w, http.StatusBadRequest, "Invalid account_id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.ledger.GetBalance(ctx, &paymentv1.BalanceRequest{AccountId: accountID})
	if err != nil {
		h.log.Error("balance rpc failed", zap.String("account_id", accountID), zap.Error(err))
		h.writeError(w, http.StatusBadGateway, "ledger unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, BalanceOut{
		AccountID: resp.GetAccountId(),
		Balance:   resp.GetBalance(),
		Currency:  resp.GetCurrency(),
	})
}

func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		h.log.Error("account listing failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]AccountOut, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountOut{
			ID:           a.ID,
			Name:         a.Name,
			Currency:     a.Currency,
			StartBalance: a.StartBalance,
			CreatedAt:    a.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.ledger.GetAllEntries(ctx, &paymentv1.GetAllRequest{})
	if err != nil {
		h.log.Error("entry listing rpc failed", zap.Error(err))
		h.writeError(w, http.StatusBadGateway, "ledger unavailable")
		return
	}
	out := make([]LedgerEntryOut, 0, len(resp.GetEntries()))
	for _, e := range resp.GetEntries() {
		out = append(out, LedgerEntryOut{
			TxID:        e.GetTxId(),
			FromAccount: e.GetFromAccount(),
			ToAccount:   e.GetToAccount(),
			Amount:      e.GetAmount(),
			Currency:    e.GetCurrency(),
			CreatedAt:   e.GetCreatedAt(),
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleListKeys(w http.ResponseWriter, r *http.Request) {
	recs, err := h.store.ListIdempotencyKeys(r.Context())
	if err != nil {
		h.log.Error("idempotency listing failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]IdempotencyKeyOut, 0, len(recs))
	for _, rec := range recs {
		item := IdempotencyKeyOut{
			Key:       rec.Key,
			Status:    rec.Status,
			Response:  json.RawMessage(rec.Response),
			CreatedAt: rec.CreatedAt,
		}
		if rec.TxID != "" {
			txID := rec.TxID
			item.TxID = &txID
		}
		out = append(out, item)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.store.ListNotifications(r.Context())
	if err != nil {
		h.log.Error("notification listing failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	out := make([]NotificationOut, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationOut{
			ID:        n.ID,
			AccountID: n.AccountID,
			TxID:      n.TxID,
			Direction: n.Direction,
			Amount:    n.Amount,
			Currency:  n.Currency,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.log.Error("response encoding failed", zap.Error(err))
		http.Error(w, `{"detail":"internal error"}`, http.StatusInternalServerError)
		return
	}
	h.writeBytes(w, status, body)
}

func (h *Handler) writeBytes(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Warn("response write failed", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
