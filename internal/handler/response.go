package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/AlexZinkM/dataset-wallet/internal/client"
	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/market"
	"github.com/AlexZinkM/dataset-wallet/wallet"

	log "github.com/sirupsen/logrus"
)

// Busy lets at most one wallet mutation run at a time.
// Handlers sharing a Busy answer 409 while another mutation is in flight.
type Busy struct {
	flag atomic.Bool
}

// acquire returns false when a mutation is already running
func (b *Busy) acquire() bool {
	return b.flag.CompareAndSwap(false, true)
}

func (b *Busy) release() {
	b.flag.Store(false)
}

// exclusive wraps a mutating handler with the busy flag
func (b *Busy) exclusive(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !b.acquire() {
			writeError(w, http.StatusConflict, "busy", errors.New("another wallet operation is in progress"))
			return
		}
		defer b.release()
		next(w, r)
	}
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Debug("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// writeFailure maps flow errors to status codes
func writeFailure(w http.ResponseWriter, err error) {
	var apiErr *client.APIError
	switch {
	case wallet.IsAccountCreationError(err):
		writeError(w, http.StatusBadGateway, "account_creation", err)
	case errors.Is(err, wallet.ErrNotConnected):
		writeError(w, http.StatusUnauthorized, "not_connected", err)
	case errors.Is(err, market.ErrInsufficientBalance):
		writeError(w, http.StatusPaymentRequired, "insufficient_balance", err)
	case errors.Is(err, market.ErrAlreadyMinted):
		writeError(w, http.StatusConflict, "already_minted", err)
	case errors.Is(err, market.ErrNotOwner):
		writeError(w, http.StatusForbidden, "not_owner", err)
	case client.IsUnavailable(err):
		writeError(w, http.StatusServiceUnavailable, "backend_unavailable", err)
	case client.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.As(err, &apiErr):
		writeError(w, http.StatusBadGateway, "backend", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid dataset id"))
		return 0, false
	}
	return id, true
}
