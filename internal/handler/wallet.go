package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/wallet"
)

// WalletSession is the wallet session as the HTTP layer sees it
type WalletSession interface {
	Connect(ctx context.Context) (wallet.Account, error)
	Disconnect(ctx context.Context)
	RefreshBalance(ctx context.Context)
	Fund(ctx context.Context) bool
	Snapshot() model.WalletState
	AddressQR(size int) ([]byte, error)
}

// WalletHandler serves the wallet session endpoints
type WalletHandler struct {
	session WalletSession
	busy    *Busy
}

// NewWalletHandler creates a WalletHandler. Mutations share busy with other handlers.
func NewWalletHandler(session WalletSession, busy *Busy) *WalletHandler {
	return &WalletHandler{session: session, busy: busy}
}

// State handles GET /wallet
// @Summary      Wallet state
// @Description  Connection state, address and last known balance. The private key is never returned.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletState
// @Router       /wallet [get]
func (h *WalletHandler) State(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Restores the stored session or creates, stores and funds a new account
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ConnectResponse
// @Failure      502  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/connect [post]
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		acc, err := h.session.Connect(r.Context())
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, model.ConnectResponse{
			Success: true,
			Message: "Wallet connected",
			Address: acc.Address,
		})
	})(w, r)
}

// Disconnect handles POST /wallet/disconnect
// @Summary      Disconnect wallet
// @Description  Clears the session and removes the stored record
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletState
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/disconnect [post]
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		h.session.Disconnect(r.Context())
		writeJSON(w, http.StatusOK, h.session.Snapshot())
	})(w, r)
}

// Refresh handles POST /wallet/refresh
// @Summary      Refresh balance
// @Description  Re-reads the balance from the backend, any failure shows as 0
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletState
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/refresh [post]
func (h *WalletHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		h.session.RefreshBalance(r.Context())
		writeJSON(w, http.StatusOK, h.session.Snapshot())
	})(w, r)
}

// Fund handles POST /wallet/fund
// @Summary      Fund wallet
// @Description  Requests 1 APT for the connected account and refreshes the balance once it settles
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.FundResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/fund [post]
func (h *WalletHandler) Fund(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.FundResponse{Success: h.session.Fund(r.Context())})
	})(w, r)
}

// QR handles GET /wallet/qr
// @Summary      Address QR code
// @Description  PNG QR code of the connected address
// @Tags         wallet
// @Produce      png
// @Param        size  query     int  false  "Image size in pixels"
// @Success      200
// @Failure      401  {object}  model.ErrorResponse
// @Router       /wallet/qr [get]
func (h *WalletHandler) QR(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	size := 0
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 2048 {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("size must be between 0 and 2048"))
			return
		}
		size = n
	}

	png, err := h.session.AddressQR(size)
	if err != nil {
		writeFailure(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
