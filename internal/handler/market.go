package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
)

// MarketService is the marketplace flows as the HTTP layer sees them
type MarketService interface {
	Browse(ctx context.Context, category, search string) ([]model.Dataset, error)
	Dataset(ctx context.Context, id int64) (*model.Dataset, error)
	Categories(ctx context.Context) ([]string, error)
	Transaction(ctx context.Context, hash string) (json.RawMessage, error)
	Upload(ctx context.Context, req model.DatasetCreate) (*model.Dataset, error)
	Purchase(ctx context.Context, datasetID int64, licenseType model.LicenseType) (*model.License, error)
	Mint(ctx context.Context, datasetID int64) (string, error)
	MyDatasets(ctx context.Context) ([]model.Dataset, error)
	MyLicenses(ctx context.Context) ([]model.License, error)
}

// MarketHandler serves the dataset endpoints
type MarketHandler struct {
	market MarketService
	busy   *Busy
}

// NewMarketHandler creates a MarketHandler. Purchases and mints share busy with the wallet endpoints.
func NewMarketHandler(market MarketService, busy *Busy) *MarketHandler {
	return &MarketHandler{market: market, busy: busy}
}

// List handles GET /datasets
// @Summary      List datasets
// @Tags         datasets
// @Produce      json
// @Param        category  query     string  false  "Category, All for every category"
// @Param        search    query     string  false  "Free text search"
// @Success      200  {array}   model.Dataset
// @Router       /datasets [get]
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	datasets, err := h.market.Browse(r.Context(), q.Get("category"), q.Get("search"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, datasets)
}

// Get handles GET /datasets/{id}
// @Summary      Get dataset
// @Tags         datasets
// @Produce      json
// @Param        id   path      int  true  "Dataset ID"
// @Success      200  {object}  model.Dataset
// @Failure      404  {object}  model.ErrorResponse
// @Router       /datasets/{id} [get]
func (h *MarketHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	dataset, err := h.market.Dataset(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataset)
}

// Categories handles GET /datasets/categories
// @Summary      List categories
// @Tags         datasets
// @Produce      json
// @Success      200  {array}   string
// @Router       /datasets/categories [get]
func (h *MarketHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	categories, err := h.market.Categories(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /datasets
// @Summary      Upload dataset
// @Description  Lists a dataset owned by the connected wallet
// @Tags         datasets
// @Accept       json
// @Produce      json
// @Param        request  body      model.DatasetCreate  true  "Dataset"
// @Success      201      {object}  model.Dataset
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /datasets [post]
func (h *MarketHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.DatasetCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		dataset, err := h.market.Upload(r.Context(), req)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dataset)
	})(w, r)
}

// Purchase handles POST /datasets/{id}/purchase
// @Summary      Purchase license
// @Description  Pays the dataset price from the connected wallet and records the license
// @Tags         datasets
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true   "Dataset ID"
// @Param        request  body      model.PurchaseBody  false  "License type, standard by default"
// @Success      200      {object}  model.License
// @Failure      401      {object}  model.ErrorResponse
// @Failure      402      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /datasets/{id}/purchase [post]
func (h *MarketHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body model.PurchaseBody
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	if body.LicenseType == "" {
		body.LicenseType = model.LicenseStandard
	}
	if err := body.LicenseType.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		license, err := h.market.Purchase(r.Context(), id, body.LicenseType)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, license)
	})(w, r)
}

// Mint handles POST /datasets/{id}/mint
// @Summary      Mint dataset NFT
// @Tags         datasets
// @Produce      json
// @Param        id   path      int  true  "Dataset ID"
// @Success      200  {object}  model.TxAck
// @Failure      401  {object}  model.ErrorResponse
// @Failure      403  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /datasets/{id}/mint [post]
func (h *MarketHandler) Mint(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	h.busy.exclusive(func(w http.ResponseWriter, r *http.Request) {
		txHash, err := h.market.Mint(r.Context(), id)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeJSON(w, http.StatusOK, model.TxAck{Success: true, TransactionHash: txHash})
	})(w, r)
}

// Transaction handles GET /transactions/{hash}
// @Summary      Get transaction
// @Tags         datasets
// @Produce      json
// @Param        hash  path  string  true  "Transaction hash"
// @Success      200
// @Failure      404  {object}  model.ErrorResponse
// @Router       /transactions/{hash} [get]
func (h *MarketHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	hash := r.PathValue("hash")
	if hash == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("transaction hash is required"))
		return
	}
	tx, err := h.market.Transaction(r.Context(), hash)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// MyDatasets handles GET /me/datasets
// @Summary      Datasets owned by the connected wallet
// @Tags         me
// @Produce      json
// @Success      200  {array}   model.Dataset
// @Router       /me/datasets [get]
func (h *MarketHandler) MyDatasets(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	datasets, err := h.market.MyDatasets(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, datasets)
}

// MyLicenses handles GET /me/licenses
// @Summary      Licenses bought by the connected wallet
// @Tags         me
// @Produce      json
// @Success      200  {array}   model.License
// @Router       /me/licenses [get]
func (h *MarketHandler) MyLicenses(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	licenses, err := h.market.MyLicenses(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, licenses)
}
