package api

import (
	"net/http"
	"time"

	_ "github.com/AlexZinkM/dataset-wallet/docs"
	"github.com/AlexZinkM/dataset-wallet/internal/handler"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-Id"

// SetupRouter sets up router with handlers
func SetupRouter(session handler.WalletSession, market handler.MarketService) http.Handler {
	busy := &handler.Busy{}
	walletHandler := handler.NewWalletHandler(session, busy)
	marketHandler := handler.NewMarketHandler(market, busy)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("GET /wallet", walletHandler.State)
	mux.HandleFunc("POST /wallet/connect", walletHandler.Connect)
	mux.HandleFunc("POST /wallet/disconnect", walletHandler.Disconnect)
	mux.HandleFunc("POST /wallet/refresh", walletHandler.Refresh)
	mux.HandleFunc("POST /wallet/fund", walletHandler.Fund)
	mux.HandleFunc("GET /wallet/qr", walletHandler.QR)

	// Dataset endpoints
	mux.HandleFunc("GET /datasets", marketHandler.List)
	mux.HandleFunc("POST /datasets", marketHandler.Create)
	mux.HandleFunc("GET /datasets/categories", marketHandler.Categories)
	mux.HandleFunc("GET /datasets/{id}", marketHandler.Get)
	mux.HandleFunc("POST /datasets/{id}/purchase", marketHandler.Purchase)
	mux.HandleFunc("POST /datasets/{id}/mint", marketHandler.Mint)
	mux.HandleFunc("GET /transactions/{hash}", marketHandler.Transaction)
	mux.HandleFunc("GET /me/datasets", marketHandler.MyDatasets)
	mux.HandleFunc("GET /me/licenses", marketHandler.MyLicenses)

	return withRequestID(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags each request with an id, echoes it back and logs the outcome
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"elapsed":    time.Since(start).String(),
		}).Debug("request served")
	})
}
