package model

import "github.com/shopspring/decimal"

// BalanceResponse represents response for GET /aptos/account/balance/{address}.
// BalanceAPT is nil when the backend omits the field.
type BalanceResponse struct {
	Address    string           `json:"address,omitempty"`
	BalanceAPT *decimal.Decimal `json:"balance_apt"`
}

// FundRequest represents request for POST /aptos/account/fund
type FundRequest struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"` // octas
}

// FundResponse represents response for POST /wallet/fund
type FundResponse struct {
	Success bool `json:"success"`
}
