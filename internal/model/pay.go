package model

import "github.com/shopspring/decimal"

// PayLicenseRequest represents request for POST /aptos/payment/pay-license
type PayLicenseRequest struct {
	BuyerAddress string          `json:"buyer_address"`
	DatasetID    int64           `json:"dataset_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// MintRequest represents request for POST /aptos/dataset/mint
type MintRequest struct {
	PrivateKey string `json:"private_key"`
	DatasetID  int64  `json:"dataset_id"`
	Hash       string `json:"hash"`
	URI        string `json:"uri"`
}

// SetPriceRequest represents request for POST /aptos/payment/set-price
type SetPriceRequest struct {
	PrivateKey string          `json:"private_key"`
	DatasetID  int64           `json:"dataset_id"`
	Price      decimal.Decimal `json:"price"`
}

// SetRoyaltyRequest represents request for POST /aptos/royalty/set
type SetRoyaltyRequest struct {
	PrivateKey string `json:"private_key"`
	DatasetID  int64  `json:"dataset_id"`
	RoyaltyBPS int    `json:"royalty_bps"`
}

// GrantLicenseRequest represents request for POST /aptos/license/grant
type GrantLicenseRequest struct {
	PrivateKey  string `json:"private_key"`
	DatasetID   int64  `json:"dataset_id"`
	Licensee    string `json:"licensee"`
	LicenseType string `json:"license_type"`
}
