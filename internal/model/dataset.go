package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LicenseType license tier offered for a dataset
type LicenseType string

const (
	LicenseStandard   LicenseType = "standard"
	LicenseCommercial LicenseType = "commercial"
	LicenseExclusive  LicenseType = "exclusive"
)

// Validate validates license type
func (l LicenseType) Validate() error {
	switch l {
	case LicenseStandard, LicenseCommercial, LicenseExclusive:
		return nil
	}
	return fmt.Errorf("license type must be standard, commercial or exclusive")
}

// Dataset represents a dataset listing
type Dataset struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	PriceAPT        decimal.Decimal `json:"price_apt"`
	SizeMB          decimal.Decimal `json:"size_mb"`
	Format          string          `json:"format"`
	IPFSURI         string          `json:"ipfs_uri"`
	OwnerWallet     string          `json:"owner_wallet"`
	IsMinted        bool            `json:"is_minted"`
	TransactionHash string          `json:"transaction_hash,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
}

// DatasetCreate represents request for POST /api/datasets/
type DatasetCreate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	PriceAPT    decimal.Decimal `json:"price_apt"`
	SizeMB      decimal.Decimal `json:"size_mb"`
	Format      string          `json:"format"`
	IPFSURI     string          `json:"ipfs_uri"`
	OwnerWallet string          `json:"owner_wallet"`
}

// Validate validates DatasetCreate fields
func (r *DatasetCreate) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if !r.PriceAPT.IsPositive() {
		return fmt.Errorf("price_apt must be greater than 0")
	}
	if r.SizeMB.IsNegative() {
		return fmt.Errorf("size_mb must not be negative")
	}
	return nil
}

// DatasetQuery represents filter parameters for GET /api/datasets/
type DatasetQuery struct {
	Category string
	Search   string
}

// MintedRequest represents request for POST /api/datasets/mint/{id}
type MintedRequest struct {
	TransactionHash string `json:"transaction_hash"`
}

// PurchaseRequest represents request for POST /api/datasets/purchase
type PurchaseRequest struct {
	DatasetID       int64       `json:"dataset_id"`
	BuyerWallet     string      `json:"buyer_wallet"`
	LicenseType     LicenseType `json:"license_type"`
	TransactionHash string      `json:"transaction_hash"`
}

// License represents a purchased dataset license
type License struct {
	ID              int64       `json:"id"`
	DatasetID       int64       `json:"dataset_id"`
	BuyerWallet     string      `json:"buyer_wallet"`
	LicenseType     LicenseType `json:"license_type"`
	TransactionHash string      `json:"transaction_hash"`
	Dataset         *Dataset    `json:"dataset,omitempty"`
	PurchasedAt     *time.Time  `json:"purchased_at,omitempty"`
}

// PurchaseBody represents request for POST /datasets/{id}/purchase
type PurchaseBody struct {
	LicenseType LicenseType `json:"license_type"`
}
