package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/wallet"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrNotConnected is returned when a flow needs a wallet session
	ErrNotConnected = wallet.ErrNotConnected
	// ErrInsufficientBalance is returned when the session balance is below the dataset price
	ErrInsufficientBalance = errors.New("insufficient balance to purchase this dataset")
	// ErrAlreadyMinted is returned when minting a dataset that already has an NFT
	ErrAlreadyMinted = errors.New("dataset already minted")
	// ErrNotOwner is returned when minting a dataset owned by another wallet
	ErrNotOwner = errors.New("dataset is owned by another wallet")
)

// Backend is the part of the marketplace backend the flows use
type Backend interface {
	ListDatasets(ctx context.Context, q model.DatasetQuery) ([]model.Dataset, error)
	GetDataset(ctx context.Context, id int64) (*model.Dataset, error)
	CreateDataset(ctx context.Context, req model.DatasetCreate) (*model.Dataset, error)
	MarkMinted(ctx context.Context, id int64, txHash string) error
	PurchaseLicense(ctx context.Context, req model.PurchaseRequest) (*model.License, error)
	UserLicenses(ctx context.Context, wallet string) ([]model.License, error)
	UserDatasets(ctx context.Context, wallet string) ([]model.Dataset, error)
	Categories(ctx context.Context) ([]string, error)
	PayLicense(ctx context.Context, req model.PayLicenseRequest) (*model.TxAck, error)
	MintDataset(ctx context.Context, req model.MintRequest) (*model.TxAck, error)
	GetTransaction(ctx context.Context, hash string) (json.RawMessage, error)
}

// Session is what the flows need from the wallet session
type Session interface {
	Connected() bool
	Address() string
	PrivateKey() wallet.PrivateKey
	BalanceAPT() decimal.Decimal
	RefreshBalance(ctx context.Context)
}

// Service runs the marketplace flows on behalf of the connected wallet
type Service struct {
	backend Backend
	session Session
	now     func() time.Time
}

// NewService creates a marketplace service bound to one wallet session
func NewService(backend Backend, session Session) *Service {
	return &Service{
		backend: backend,
		session: session,
		now:     time.Now,
	}
}

// Browse lists datasets, category "All" or empty means every category
func (s *Service) Browse(ctx context.Context, category, search string) ([]model.Dataset, error) {
	datasets, err := s.backend.ListDatasets(ctx, model.DatasetQuery{Category: category, Search: search})
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, nil
}

// Dataset gets one dataset
func (s *Service) Dataset(ctx context.Context, id int64) (*model.Dataset, error) {
	dataset, err := s.backend.GetDataset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset %d: %w", id, err)
	}
	return dataset, nil
}

// Categories lists dataset categories
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.backend.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Transaction looks up a transaction by hash
func (s *Service) Transaction(ctx context.Context, hash string) (json.RawMessage, error) {
	if hash == "" {
		return nil, errors.New("transaction hash is required")
	}
	tx, err := s.backend.GetTransaction(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// Upload lists a new dataset owned by the connected wallet
func (s *Service) Upload(ctx context.Context, req model.DatasetCreate) (*model.Dataset, error) {
	address, err := s.connectedAddress()
	if err != nil {
		return nil, err
	}

	req.OwnerWallet = address
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dataset, err := s.backend.CreateDataset(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload dataset: %w", err)
	}

	log.WithFields(log.Fields{
		"address":    address,
		"dataset_id": dataset.ID,
	}).Info("dataset uploaded")
	return dataset, nil
}

// Purchase pays for a license of datasetID and records it.
// The balance is checked against the price before any payment is sent.
func (s *Service) Purchase(ctx context.Context, datasetID int64, licenseType model.LicenseType) (*model.License, error) {
	address, err := s.connectedAddress()
	if err != nil {
		return nil, err
	}

	if licenseType == "" {
		licenseType = model.LicenseStandard
	}
	if err := licenseType.Validate(); err != nil {
		return nil, err
	}

	dataset, err := s.Dataset(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	if s.session.BalanceAPT().LessThan(dataset.PriceAPT) {
		return nil, ErrInsufficientBalance
	}

	payment, err := s.backend.PayLicense(ctx, model.PayLicenseRequest{
		BuyerAddress: address,
		DatasetID:    dataset.ID,
		Amount:       dataset.PriceAPT,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pay license: %w", err)
	}

	license, err := s.backend.PurchaseLicense(ctx, model.PurchaseRequest{
		DatasetID:       dataset.ID,
		BuyerWallet:     address,
		LicenseType:     licenseType,
		TransactionHash: payment.TransactionHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase (payment %s): %w", payment.TransactionHash, err)
	}

	log.WithFields(log.Fields{
		"address":    address,
		"dataset_id": dataset.ID,
		"tx":         payment.TransactionHash,
	}).Info("license purchased")

	s.session.RefreshBalance(ctx)
	return license, nil
}

// Mint mints the NFT of a dataset owned by the connected wallet and records the transaction
func (s *Service) Mint(ctx context.Context, datasetID int64) (string, error) {
	address, err := s.connectedAddress()
	if err != nil {
		return "", err
	}
	key := s.session.PrivateKey()
	if key == "" {
		return "", ErrNotConnected
	}

	dataset, err := s.Dataset(ctx, datasetID)
	if err != nil {
		return "", err
	}
	if dataset.OwnerWallet != "" && dataset.OwnerWallet != address {
		return "", ErrNotOwner
	}
	if dataset.IsMinted {
		return "", ErrAlreadyMinted
	}

	id := strconv.FormatInt(dataset.ID, 10)
	ack, err := s.backend.MintDataset(ctx, model.MintRequest{
		PrivateKey: key.Reveal(),
		DatasetID:  dataset.ID,
		Hash:       fmt.Sprintf("hash_%s_%d", id, s.now().UnixMilli()),
		URI:        "ipfs://dataset_" + id,
	})
	if err != nil {
		return "", fmt.Errorf("failed to mint dataset: %w", err)
	}
	if !ack.Success || ack.TransactionHash == "" {
		msg := ack.Error
		if msg == "" {
			msg = "minting failed"
		}
		return "", fmt.Errorf("failed to mint dataset: %s", msg)
	}

	if err := s.backend.MarkMinted(ctx, dataset.ID, ack.TransactionHash); err != nil {
		return "", fmt.Errorf("failed to record mint (tx %s): %w", ack.TransactionHash, err)
	}

	log.WithFields(log.Fields{
		"address":    address,
		"dataset_id": dataset.ID,
		"tx":         ack.TransactionHash,
	}).Info("dataset minted")

	s.session.RefreshBalance(ctx)
	return ack.TransactionHash, nil
}

// MyDatasets lists datasets owned by the connected wallet, empty when disconnected
func (s *Service) MyDatasets(ctx context.Context) ([]model.Dataset, error) {
	address, err := s.connectedAddress()
	if err != nil {
		return []model.Dataset{}, nil
	}
	datasets, err := s.backend.UserDatasets(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned datasets: %w", err)
	}
	return datasets, nil
}

// MyLicenses lists licenses bought by the connected wallet, empty when disconnected
func (s *Service) MyLicenses(ctx context.Context) ([]model.License, error) {
	address, err := s.connectedAddress()
	if err != nil {
		return []model.License{}, nil
	}
	licenses, err := s.backend.UserLicenses(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	return licenses, nil
}

func (s *Service) connectedAddress() (string, error) {
	address := s.session.Address()
	if !s.session.Connected() || address == "" {
		return "", ErrNotConnected
	}
	return address, nil
}
