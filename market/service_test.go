package market

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/AlexZinkM/dataset-wallet/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func connectedSession(balance string) *fakeSession {
	return &fakeSession{
		address: "0xBUYER",
		key:     "k1",
		balance: decimal.RequireFromString(balance),
	}
}

func testDataset() *model.Dataset {
	return &model.Dataset{
		ID:          7,
		Title:       "Retinal scans",
		PriceAPT:    decimal.RequireFromString("2.5"),
		OwnerWallet: "0xOWNER",
	}
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		backend := &mockBackend{}
		session := connectedSession("3")
		svc := NewService(backend, session)

		backend.On("GetDataset", int64(7)).Return(testDataset(), nil)
		backend.On("PayLicense", mock.MatchedBy(func(req model.PayLicenseRequest) bool {
			return req.BuyerAddress == "0xBUYER" && req.DatasetID == 7 && req.Amount.Equal(decimal.RequireFromString("2.5"))
		})).Return(&model.TxAck{Success: true, TransactionHash: "0xpay"}, nil)
		backend.On("PurchaseLicense", model.PurchaseRequest{
			DatasetID:       7,
			BuyerWallet:     "0xBUYER",
			LicenseType:     model.LicenseStandard,
			TransactionHash: "0xpay",
		}).Return(&model.License{ID: 1, DatasetID: 7, TransactionHash: "0xpay"}, nil)

		license, err := svc.Purchase(ctx, 7, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), license.ID)
		assert.Equal(t, 1, session.refreshes)
		backend.AssertExpectations(t)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		backend := &mockBackend{}
		session := connectedSession("2.49")
		svc := NewService(backend, session)

		backend.On("GetDataset", int64(7)).Return(testDataset(), nil)

		_, err := svc.Purchase(ctx, 7, model.LicenseCommercial)
		require.ErrorIs(t, err, ErrInsufficientBalance)
		backend.AssertNotCalled(t, "PayLicense", mock.Anything)
		assert.Zero(t, session.refreshes)
	})

	t.Run("not connected", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, &fakeSession{})

		_, err := svc.Purchase(ctx, 7, model.LicenseStandard)
		require.ErrorIs(t, err, ErrNotConnected)
		backend.AssertNotCalled(t, "GetDataset", mock.Anything)
	})

	t.Run("invalid license type", func(t *testing.T) {
		svc := NewService(&mockBackend{}, connectedSession("10"))

		_, err := svc.Purchase(ctx, 7, "lifetime")
		require.Error(t, err)
	})

	t.Run("payment failure", func(t *testing.T) {
		backend := &mockBackend{}
		session := connectedSession("10")
		svc := NewService(backend, session)

		backend.On("GetDataset", int64(7)).Return(testDataset(), nil)
		backend.On("PayLicense", mock.Anything).Return(nil, errors.New("chain busy"))

		_, err := svc.Purchase(ctx, 7, model.LicenseExclusive)
		require.Error(t, err)
		backend.AssertNotCalled(t, "PurchaseLicense", mock.Anything)
		assert.Zero(t, session.refreshes)
	})
}

func TestMint(t *testing.T) {
	ctx := context.Background()
	fixed := time.UnixMilli(1700000000123)

	owned := func() *model.Dataset {
		d := testDataset()
		d.OwnerWallet = "0xBUYER"
		return d
	}

	t.Run("success", func(t *testing.T) {
		backend := &mockBackend{}
		session := connectedSession("1")
		svc := NewService(backend, session)
		svc.now = func() time.Time { return fixed }

		backend.On("GetDataset", int64(7)).Return(owned(), nil)
		backend.On("MintDataset", model.MintRequest{
			PrivateKey: "k1",
			DatasetID:  7,
			Hash:       "hash_7_1700000000123",
			URI:        "ipfs://dataset_7",
		}).Return(&model.TxAck{Success: true, TransactionHash: "0xmint"}, nil)
		backend.On("MarkMinted", int64(7), "0xmint").Return(nil)

		tx, err := svc.Mint(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "0xmint", tx)
		assert.Equal(t, 1, session.refreshes)
		backend.AssertExpectations(t)
	})

	t.Run("backend reports failure", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, connectedSession("1"))

		backend.On("GetDataset", int64(7)).Return(owned(), nil)
		backend.On("MintDataset", mock.Anything).Return(&model.TxAck{Success: false, Error: "out of gas"}, nil)

		_, err := svc.Mint(ctx, 7)
		require.ErrorContains(t, err, "out of gas")
		backend.AssertNotCalled(t, "MarkMinted", mock.Anything, mock.Anything)
	})

	t.Run("success without transaction hash", func(t *testing.T) {
		backend := &mockBackend{}
		session := connectedSession("1")
		svc := NewService(backend, session)

		backend.On("GetDataset", int64(7)).Return(owned(), nil)
		backend.On("MintDataset", mock.Anything).Return(&model.TxAck{Success: true}, nil)

		_, err := svc.Mint(ctx, 7)
		require.ErrorContains(t, err, "minting failed")
		backend.AssertNotCalled(t, "MarkMinted", mock.Anything, mock.Anything)
		assert.Zero(t, session.refreshes)
	})

	t.Run("not owner", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, connectedSession("1"))
		backend.On("GetDataset", int64(7)).Return(testDataset(), nil)

		_, err := svc.Mint(ctx, 7)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("already minted", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, connectedSession("1"))
		d := owned()
		d.IsMinted = true
		backend.On("GetDataset", int64(7)).Return(d, nil)

		_, err := svc.Mint(ctx, 7)
		require.ErrorIs(t, err, ErrAlreadyMinted)
	})

	t.Run("missing key", func(t *testing.T) {
		svc := NewService(&mockBackend{}, &fakeSession{address: "0xBUYER"})

		_, err := svc.Mint(ctx, 7)
		require.ErrorIs(t, err, ErrNotConnected)
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("owner is the session address", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, connectedSession("0"))

		req := model.DatasetCreate{
			Title:       "Traffic",
			Category:    "Transportation",
			PriceAPT:    decimal.RequireFromString("1.2"),
			SizeMB:      decimal.RequireFromString("300"),
			OwnerWallet: "0xSPOOFED",
		}
		backend.On("CreateDataset", mock.MatchedBy(func(r model.DatasetCreate) bool {
			return r.OwnerWallet == "0xBUYER" && r.Title == "Traffic"
		})).Return(&model.Dataset{ID: 11, OwnerWallet: "0xBUYER"}, nil)

		dataset, err := svc.Upload(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(11), dataset.ID)
		backend.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(&mockBackend{}, connectedSession("0"))

		_, err := svc.Upload(ctx, model.DatasetCreate{Title: "x", Category: "y"})
		require.Error(t, err)
	})

	t.Run("not connected", func(t *testing.T) {
		svc := NewService(&mockBackend{}, &fakeSession{})

		_, err := svc.Upload(ctx, model.DatasetCreate{})
		require.ErrorIs(t, err, ErrNotConnected)
	})
}

func TestMyListings(t *testing.T) {
	ctx := context.Background()

	t.Run("disconnected is empty", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, &fakeSession{})

		datasets, err := svc.MyDatasets(ctx)
		require.NoError(t, err)
		assert.Empty(t, datasets)

		licenses, err := svc.MyLicenses(ctx)
		require.NoError(t, err)
		assert.Empty(t, licenses)
		backend.AssertExpectations(t)
	})

	t.Run("connected", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewService(backend, connectedSession("0"))
		backend.On("UserDatasets", "0xBUYER").Return([]model.Dataset{{ID: 1}}, nil)
		backend.On("UserLicenses", "0xBUYER").Return([]model.License{{ID: 2}, {ID: 3}}, nil)

		datasets, err := svc.MyDatasets(ctx)
		require.NoError(t, err)
		assert.Len(t, datasets, 1)

		licenses, err := svc.MyLicenses(ctx)
		require.NoError(t, err)
		assert.Len(t, licenses, 2)
	})
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()
	backend := &mockBackend{}
	svc := NewService(backend, &fakeSession{})

	backend.On("ListDatasets", model.DatasetQuery{Category: "Finance", Search: "fx"}).Return([]model.Dataset{{ID: 4}}, nil)
	backend.On("Categories").Return([]string{"Finance"}, nil)
	backend.On("GetTransaction", "0xtx").Return(json.RawMessage(`{"version":"1"}`), nil)

	datasets, err := svc.Browse(ctx, "Finance", "fx")
	require.NoError(t, err)
	assert.Len(t, datasets, 1)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance"}, categories)

	tx, err := svc.Transaction(ctx, "0xtx")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1"}`, string(tx))

	_, err = svc.Transaction(ctx, "")
	require.Error(t, err)
}
