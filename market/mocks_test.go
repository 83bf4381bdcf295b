package market

import (
	"context"
	"encoding/json"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/wallet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

/*
 * Backend
 */
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) ListDatasets(ctx context.Context, q model.DatasetQuery) ([]model.Dataset, error) {
	args := m.Called(q)

	var res []model.Dataset
	if a := args.Get(0); a != nil {
		res = a.([]model.Dataset)
	}
	return res, args.Error(1)
}

func (m *mockBackend) GetDataset(ctx context.Context, id int64) (*model.Dataset, error) {
	args := m.Called(id)

	var res *model.Dataset
	if a := args.Get(0); a != nil {
		res = a.(*model.Dataset)
	}
	return res, args.Error(1)
}

func (m *mockBackend) CreateDataset(ctx context.Context, req model.DatasetCreate) (*model.Dataset, error) {
	args := m.Called(req)

	var res *model.Dataset
	if a := args.Get(0); a != nil {
		res = a.(*model.Dataset)
	}
	return res, args.Error(1)
}

func (m *mockBackend) MarkMinted(ctx context.Context, id int64, txHash string) error {
	args := m.Called(id, txHash)
	return args.Error(0)
}

func (m *mockBackend) PurchaseLicense(ctx context.Context, req model.PurchaseRequest) (*model.License, error) {
	args := m.Called(req)

	var res *model.License
	if a := args.Get(0); a != nil {
		res = a.(*model.License)
	}
	return res, args.Error(1)
}

func (m *mockBackend) UserLicenses(ctx context.Context, wallet string) ([]model.License, error) {
	args := m.Called(wallet)

	var res []model.License
	if a := args.Get(0); a != nil {
		res = a.([]model.License)
	}
	return res, args.Error(1)
}

func (m *mockBackend) UserDatasets(ctx context.Context, wallet string) ([]model.Dataset, error) {
	args := m.Called(wallet)

	var res []model.Dataset
	if a := args.Get(0); a != nil {
		res = a.([]model.Dataset)
	}
	return res, args.Error(1)
}

func (m *mockBackend) Categories(ctx context.Context) ([]string, error) {
	args := m.Called()

	var res []string
	if a := args.Get(0); a != nil {
		res = a.([]string)
	}
	return res, args.Error(1)
}

func (m *mockBackend) PayLicense(ctx context.Context, req model.PayLicenseRequest) (*model.TxAck, error) {
	args := m.Called(req)

	var res *model.TxAck
	if a := args.Get(0); a != nil {
		res = a.(*model.TxAck)
	}
	return res, args.Error(1)
}

func (m *mockBackend) MintDataset(ctx context.Context, req model.MintRequest) (*model.TxAck, error) {
	args := m.Called(req)

	var res *model.TxAck
	if a := args.Get(0); a != nil {
		res = a.(*model.TxAck)
	}
	return res, args.Error(1)
}

func (m *mockBackend) GetTransaction(ctx context.Context, hash string) (json.RawMessage, error) {
	args := m.Called(hash)

	var res json.RawMessage
	if a := args.Get(0); a != nil {
		res = a.(json.RawMessage)
	}
	return res, args.Error(1)
}

/*
 * Session
 */
type fakeSession struct {
	address   string
	key       wallet.PrivateKey
	balance   decimal.Decimal
	refreshes int
}

func (f *fakeSession) Connected() bool                  { return f.address != "" }
func (f *fakeSession) Address() string                  { return f.address }
func (f *fakeSession) PrivateKey() wallet.PrivateKey    { return f.key }
func (f *fakeSession) BalanceAPT() decimal.Decimal      { return f.balance }
func (f *fakeSession) RefreshBalance(_ context.Context) { f.refreshes++ }
