package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/internal/storage"
	"github.com/AlexZinkM/dataset-wallet/wallet"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts struct {
	fundErr error
	funds   int
}

func (s *stubAccounts) CreateAccount(context.Context) (*model.CreateAccountResponse, error) {
	return &model.CreateAccountResponse{Address: "0xABC", PrivateKey: "k1"}, nil
}

func (s *stubAccounts) GetBalance(context.Context, string) (*model.BalanceResponse, error) {
	balance := decimal.NewFromInt(2)
	return &model.BalanceResponse{BalanceAPT: &balance}, nil
}

func (s *stubAccounts) FundAccount(context.Context, string, uint64) (*model.TxAck, error) {
	s.funds++
	return &model.TxAck{Success: true}, s.fundErr
}

func (s *stubAccounts) GetInfo(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"chain_id":4}`), nil
}

type downBackend struct{}

func (downBackend) GetInfo(context.Context) (json.RawMessage, error) {
	return nil, errors.New("connection refused")
}

func newTestSession(accounts wallet.AccountService) *wallet.Session {
	noSleep := func(context.Context, time.Duration) error { return nil }
	return wallet.NewSession(accounts, storage.NewMemoryStore(), wallet.WithSleep(noSleep))
}

func TestFundSession(t *testing.T) {
	ctx := context.Background()

	t.Run("disconnected", func(t *testing.T) {
		accounts := &stubAccounts{}
		_, err := fundSession(ctx, newTestSession(accounts))
		require.ErrorIs(t, err, wallet.ErrNotConnected)
		assert.Zero(t, accounts.funds)
	})

	t.Run("connected", func(t *testing.T) {
		accounts := &stubAccounts{}
		session := newTestSession(accounts)
		_, err := session.Connect(ctx)
		require.NoError(t, err)

		balance, err := fundSession(ctx, session)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2).Equal(balance))
		assert.Equal(t, 2, accounts.funds)
	})

	t.Run("funding failure", func(t *testing.T) {
		accounts := &stubAccounts{}
		session := newTestSession(accounts)
		_, err := session.Connect(ctx)
		require.NoError(t, err)
		accounts.fundErr = errors.New("faucet down")

		_, err = fundSession(ctx, session)
		require.Error(t, err)
		assert.NotErrorIs(t, err, wallet.ErrNotConnected)
	})
}

func TestStatusReport(t *testing.T) {
	ctx := context.Background()
	accounts := &stubAccounts{}
	session := newTestSession(accounts)
	_, err := session.Connect(ctx)
	require.NoError(t, err)

	out, err := json.Marshal(newStatusReport(ctx, session, accounts))
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet":{"connected":true,"address":"0xABC","balance_apt":"2"},"backend":{"chain_id":4}}`, string(out))

	out, err = json.Marshal(newStatusReport(ctx, session, downBackend{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallet":{"connected":true,"address":"0xABC","balance_apt":"2"},"backend":null}`, string(out))
}
