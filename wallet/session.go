// Package wallet owns the marketplace wallet session: the connected account,
// its key and its last known balance, kept in sync with the session store and
// the backend account service.
package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/AlexZinkM/dataset-wallet/internal/common"
	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/internal/storage"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	// InitialFundOctas is requested for every freshly created account (1 APT)
	InitialFundOctas = 1 * common.OctasPerAPT
	// FundOctas is requested by Fund (1 APT)
	FundOctas = 1 * common.OctasPerAPT
	// DefaultSettleDelay lets the ledger finalize a funding transaction before the balance is read
	DefaultSettleDelay = 3 * time.Second
)

// ErrNotConnected is returned by operations that need an active session
var ErrNotConnected = errors.New("wallet not connected")

// AccountService is the part of the backend the session depends on
type AccountService interface {
	CreateAccount(ctx context.Context) (*model.CreateAccountResponse, error)
	GetBalance(ctx context.Context, address string) (*model.BalanceResponse, error)
	FundAccount(ctx context.Context, address string, amount uint64) (*model.TxAck, error)
}

// AccountCreationError is returned by Connect when the backend cannot create an account
type AccountCreationError struct {
	Err error
}

func (e *AccountCreationError) Error() string {
	return "failed to create account: " + e.Err.Error()
}

func (e *AccountCreationError) Unwrap() error {
	return e.Err
}

// IsAccountCreationError checks if error is AccountCreationError
func IsAccountCreationError(err error) bool {
	var target *AccountCreationError
	return errors.As(err, &target)
}

// Account is the identity of a connected session
type Account struct {
	Address    string
	PrivateKey PrivateKey
}

// Option configures a Session
type Option func(*Session)

// WithSettleDelay overrides DefaultSettleDelay
func WithSettleDelay(d time.Duration) Option {
	return func(s *Session) {
		s.settleDelay = d
	}
}

// WithSleep replaces the settle wait, mostly for tests
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Session) {
		s.sleep = sleep
	}
}

// Session is the wallet session. Disconnected until Init or Connect finds or
// creates an account, Connected until Disconnect.
//
// Field updates are atomic; operations are not serialized against each
// other, callers keep at most one mutation in flight.
type Session struct {
	accounts    AccountService
	store       storage.SessionStore
	settleDelay time.Duration
	sleep       func(ctx context.Context, d time.Duration) error

	lock      sync.RWMutex
	connected bool
	address   string
	key       PrivateKey
	balance   decimal.Decimal
}

// NewSession creates a disconnected session
func NewSession(accounts AccountService, store storage.SessionStore, opts ...Option) *Session {
	s := &Session{
		accounts:    accounts,
		store:       store,
		settleDelay: DefaultSettleDelay,
		sleep:       sleepContext,
		balance:     decimal.Zero,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init hydrates the session from the store if a record exists, then refreshes the balance.
// It never creates an account.
func (s *Session) Init(ctx context.Context) {
	if _, ok := s.restore(ctx); ok {
		s.RefreshBalance(ctx)
	}
}

// Connect restores the stored session or creates, persists and funds a new account.
// Only account creation failures are returned, as *AccountCreationError.
func (s *Session) Connect(ctx context.Context) (Account, error) {
	if acc, ok := s.restore(ctx); ok {
		s.RefreshBalance(ctx)
		return acc, nil
	}

	resp, err := s.accounts.CreateAccount(ctx)
	if err != nil {
		return Account{}, &AccountCreationError{Err: err}
	}
	if resp.Address == "" || resp.PrivateKey == "" {
		return Account{}, &AccountCreationError{Err: errors.New("backend returned an incomplete account")}
	}

	acc := Account{Address: resp.Address, PrivateKey: PrivateKey(resp.PrivateKey)}
	s.set(acc)

	logger := log.WithField("address", acc.Address)
	logger.Info("created wallet account")

	record := model.SessionRecord{Address: acc.Address, PrivateKey: acc.PrivateKey.Reveal()}
	if err := s.store.Save(ctx, record); err != nil {
		logger.WithError(err).Warn("failed to persist wallet session")
	}

	fundLogger := logger.WithField("amount_apt", common.OctasToAPT(InitialFundOctas).String())
	if _, err := s.accounts.FundAccount(ctx, acc.Address, InitialFundOctas); err != nil {
		fundLogger.WithError(err).Warn("failed to fund new account")
	} else {
		fundLogger.Info("funded new account")
	}

	s.RefreshBalance(ctx)
	return acc, nil
}

// Disconnect clears the session and removes the stored record. Safe to call when disconnected.
func (s *Session) Disconnect(ctx context.Context) {
	s.lock.Lock()
	address := s.address
	s.connected = false
	s.address = ""
	s.key = ""
	s.balance = decimal.Zero
	s.lock.Unlock()

	if err := s.store.Remove(ctx); err != nil {
		log.WithError(err).Warn("failed to remove wallet session")
	}
	if address != "" {
		log.WithField("address", address).Info("wallet disconnected")
	}
}

// RefreshBalance reads the balance of the current address.
// A failed read sets the balance to zero instead of leaving a stale value.
func (s *Session) RefreshBalance(ctx context.Context) {
	address := s.Address()
	if address == "" {
		return
	}

	balance := decimal.Zero
	resp, err := s.accounts.GetBalance(ctx, address)
	switch {
	case err != nil:
		log.WithError(err).WithField("address", address).Warn("failed to fetch balance")
	case resp != nil && resp.BalanceAPT != nil && resp.BalanceAPT.IsPositive():
		balance = *resp.BalanceAPT
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	// the session may have been disconnected or replaced while the call was in flight
	if s.address == address {
		s.balance = balance
	}
}

// Fund requests FundOctas for the current account, waits for the ledger to
// settle and refreshes the balance. Returns false when disconnected or when
// the funding request fails.
func (s *Session) Fund(ctx context.Context) bool {
	s.lock.RLock()
	connected, address := s.connected, s.address
	s.lock.RUnlock()

	if !connected || address == "" {
		return false
	}

	logger := log.WithFields(log.Fields{
		"address":    address,
		"amount_apt": common.OctasToAPT(FundOctas).String(),
	})
	if _, err := s.accounts.FundAccount(ctx, address, FundOctas); err != nil {
		logger.WithError(err).Warn("failed to fund account")
		return false
	}

	if err := s.sleep(ctx, s.settleDelay); err != nil {
		// funding went through, only the balance read is skipped
		logger.WithError(err).Debug("settle wait interrupted")
		return true
	}

	s.RefreshBalance(ctx)
	return true
}

// Connected reports whether a session is active
func (s *Session) Connected() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.connected
}

// Address returns the account address, empty when disconnected
func (s *Session) Address() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.address
}

// PrivateKey returns the key handle, empty when disconnected
func (s *Session) PrivateKey() PrivateKey {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.key
}

// BalanceAPT returns the last known balance in whole APT
func (s *Session) BalanceAPT() decimal.Decimal {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.balance
}

// Snapshot returns the session state as shown to the view layer (no key)
func (s *Session) Snapshot() model.WalletState {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return model.WalletState{
		Connected:  s.connected,
		Address:    s.address,
		BalanceAPT: s.balance.String(),
	}
}

func (s *Session) restore(ctx context.Context) (Account, bool) {
	record, err := s.store.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to load wallet session")
		return Account{}, false
	}
	if !record.Valid() {
		return Account{}, false
	}

	acc := Account{Address: record.Address, PrivateKey: PrivateKey(record.PrivateKey)}
	s.set(acc)
	log.WithField("address", acc.Address).Debug("restored wallet session")
	return acc, true
}

func (s *Session) set(acc Account) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.address != acc.Address {
		s.balance = decimal.Zero
	}
	s.connected = true
	s.address = acc.Address
	s.key = acc.PrivateKey
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
