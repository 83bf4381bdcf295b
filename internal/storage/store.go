package storage

import (
	"context"
	"sync"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
)

// SessionKey is the well-known key the session record lives under
const SessionKey = "marketplace_wallet"

// SessionStore persists at most one wallet session.
// Load returns (nil, nil) when no session is stored.
// Save overwrites any previous record, Remove is idempotent.
type SessionStore interface {
	Load(ctx context.Context) (*model.SessionRecord, error)
	Save(ctx context.Context, record model.SessionRecord) error
	Remove(ctx context.Context) error
	Close() error
}

type memoryStore struct {
	lock   sync.RWMutex
	record *model.SessionRecord
}

// NewMemoryStore returns a SessionStore that lives as long as the process
func NewMemoryStore() SessionStore {
	return &memoryStore{}
}

func (m *memoryStore) Load(_ context.Context) (*model.SessionRecord, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.record == nil {
		return nil, nil
	}
	rec := *m.record
	return &rec, nil
}

func (m *memoryStore) Save(_ context.Context, record model.SessionRecord) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.record = &record
	return nil
}

func (m *memoryStore) Remove(_ context.Context) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.record = nil
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
