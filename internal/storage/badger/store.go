package badgerstore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/internal/storage"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/timshannon/badgerhold/v4"
)

type sessionStore struct {
	store *badgerhold.Store
}

// NewSessionStore opens a badger backed SessionStore under baseDbDir/session.
// An empty baseDbDir keeps the store in memory.
func NewSessionStore(
	baseDbDir string, logger badger.Logger,
) (storage.SessionStore, error) {
	var sessionDir string
	if len(baseDbDir) > 0 {
		sessionDir = filepath.Join(baseDbDir, "session")
	}

	store, err := createDb(sessionDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	return &sessionStore{store}, nil
}

func (s *sessionStore) Load(_ context.Context) (*model.SessionRecord, error) {
	var record model.SessionRecord
	if err := s.store.Get(storage.SessionKey, &record); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (s *sessionStore) Save(_ context.Context, record model.SessionRecord) error {
	return s.store.Upsert(storage.SessionKey, &record)
}

func (s *sessionStore) Remove(_ context.Context) error {
	if err := s.store.Delete(storage.SessionKey, model.SessionRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}
	return nil
}

func (s *sessionStore) Close() error {
	return s.store.Close()
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}
