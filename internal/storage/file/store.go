package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlexZinkM/dataset-wallet/internal/crypto"
	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/internal/storage"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PasswordFunc returns the session password. Caller zeroes the returned slice.
type PasswordFunc func() ([]byte, error)

type sessionFile struct {
	Key     string               `json:"key"`
	Session *model.SessionRecord `json:"session,omitempty"`
	Sealed  *model.SealedSession `json:"sealed,omitempty"`
}

type sessionStore struct {
	lock     sync.Mutex
	filePath string
	password PasswordFunc
	params   crypto.Params
}

// NewSessionStore returns a SessionStore backed by a single JSON file.
// When password is not nil the record is sealed with scrypt + AES-GCM.
func NewSessionStore(filePath string, password PasswordFunc, params crypto.Params) (storage.SessionStore, error) {
	if filePath == "" {
		return nil, errors.New("session file path must not be empty")
	}
	if filepath.Ext(filePath) != ".json" {
		return nil, errors.New("session file must have .json extension")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &sessionStore{
		filePath: filePath,
		password: password,
		params:   params,
	}, nil
}

func (s *sessionStore) Load(_ context.Context) (*model.SessionRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	file, err := s.read()
	if err != nil || file == nil {
		return nil, err
	}

	if file.Sealed != nil {
		if s.password == nil {
			return nil, errors.New("session file is encrypted but no password is configured")
		}
		pw, err := s.password()
		if err != nil {
			return nil, err
		}
		defer clear(pw)
		return crypto.OpenSession(file.Sealed, pw, s.params)
	}

	if !file.Session.Valid() {
		return nil, nil
	}
	return file.Session, nil
}

func (s *sessionStore) Save(_ context.Context, record model.SessionRecord) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	file := &sessionFile{Key: storage.SessionKey}
	if s.password != nil {
		pw, err := s.password()
		if err != nil {
			return err
		}
		defer clear(pw)

		sealed, err := crypto.SealSession(&record, pw, s.params)
		if err != nil {
			return fmt.Errorf("failed to seal session: %w", err)
		}
		file.Sealed = sealed
	} else {
		file.Session = &record
	}

	return s.write(file)
}

func (s *sessionStore) Remove(_ context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (s *sessionStore) Close() error {
	return nil
}

// Reseal re-encrypts the stored session with a new password.
// It is a no-op when no session is stored.
func Reseal(filePath string, oldPassword, newPassword []byte, params crypto.Params) error {
	s := &sessionStore{filePath: filePath}
	file, err := s.read()
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	var sealed *model.SealedSession
	if file.Sealed != nil {
		sealed, err = crypto.ResealSession(file.Sealed, oldPassword, newPassword, params)
	} else {
		sealed, err = crypto.SealSession(file.Session, newPassword, params)
	}
	if err != nil {
		return err
	}

	return s.write(&sessionFile{Key: storage.SessionKey, Sealed: sealed})
}

func (s *sessionStore) read() (*sessionFile, error) {
	fileData, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	// Skip UTF-8 BOM if present
	fileData = bytes.TrimPrefix(fileData, utf8BOM)
	if len(bytes.TrimSpace(fileData)) == 0 {
		return nil, nil
	}

	var file sessionFile
	if err := json.Unmarshal(fileData, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	if file.Key != storage.SessionKey {
		return nil, nil
	}
	return &file, nil
}

func (s *sessionStore) write(file *sessionFile) error {
	fileData, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}

	// Write to a temp file first so a crash never leaves half a session behind
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, fileData, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
