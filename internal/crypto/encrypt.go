package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AlexZinkM/dataset-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen   = 32
	nonceLen  = 12
	keyLength = 32
)

// Params are the scrypt cost parameters used to derive the session key
type Params struct {
	N int
	R int
	P int
}

// DefaultParams favors security over speed.
//
// N=2^18 (~256MB RAM, 0.5-2s per derivation). The session is sealed once per
// connect and opened once per start, so the cost is paid rarely.
var DefaultParams = Params{N: 1 << 18, R: 8, P: 1}

// SealSession encrypts the session record with a key derived from password.
// password must be []byte for security (caller should zero it after use)
func SealSession(record *model.SessionRecord, password []byte, params Params) (*model.SealedSession, error) {
	if !record.Valid() {
		return nil, errors.New("session record must have address and private key")
	}
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt, params)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session record: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, []byte(record.Address))

	return &model.SealedSession{
		Address:    record.Address,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

func newGCM(password, salt []byte, params Params) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
