package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
)

// ErrInvalidPassword is returned when the sealed session cannot be authenticated
var ErrInvalidPassword = errors.New("invalid password")

// OpenSession decrypts a sealed session.
// password must be []byte for security (caller should zero it after use)
func OpenSession(sealed *model.SealedSession, password []byte, params Params) (*model.SessionRecord, error) {
	salt, err := base64.StdEncoding.DecodeString(sealed.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(sealed.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}
	if len(nonce) != nonceLen {
		return nil, fmt.Errorf("invalid nonce length")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(sealed.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := newGCM(password, salt, params)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, []byte(sealed.Address))
	if err != nil {
		return nil, ErrInvalidPassword
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var record model.SessionRecord
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session record: %w", err)
	}
	if record.Address != sealed.Address {
		return nil, errors.New("sealed address does not match session record")
	}

	return &record, nil
}

// ResealSession opens a sealed session with oldPassword and seals it again with newPassword
func ResealSession(sealed *model.SealedSession, oldPassword, newPassword []byte, params Params) (*model.SealedSession, error) {
	record, err := OpenSession(sealed, oldPassword, params)
	if err != nil {
		return nil, err
	}
	return SealSession(record, newPassword, params)
}
