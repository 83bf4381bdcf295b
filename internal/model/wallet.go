package model

// SessionRecord is the persisted wallet session: one entry under a fixed key
type SessionRecord struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// Valid reports whether both halves of the record are present
func (r *SessionRecord) Valid() bool {
	return r != nil && r.Address != "" && r.PrivateKey != ""
}

// SealedSession represents an encrypted session file.
// Address stays readable so the file can be identified without the password.
type SealedSession struct {
	Address    string `json:"address"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletState is what the view layer sees of the session
type WalletState struct {
	Connected  bool   `json:"connected"`
	Address    string `json:"address,omitempty"`
	BalanceAPT string `json:"balance_apt"`
}
