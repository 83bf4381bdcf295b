package wallet

const redacted = "[redacted]"

// PrivateKey is the secret of a session account.
// It prints as [redacted] so it never ends up in logs or JSON by accident.
type PrivateKey string

// Reveal returns the raw key for the backend calls that must sign with it
func (k PrivateKey) Reveal() string {
	return string(k)
}

func (k PrivateKey) String() string {
	if k == "" {
		return ""
	}
	return redacted
}

func (k PrivateKey) GoString() string {
	return k.String()
}

func (k PrivateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}
