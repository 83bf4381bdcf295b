package wallet

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// AddressQR renders the connected address as a PNG QR code.
// size <= 0 uses 256px.
func (s *Session) AddressQR(size int) ([]byte, error) {
	address := s.Address()
	if address == "" {
		return nil, ErrNotConnected
	}
	if size <= 0 {
		size = defaultQRSize
	}

	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}
