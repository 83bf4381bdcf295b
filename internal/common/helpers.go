package common

import (
	"github.com/shopspring/decimal"
)

const (
	APTDecimals = 8 // APT has 8 decimals (octas)

	// OctasPerAPT is the fixed scale between octas and whole APT (10^APTDecimals)
	OctasPerAPT uint64 = 100000000
)

// OctasToAPT converts octas to whole APT without float precision loss
func OctasToAPT(octas uint64) decimal.Decimal {
	return decimal.NewFromInt(int64(octas)).Shift(-APTDecimals)
}

// FormatAPT renders an APT amount the way the marketplace shows it (2 decimals)
func FormatAPT(apt decimal.Decimal) string {
	return apt.StringFixed(2) + " APT"
}

// TruncateAddress shortens an account address for display: 0x2031...2964
func TruncateAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
