package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOctasToAPT(t *testing.T) {
	tests := []struct {
		octas    uint64
		expected string
	}{
		{0, "0"},
		{1, "0.00000001"},
		{100000000, "1"},
		{1250000000, "12.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OctasToAPT(tt.octas).String())
	}
}

func TestOctasPerAPT(t *testing.T) {
	assert.True(t, decimal.NewFromInt(1).Equal(OctasToAPT(OctasPerAPT)))
	assert.True(t, decimal.New(1, APTDecimals).Equal(decimal.NewFromInt(int64(OctasPerAPT))))
}

func TestFormatAndTruncate(t *testing.T) {
	assert.Equal(t, "12.50 APT", FormatAPT(decimal.RequireFromString("12.5")))
	assert.Equal(t, "0x203e...2964", TruncateAddress("0x203e9bf58c965f98b788b20732faaf8dc135a827c2803935e623718226722964"))
	assert.Equal(t, "0xABC", TruncateAddress("0xABC"))
}
