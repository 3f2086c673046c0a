package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "round_thousands", value: 100000, expected: "100,000.00"},
		{name: "millions_rounded_down", value: 1234567.891, expected: "1,234,567.89"},
		{name: "rate_precision", value: 65000.12345678, expected: "65,000.12"},
		{name: "carry_into_thousands", value: 999.999, expected: "1,000.00"},
		{name: "below_thousand", value: 12.5, expected: "12.50"},
		{name: "zero", value: 0, expected: "0.00"},
		{name: "negative", value: -1234.5, expected: "-1,234.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.value))
		})
	}
}

func TestFormatAmountStable(t *testing.T) {
	first := FormatAmount(1234567.891)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FormatAmount(1234567.891))
	}
}

func TestFormatConversion(t *testing.T) {
	testCases := []struct {
		name      string
		amount    float64
		coin      string
		converted float64
		expected  string
	}{
		{name: "integer_amount", amount: 2, coin: "BTC", converted: 100000, expected: "2 BTC = 100,000.00"},
		{name: "fractional_amount", amount: 1.5, coin: "ETH", converted: 4500.256, expected: "1.5 ETH = 4,500.26"},
		{name: "small_amount", amount: 0.001, coin: "BTC", converted: 65.00012345678, expected: "0.001 BTC = 65.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatConversion(tc.amount, tc.coin, tc.converted))
		})
	}
}
