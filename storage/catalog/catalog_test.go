package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylycht/cryptocalc/model"
	"github.com/kylycht/cryptocalc/storage/csvfile"
)

type storageFn func(ctx context.Context) ([]model.Coin, error)

func (fn storageFn) Load(ctx context.Context) ([]model.Coin, error) {
	return fn(ctx)
}

func staticStorage(coins ...model.Coin) storageFn {
	return func(context.Context) ([]model.Coin, error) {
		return coins, nil
	}
}

func TestLoadReferenceList(t *testing.T) {
	c, err := Load(context.Background(), csvfile.New("../../digital_currency_list.csv"), 10)
	require.NoError(t, err)

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, "BTC", c.Default().Code)

	seen := make(map[string]bool)
	for _, coin := range c.List() {
		assert.False(t, seen[coin.Code], "duplicate code %s", coin.Code)
		seen[coin.Code] = true

		got, ok := c.Lookup(coin.Code)
		assert.True(t, ok)
		assert.Equal(t, coin, got)
	}
}

func TestLoad(t *testing.T) {
	btc := model.Coin{Code: "BTC", Name: "Bitcoin"}
	eth := model.Coin{Code: "ETH", Name: "Ethereum"}

	testCases := []struct {
		name          string
		source        storageFn
		expected      int
		expectedCodes []string
		expectedError string
	}{
		{
			name:          "any_size",
			source:        staticStorage(btc, eth),
			expectedCodes: []string{"BTC", "ETH"},
		},
		{
			name:          "exact_size",
			source:        staticStorage(btc, eth),
			expected:      2,
			expectedCodes: []string{"BTC", "ETH"},
		},
		{
			name:          "size_mismatch",
			source:        staticStorage(btc, eth),
			expected:      10,
			expectedError: "coin catalog has 2 entries, expected 10",
		},
		{
			name:          "duplicate_code",
			source:        staticStorage(btc, model.Coin{Code: "btc", Name: "Bitcoin again"}),
			expectedError: "duplicate coin code: BTC",
		},
		{
			name:          "empty",
			source:        staticStorage(),
			expectedError: "coin catalog is empty",
		},
		{
			name:          "blank_code",
			source:        staticStorage(btc, model.Coin{Code: " ", Name: "Blank"}),
			expectedError: "coin catalog contains blank code",
		},
		{
			name: "source_error",
			source: func(context.Context) ([]model.Coin, error) {
				return nil, errors.New("connection refused")
			},
			expectedError: "load coin catalog: connection refused",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Load(context.Background(), tc.source, tc.expected)
			if tc.expectedError != "" {
				require.EqualError(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)

			var codes []string
			for _, coin := range c.List() {
				codes = append(codes, coin.Code)
			}
			assert.Equal(t, tc.expectedCodes, codes)
		})
	}
}

func TestLookup(t *testing.T) {
	c, err := New([]model.Coin{{Code: "doge", Name: "Dogecoin"}})
	require.NoError(t, err)

	coin, ok := c.Lookup("DOGE")
	assert.True(t, ok)
	assert.Equal(t, model.Coin{Code: "DOGE", Name: "Dogecoin"}, coin)

	coin, ok = c.Lookup(" doge ")
	assert.True(t, ok)
	assert.Equal(t, "DOGE", coin.Code)

	_, ok = c.Lookup("XYZ")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	c, err := New([]model.Coin{{Code: "BTC", Name: "Bitcoin"}})
	require.NoError(t, err)

	list := c.List()
	list[0].Code = "MUTATED"

	assert.Equal(t, "BTC", c.List()[0].Code)
}
