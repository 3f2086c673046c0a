package csvfile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylycht/cryptocalc/model"
)

func TestLoad(t *testing.T) {
	coins, err := New("testdata/digital_currency_list.csv").Load(context.Background())
	require.NoError(t, err)

	require.Len(t, coins, 10)
	assert.Equal(t, model.Coin{Code: "BTC", Name: "Bitcoin"}, coins[0])
	assert.Equal(t, model.Coin{Code: "LTC", Name: "Litecoin"}, coins[9])
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{name: "missing_file", path: "testdata/does_not_exist.csv"},
		{name: "missing_columns", path: "testdata/missing_columns.csv"},
		{name: "blank_code", path: "testdata/blank_code.csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.path).Load(context.Background())
			require.Error(t, err)
		})
	}
}

func TestLoadColumnsByName(t *testing.T) {
	coins, err := New("testdata/swapped_columns.csv").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Coin{
		{Code: "BTC", Name: "Bitcoin"},
		{Code: "ETH", Name: "Ethereum"},
	}, coins)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expected      []model.Coin
		expectedError bool
	}{
		{
			name:     "extra_columns_and_lower_case",
			input:    "id,currency code,currency name\n1,btc,Bitcoin\n2, eth , Ethereum \n",
			expected: []model.Coin{{Code: "BTC", Name: "Bitcoin"}, {Code: "ETH", Name: "Ethereum"}},
		},
		{
			name:     "byte_order_mark",
			input:    "\ufeffcurrency code,currency name\nDOGE,Dogecoin\n",
			expected: []model.Coin{{Code: "DOGE", Name: "Dogecoin"}},
		},
		{
			name:     "header_only",
			input:    "currency code,currency name\n",
			expected: nil,
		},
		{name: "empty", input: "", expectedError: true},
		{name: "ragged_row", input: "currency code,currency name\nBTC\n", expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coins, err := Parse(context.Background(), strings.NewReader(tc.input))
			if tc.expectedError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, coins)
		})
	}
}
