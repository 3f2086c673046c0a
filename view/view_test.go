package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylycht/cryptocalc/model"
)

var testCoins = []model.Coin{
	{Code: "BTC", Name: "Bitcoin"},
	{Code: "ETH", Name: "Ethereum"},
}

func TestNewPageDefaults(t *testing.T) {
	p := NewPage(testCoins, "/conversion")

	assert.Equal(t, "1", p.Amount)
	assert.Equal(t, "BTC", p.Coin)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, []model.FiatCurrency{model.USD, model.EUR, model.GBP}, p.Currencies)

	req := p.Request()
	require.NotNil(t, req.Amount)
	assert.Equal(t, 1.0, *req.Amount)
	assert.Equal(t, "BTC", req.Coin)
	assert.Equal(t, model.USD, req.Currency)
}

func TestPageRequestAbsentAmount(t *testing.T) {
	p := NewPage(testCoins, "/conversion")
	p.Amount = ""

	assert.Nil(t, p.Request().Amount)
}

func TestRenderPage(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	p := NewPage(testCoins, "/conversion")
	p.Coin = "ETH"
	p.Currency = "GBP"
	p.Output = model.ConversionResult{State: model.RateAvailable, Text: "1 ETH = 2,000.00"}

	var buf bytes.Buffer
	require.NoError(t, v.RenderPage(&buf, p))
	html := buf.String()

	assert.Contains(t, html, "<h1>Cryptocurrency converter calculator</h1>")
	assert.Contains(t, html, `<input id="my_amount" name="amount" type="number" step="any" value="1">`)
	assert.Contains(t, html, `<option value="BTC">Bitcoin</option>`)
	assert.Contains(t, html, `<option value="ETH" selected>Ethereum</option>`)
	assert.Contains(t, html, `<option value="USD">USD</option>`)
	assert.Contains(t, html, `<option value="GBP" selected>GBP</option>`)
	assert.Contains(t, html, `<div id="conversion" aria-live="polite"><h4>1 ETH = 2,000.00</h4></div>`)
	assert.NotContains(t, html, `<option value="">`)
}

func TestRenderOutput(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	testCases := []struct {
		name     string
		result   model.ConversionResult
		expected string
	}{
		{
			name:     "amount_absent",
			result:   model.ConversionResult{State: model.AmountAbsent},
			expected: "",
		},
		{
			name:     "rate_unavailable",
			result:   model.ConversionResult{State: model.RateUnavailable, Text: model.DataNotAvailable},
			expected: "Data not available",
		},
		{
			name:     "rate_available",
			result:   model.ConversionResult{State: model.RateAvailable, Text: "2 BTC = 100,000.00"},
			expected: "<h4>2 BTC = 100,000.00</h4>",
		},
		{
			name:     "escaped",
			result:   model.ConversionResult{State: model.RateAvailable, Text: "<b>"},
			expected: "<h4>&lt;b&gt;</h4>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, v.RenderOutput(&buf, tc.result))
			assert.Equal(t, tc.expected, strings.TrimSpace(buf.String()))
		})
	}
}
