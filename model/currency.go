package model

import (
	"fmt"
	"strings"
)

// FiatCurrency is one of the supported conversion targets
type FiatCurrency string

const (
	USD FiatCurrency = "USD" // US dollar
	EUR FiatCurrency = "EUR" // Euro
	GBP FiatCurrency = "GBP" // Pound sterling
)

// DataNotAvailable is displayed whenever
// no exchange rate could be obtained
const DataNotAvailable = "Data not available"

// FiatCurrencies returns supported fiat
// currencies in display order
func FiatCurrencies() []FiatCurrency {
	return []FiatCurrency{USD, EUR, GBP}
}

// ParseFiat returns fiat currency for given code
func ParseFiat(code string) (FiatCurrency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, f := range FiatCurrencies() {
		if string(f) == code {
			return f, nil
		}
	}

	return "", fmt.Errorf("unsupported fiat currency: %q", code)
}

// Coin holds information
// on the convertible crypto currency
type Coin struct {
	Code string // Code of the coin, e.g. BTC
	Name string // Display name of the coin
}

// ExchangeRate holds information
// for given coin/fiat pair
type ExchangeRate struct {
	Coin     string       // Base coin code
	Currency FiatCurrency // Target fiat currency
	Rate     float64      // Units of fiat for one coin
}
