package model

// ConversionState describes which of the
// output states a conversion ended in
type ConversionState string

const (
	AmountAbsent    ConversionState = "amount_absent"    // no amount entered, output is empty
	RateUnavailable ConversionState = "rate_unavailable" // rate lookup failed
	RateAvailable   ConversionState = "rate_available"   // converted successfully
)

// ConversionRequest holds the current
// values of the three inputs
type ConversionRequest struct {
	Coin     string       // Coin code
	Currency FiatCurrency // Target fiat currency
	Amount   *float64     // Amount to convert, nil when absent
}

// ConversionResult holds derived conversion
// and the text to display for it
type ConversionResult struct {
	State     ConversionState // Output state
	Coin      string          // Coin code
	Currency  FiatCurrency    // Target fiat currency
	Amount    *float64        // Requested amount
	Rate      float64         // Exchange rate, zero unless RateAvailable
	Converted float64         // Amount * Rate, zero unless RateAvailable
	Text      string          // Display text
}
