package converter

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount formats v with thousands
// separators and exactly two decimals
func FormatAmount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatConversion returns "{amount} {coin} = {converted}"
// with amount in its shortest form
func FormatConversion(amount float64, coin string, converted float64) string {
	return fmt.Sprintf("%s %s = %s", strconv.FormatFloat(amount, 'f', -1, 64), coin, FormatAmount(converted))
}
