// Package view renders the converter page and its output region.
package view

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/kylycht/cryptocalc/model"
)

const (
	Title = "Cryptocurrency converter calculator"
)

//go:embed templates/*.html
var templates embed.FS

// Description paragraphs shown under the title
var Description = []string{
	"Check the latest cryptocurrency price against USD, EUR and GBP.",
	"Data is extracted from Alpha Vantage.",
}

// Page holds everything the full page needs
type Page struct {
	Title       string
	Description []string
	Coins       []model.Coin         // coin selector choices
	Currencies  []model.FiatCurrency // currency selector choices
	Amount      string               // amount input value, empty when absent
	Coin        string               // selected coin code
	Currency    string               // selected currency code
	Output      model.ConversionResult
	OutputPath  string // endpoint re-rendering the output region
}

// NewPage returns page with default selection state:
// amount 1, first coin of the catalog and USD
func NewPage(coins []model.Coin, outputPath string) Page {
	p := Page{
		Title:       Title,
		Description: Description,
		Coins:       coins,
		Currencies:  model.FiatCurrencies(),
		Amount:      "1",
		Currency:    string(model.USD),
		OutputPath:  outputPath,
	}

	if len(coins) > 0 {
		p.Coin = coins[0].Code
	}

	return p
}

// Request returns conversion request
// for the page selection state
func (p Page) Request() model.ConversionRequest {
	req := model.ConversionRequest{
		Coin:     p.Coin,
		Currency: model.FiatCurrency(p.Currency),
	}

	if v, err := strconv.ParseFloat(p.Amount, 64); err == nil {
		req.Amount = &v
	}

	return req
}

type View struct {
	tmpl *template.Template
}

func New() (*View, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &View{tmpl: tmpl}, nil
}

// RenderPage writes the full page
func (v *View) RenderPage(w io.Writer, p Page) error {
	return v.tmpl.ExecuteTemplate(w, "index", p)
}

// RenderOutput writes the output region content only
func (v *View) RenderOutput(w io.Writer, r model.ConversionResult) error {
	return v.tmpl.ExecuteTemplate(w, "output", r)
}
