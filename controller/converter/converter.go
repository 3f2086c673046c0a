package converter

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kylycht/cryptocalc/metrics"
	"github.com/kylycht/cryptocalc/model"
	"github.com/kylycht/cryptocalc/service"
	"github.com/kylycht/cryptocalc/storage/catalog"
	"github.com/kylycht/cryptocalc/view"
	"github.com/rs/zerolog/log"
)

const (
	SessionCookie = "session_id"
	OutputPath    = "/conversion"
)

func New(coins *catalog.Catalog, fetcher service.RateFetcher, v *view.View, m *metrics.ConverterMetrics) *Converter {
	return &Converter{
		coins:    coins,
		fetcher:  &instrumented{next: fetcher, metrics: m},
		view:     v,
		sessions: NewSessions(),
		metrics:  m,
		validate: validator.New(),
	}
}

type Converter struct {
	coins    *catalog.Catalog          // convertible coins
	fetcher  service.RateFetcher       // exchange rates provider
	view     *view.View                // page and output rendering
	sessions *Sessions                 // per session serialization
	metrics  *metrics.ConverterMetrics // collectors
	validate *validator.Validate       // API query validation
}

// Evaluate returns the conversion for current inputs.
// It issues at most one rate lookup and never fails:
// lookup failures end up as model.RateUnavailable
func (c *Converter) Evaluate(ctx context.Context, req model.ConversionRequest) model.ConversionResult {
	result := model.ConversionResult{
		State:    model.AmountAbsent,
		Coin:     req.Coin,
		Currency: req.Currency,
		Amount:   req.Amount,
	}

	defer func() {
		c.metrics.ObserveConversion(string(result.State))
	}()

	if req.Amount == nil {
		return result
	}

	result.State = model.RateUnavailable
	result.Text = model.DataNotAvailable

	if _, ok := c.coins.Lookup(req.Coin); !ok {
		log.Debug().Str("coin", req.Coin).Msg("coin not in catalog")
		return result
	}

	if _, err := model.ParseFiat(string(req.Currency)); err != nil {
		log.Debug().Err(err).Msg("currency not supported")
		return result
	}

	rate, ok := service.FetchRate(ctx, c.fetcher, req.Coin, string(req.Currency))
	if !ok {
		return result
	}

	amount := *req.Amount
	result.State = model.RateAvailable
	result.Rate = rate
	result.Converted = amount * rate
	result.Text = FormatConversion(amount, req.Coin, result.Converted)

	return result
}

// ParseRequest builds conversion request from raw input values.
// Empty or non-numeric amount is absent
func ParseRequest(coin, currency, amount string) model.ConversionRequest {
	req := model.ConversionRequest{
		Coin:     strings.ToUpper(strings.TrimSpace(coin)),
		Currency: model.FiatCurrency(strings.ToUpper(strings.TrimSpace(currency))),
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		req.Amount = &v
	}

	return req
}

// Index renders the converter page with default selection
func (c *Converter) Index(ctx *fiber.Ctx) error {
	c.sessionID(ctx)

	page := view.NewPage(c.coins.List(), OutputPath)
	page.Output = c.Evaluate(ctx.UserContext(), page.Request())

	buf := &bytes.Buffer{}
	if err := c.view.RenderPage(buf, page); err != nil {
		log.Error().Err(err).Msg("unable to render page")
		return err
	}

	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}

// Output re-renders the output region for current inputs.
// A newer request of the same session cancels this one,
// which then answers 409 with an empty body
func (c *Converter) Output(ctx *fiber.Ctx) error {
	id := c.sessionID(ctx)
	req := ParseRequest(ctx.Query("coin"), ctx.Query("currency"), ctx.Query("amount"))

	evalCtx, done := c.sessions.Begin(ctx.UserContext(), id)
	defer done()

	result := c.Evaluate(evalCtx, req)
	if Superseded(evalCtx) {
		c.metrics.SupersededTotal.Inc()
		log.Debug().Str("session", id).Msg("conversion superseded")
		ctx.Status(http.StatusConflict)
		return nil
	}

	buf := &bytes.Buffer{}
	if err := c.view.RenderOutput(buf, result); err != nil {
		log.Error().Err(err).Msg("unable to render conversion")
		return err
	}

	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}

// ConvertQuery holds /api/convert parameters
type ConvertQuery struct {
	Coin     string `query:"coin" validate:"required,alphanum,max=16"`
	Currency string `query:"currency" validate:"required,oneof=USD EUR GBP"`
	Amount   string `query:"amount" validate:"omitempty,numeric"`
}

// ConvertResponse is the /api/convert payload
type ConvertResponse struct {
	Coin      string   `json:"coin" example:"BTC"`
	Currency  string   `json:"currency" example:"USD"`
	Amount    *float64 `json:"amount,omitempty" example:"2"`
	Rate      float64  `json:"rate,omitempty" example:"50000"`
	Converted float64  `json:"converted,omitempty" example:"100000"`
	State     string   `json:"state" example:"rate_available"`
	Text      string   `json:"text" example:"2 BTC = 100,000.00"`
}

// Convert godoc
//
//	@Summary		Convert given coin amount to fiat
//	@Description	convert an amount of a supported coin into USD, EUR or GBP
//	@Tags			converter
//	@Produce		json
//	@Param			coin		query	string	true	"Coin code"		example(BTC)
//	@Param			currency	query	string	true	"Fiat currency"	Enums(USD, EUR, GBP)
//	@Param			amount		query	number	false	"Amount"		example(2)
//	@Success		200	{object}	ConvertResponse
//	@Failure		400	{string}	string "unsupported coin: XYZ"
//	@Router			/api/convert [get]
func (c *Converter) Convert(ctx *fiber.Ctx) error {
	q := ConvertQuery{}
	if err := ctx.QueryParser(&q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	q.Coin = strings.ToUpper(strings.TrimSpace(q.Coin))
	q.Currency = strings.ToUpper(strings.TrimSpace(q.Currency))
	q.Amount = strings.TrimSpace(q.Amount)

	if err := c.validate.Struct(q); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if _, ok := c.coins.Lookup(q.Coin); !ok {
		return fiber.NewError(http.StatusBadRequest, "unsupported coin: "+q.Coin)
	}

	log.Debug().Str("coin", q.Coin).Str("currency", q.Currency).Str("amount", q.Amount).Msg("converting")

	result := c.Evaluate(ctx.UserContext(), ParseRequest(q.Coin, q.Currency, q.Amount))

	return ctx.JSON(ConvertResponse{
		Coin:      result.Coin,
		Currency:  string(result.Currency),
		Amount:    result.Amount,
		Rate:      result.Rate,
		Converted: result.Converted,
		State:     string(result.State),
		Text:      result.Text,
	})
}

// sessionID returns session id of the browser,
// issuing a new one when absent
func (c *Converter) sessionID(ctx *fiber.Ctx) string {
	id := ctx.Cookies(SessionCookie)
	if _, err := uuid.Parse(id); err == nil {
		return id
	}

	id = uuid.NewString()
	ctx.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return id
}

// instrumented records every lookup of next
type instrumented struct {
	next    service.RateFetcher
	metrics *metrics.ConverterMetrics
}

func (i *instrumented) GetRate(ctx context.Context, coin, currency string) (model.ExchangeRate, error) {
	started := time.Now()

	rate, err := i.next.GetRate(ctx, coin, currency)
	if err != nil {
		i.metrics.ObserveFetch(string(service.KindOf(err)), started)
		return rate, err
	}

	i.metrics.ObserveFetch("ok", started)
	return rate, nil
}
