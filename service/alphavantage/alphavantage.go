package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/eapache/go-resiliency/breaker"
	"github.com/kylycht/cryptocalc/model"
	"github.com/kylycht/cryptocalc/service"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL string = "https://www.alphavantage.co/query" // base URL of Alpha Vantage API
	exchangeRateFn string = "CURRENCY_EXCHANGE_RATE"

	defaultBreakerTimeout = time.Second * 30
)

// Options configures the client. Zero values
// leave the corresponding guard disabled
type Options struct {
	BaseURL           string        // API endpoint, DefaultBaseURL when empty
	APIKey            string        // access key, required
	Timeout           time.Duration // per request timeout, 0 means none
	RequestsPerSecond float64       // client side throttle, 0 means unlimited
	MaxConcurrent     int64         // bound on in-flight requests, 0 means unbounded
	BreakerErrors     int           // consecutive failures opening the breaker, 0 disables it
	BreakerTimeout    time.Duration // time the breaker stays open
}

// Response of the CURRENCY_EXCHANGE_RATE function
type Response struct {
	Rate         *RealtimeRate `json:"Realtime Currency Exchange Rate"`
	ErrorMessage string        `json:"Error Message"`
	Note         string        `json:"Note"`
	Information  string        `json:"Information"`
}

type RealtimeRate struct {
	FromCode      string      `json:"1. From_Currency Code"`
	FromName      string      `json:"2. From_Currency Name"`
	ToCode        string      `json:"3. To_Currency Code"`
	ToName        string      `json:"4. To_Currency Name"`
	ExchangeRate  json.Number `json:"5. Exchange Rate"`
	LastRefreshed string      `json:"6. Last Refreshed"`
	TimeZone      string      `json:"7. Time Zone"`
}

type client struct {
	baseURL     *url.URL            // Base URL for API requests
	httpClient  *http.Client        // HTTP client used to communicate with the API.
	rateLimiter *rate.Limiter       // Rate limiter for the API, rate.Inf when disabled
	sem         *semaphore.Weighted // in-flight bound, nil when disabled
	breaker     *breaker.Breaker    // circuit breaker, nil when disabled
}

func New(opts Options) (service.RateFetcher, error) {
	if opts.APIKey == "" {
		return nil, errors.New("alphavantage: api key is required")
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("alphavantage: invalid base url: %w", err)
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	apiKey := opts.APIKey
	c := &client{
		rateLimiter: rate.NewLimiter(limit, 1),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: roundTripperFn(
				func(req *http.Request) (*http.Response, error) {

					params := req.URL.Query()
					params.Set("apikey", apiKey)
					req.URL.RawQuery = params.Encode()

					return http.DefaultTransport.RoundTrip(req)
				},
			),
		},
		baseURL: base,
	}

	if opts.MaxConcurrent > 0 {
		c.sem = semaphore.NewWeighted(opts.MaxConcurrent)
	}

	if opts.BreakerErrors > 0 {
		if opts.BreakerTimeout <= 0 {
			opts.BreakerTimeout = defaultBreakerTimeout
		}
		c.breaker = breaker.New(opts.BreakerErrors, 1, opts.BreakerTimeout)
	}

	return c, nil
}

// GetRate implements service.RateFetcher.
// GET /query?function=CURRENCY_EXCHANGE_RATE&from_currency=BTC&to_currency=USD
func (c *client) GetRate(ctx context.Context, coin, currency string) (model.ExchangeRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return model.ExchangeRate{}, service.NewFetchError(service.KindNetwork, err)
	}

	query := req.URL.Query()
	query.Set("function", exchangeRateFn)
	query.Set("from_currency", coin)
	query.Set("to_currency", currency)

	req.URL.RawQuery = query.Encode()

	var value float64

	err = c.guard(ctx, func() error {
		r := &Response{}
		if err := c.Do(ctx, req, r); err != nil {
			return err
		}

		v, err := r.rate()
		if err != nil {
			return err
		}

		value = v
		return nil
	})
	if err != nil {
		return model.ExchangeRate{}, err
	}

	return model.ExchangeRate{
		Coin:     coin,
		Currency: model.FiatCurrency(currency),
		Rate:     value,
	}, nil
}

// guard runs fn behind the semaphore and breaker
func (c *client) guard(ctx context.Context, fn func() error) error {
	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return service.NewFetchError(service.KindNetwork, err)
		}
		defer c.sem.Release(1)
	}

	if c.breaker == nil {
		return fn()
	}

	err := c.breaker.Run(fn)
	if errors.Is(err, breaker.ErrBreakerOpen) {
		return service.NewFetchError(service.KindNetwork, err)
	}

	return err
}

// Do sends the request and decodes JSON body into v
func (c *client) Do(ctx context.Context, req *http.Request, v interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return service.NewFetchError(service.KindNetwork, err)
	}

	log.Debug().Str("from", req.URL.Query().Get("from_currency")).Str("to", req.URL.Query().Get("to_currency")).Msg("fetching exchange rate from API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return service.NewFetchError(service.KindNetwork, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return service.NewFetchError(service.KindServiceRejected, fmt.Errorf("unable to fetch rate due to code: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return service.NewFetchError(service.KindMalformedResponse, err)
	}

	return nil
}

func (r *Response) rate() (float64, error) {
	if r.Rate == nil {
		switch {
		case r.ErrorMessage != "":
			return 0, service.NewFetchError(service.KindServiceRejected, errors.New(r.ErrorMessage))
		case r.Note != "":
			return 0, service.NewFetchError(service.KindServiceRejected, errors.New(r.Note))
		case r.Information != "":
			return 0, service.NewFetchError(service.KindServiceRejected, errors.New(r.Information))
		}

		return 0, service.NewFetchError(service.KindMalformedResponse, errors.New("missing exchange rate object"))
	}

	if r.Rate.ExchangeRate == "" {
		return 0, service.NewFetchError(service.KindMalformedResponse, errors.New("missing exchange rate field"))
	}

	v, err := r.Rate.ExchangeRate.Float64()
	if err != nil {
		return 0, service.NewFetchError(service.KindMalformedResponse, err)
	}

	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, service.NewFetchError(service.KindMalformedResponse, fmt.Errorf("invalid exchange rate: %v", v))
	}

	return v, nil
}

type roundTripperFn func(*http.Request) (*http.Response, error)

func (fn roundTripperFn) RoundTrip(r *http.Request) (*http.Response, error) {
	return fn(r)
}
