package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kylycht/cryptocalc/model"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=mock/rate_fetcher.go -package=mock github.com/kylycht/cryptocalc/service RateFetcher

// RateFetcher interface describes
// methods for obtaining exchange rates
type RateFetcher interface {
	// GetRate returns current exchange rate
	// for given coin/fiat pair. Every returned
	// error is a *FetchError
	GetRate(ctx context.Context, coin, currency string) (model.ExchangeRate, error)
}

// Kind classifies fetch failures
type Kind string

const (
	KindNetwork           Kind = "network"            // transport failure, cancellation, open breaker
	KindMalformedResponse Kind = "malformed_response" // body lacks a usable rate
	KindServiceRejected   Kind = "service_rejected"   // invalid pair, quota, auth, non-200
)

var (
	ErrNetwork           = errors.New("rate service unreachable")
	ErrMalformedResponse = errors.New("malformed rate response")
	ErrServiceRejected   = errors.New("rate request rejected")
)

// FetchError is returned by RateFetcher implementations
type FetchError struct {
	Kind Kind
	Err  error
}

// NewFetchError wraps err with given kind
func NewFetchError(kind Kind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}

	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	case ErrServiceRejected:
		return e.Kind == KindServiceRejected
	}

	return false
}

// KindOf returns kind of given error,
// errors not produced by a fetcher count as network errors
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}

	return KindNetwork
}

// FetchRate collapses every failure of f
// into an absent rate
func FetchRate(ctx context.Context, f RateFetcher, coin, currency string) (float64, bool) {
	rate, err := f.GetRate(ctx, coin, currency)
	if err != nil {
		log.Debug().Err(err).Str("coin", coin).Str("currency", currency).Str("kind", string(KindOf(err))).Msg("rate unavailable")
		return 0, false
	}

	if rate.Rate <= 0 {
		return 0, false
	}

	return rate.Rate, true
}
