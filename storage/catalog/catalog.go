package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kylycht/cryptocalc/model"
	"github.com/kylycht/cryptocalc/storage"
	"github.com/rs/zerolog/log"
)

const (
	loadTimeout = time.Second * 10
)

// Catalog is the read-only list of convertible coins.
// It is loaded once and never mutated afterwards,
// so it is safe for concurrent use without locking
type Catalog struct {
	coins  []model.Coin          // coins in reference table order
	byCode map[string]model.Coin // lookup by upper-cased code
}

// Load reads coins from given storage and validates them.
// expected > 0 requires exactly that many entries
func Load(ctx context.Context, source storage.Storage, expected int) (*Catalog, error) {
	ctx, cancelFn := context.WithTimeout(ctx, loadTimeout)
	defer cancelFn()

	coins, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load coin catalog: %w", err)
	}

	c, err := New(coins)
	if err != nil {
		return nil, err
	}

	if expected > 0 && c.Len() != expected {
		return nil, fmt.Errorf("coin catalog has %d entries, expected %d", c.Len(), expected)
	}

	log.Debug().Int("coins", c.Len()).Msg("coin catalog loaded")
	return c, nil
}

// New builds catalog from given coins
func New(coins []model.Coin) (*Catalog, error) {
	if len(coins) == 0 {
		return nil, errors.New("coin catalog is empty")
	}

	c := &Catalog{
		coins:  make([]model.Coin, 0, len(coins)),
		byCode: make(map[string]model.Coin, len(coins)),
	}

	for _, coin := range coins {
		code := strings.ToUpper(strings.TrimSpace(coin.Code))
		if code == "" {
			return nil, errors.New("coin catalog contains blank code")
		}

		if _, ok := c.byCode[code]; ok {
			return nil, fmt.Errorf("duplicate coin code: %s", code)
		}

		coin.Code = code
		c.byCode[code] = coin
		c.coins = append(c.coins, coin)
	}

	return c, nil
}

// List returns coins in reference table order
func (c *Catalog) List() []model.Coin {
	out := make([]model.Coin, len(c.coins))
	copy(out, c.coins)
	return out
}

// Lookup returns coin for given code
func (c *Catalog) Lookup(code string) (model.Coin, bool) {
	coin, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return coin, ok
}

// Default returns the first coin of the catalog
func (c *Catalog) Default() model.Coin {
	return c.coins[0]
}

func (c *Catalog) Len() int {
	return len(c.coins)
}
