package storage

import (
	"context"

	"github.com/kylycht/cryptocalc/model"
)

// Storage interface describes a source
// of the coin reference table
type Storage interface {
	// Load loads all available coins
	// in reference table order
	Load(ctx context.Context) ([]model.Coin, error)
}
