package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kylycht/cryptocalc/model"
	"github.com/kylycht/cryptocalc/storage"
)

const (
	codeColumn = "currency code"
	nameColumn = "currency name"
)

type File struct {
	path string
}

func New(path string) storage.Storage {
	return &File{path: path}
}

// Load implements storage.Storage.
func (f *File) Load(ctx context.Context) ([]model.Coin, error) {
	fd, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open coin list: %w", err)
	}
	defer fd.Close()

	coins, err := Parse(ctx, fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	return coins, nil
}

// Parse reads coins from a CSV stream with a header row
// holding at least the "currency code" and "currency name" columns
func Parse(ctx context.Context, r io.Reader) ([]model.Coin, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty coin list")
		}
		return nil, err
	}

	codeIdx, nameIdx := -1, -1
	for i, column := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))) {
		case codeColumn:
			codeIdx = i
		case nameColumn:
			nameIdx = i
		}
	}

	if codeIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns", codeColumn, nameColumn)
	}

	var coins []model.Coin

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		c := model.Coin{
			Code: strings.ToUpper(strings.TrimSpace(record[codeIdx])),
			Name: strings.TrimSpace(record[nameIdx]),
		}

		if c.Code == "" || c.Name == "" {
			return nil, fmt.Errorf("line %d: blank currency code or name", line)
		}

		coins = append(coins, c)
	}

	return coins, nil
}
