package persistence

import (
	"context"
	"database/sql"

	"github.com/kylycht/cryptocalc/model"
	"github.com/kylycht/cryptocalc/storage"
)

type Persistence struct {
	dbConn *sql.DB
}

func New(dbConn *sql.DB) storage.Storage {
	return &Persistence{
		dbConn: dbConn,
	}
}

// Load implements storage.Storage.
func (p *Persistence) Load(ctx context.Context) ([]model.Coin, error) {
	loadQuery := `SELECT code, name
				 FROM coin
				 WHERE is_available=true
				 ORDER BY position, code`

	var coins []model.Coin

	rows, err := p.dbConn.QueryContext(ctx, loadQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c := model.Coin{}

		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return coins, err
		}

		coins = append(coins, c)
	}

	return coins, rows.Err()
}
