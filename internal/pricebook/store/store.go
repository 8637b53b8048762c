package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindRates(ctx context.Context, t window.Type) (pricebook.Rates, bool, error) {
	query := `
		SELECT base_price, sqft_price
		FROM pricebook
		WHERE window_type = $1
	`

	var rates pricebook.Rates

	err := s.db.QueryRowContext(ctx, query, t).Scan(&rates.BasePrice, &rates.SqFtPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pricebook.Rates{}, false, nil
		}

		return pricebook.Rates{}, false, fmt.Errorf("finding rates: %w", err)
	}

	return rates, true, nil
}

func (s *Store) SaveRates(ctx context.Context, t window.Type, rates pricebook.Rates) error {
	query := `
		INSERT INTO pricebook (window_type, base_price, sqft_price, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (window_type) DO UPDATE
		SET base_price = EXCLUDED.base_price, sqft_price = EXCLUDED.sqft_price, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, t, rates.BasePrice, rates.SqFtPrice)
	if err != nil {
		return fmt.Errorf("saving rates: %w", err)
	}

	return nil
}
