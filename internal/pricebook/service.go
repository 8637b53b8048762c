package pricebook

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

var ErrInvalidRates = errors.New("rates must not be negative")

// Rates are the default prices for one window type.
type Rates struct {
	BasePrice float64
	SqFtPrice float64
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pricebook
type Repository interface {
	FindRates(ctx context.Context, t window.Type) (Rates, bool, error)
	SaveRates(ctx context.Context, t window.Type, rates Rates) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the stored default prices for the window type.
// ok is false when nothing has been learned for it yet.
func (s *Service) Suggest(ctx context.Context, t window.Type) (Rates, bool, error) {
	return s.repo.FindRates(ctx, t)
}

// Learn remembers the default prices for a window type, replacing any previous entry.
func (s *Service) Learn(ctx context.Context, t window.Type, rates Rates) error {
	if rates.BasePrice < 0 || rates.SqFtPrice < 0 {
		return ErrInvalidRates
	}

	if err := s.repo.SaveRates(ctx, t, rates); err != nil {
		return fmt.Errorf("saving rates for %s: %w", t, err)
	}

	return nil
}
