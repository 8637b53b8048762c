package quotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/pricebook"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quotation
type Repository interface {
	// NextNumber atomically increments and returns the quotation sequence.
	NextNumber(ctx context.Context) (int64, error)

	CreateQuotation(ctx context.Context, q *Quotation) error
	GetQuotation(ctx context.Context, id uuid.UUID) (*Quotation, error)
	ListQuotations(ctx context.Context, filter ListFilter) ([]*Quotation, error)
	UpdateQuotation(ctx context.Context, q *Quotation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteQuotation(ctx context.Context, id uuid.UUID) error
}

// RateSuggester supplies default prices for a window type.
type RateSuggester interface {
	Suggest(ctx context.Context, t window.Type) (pricebook.Rates, bool, error)
}

type Settings struct {
	NumberPrefix string
	GSTRate      float64
	Charges      Charges
	Company      Company
}

type Service struct {
	repo     Repository
	rates    RateSuggester
	settings Settings
	now      func() time.Time
}

// NewService creates a quotation service. rates may be nil.
func NewService(repo Repository, rates RateSuggester, settings Settings) *Service {
	return &Service{
		repo:     repo,
		rates:    rates,
		settings: settings,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for quotation numbers.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Settings returns the defaults applied to new quotations.
func (s *Service) Settings() Settings {
	return s.settings
}

type CreateParams struct {
	Client  Client
	Company *Company
	Specs   []window.Specification
	Charges *Charges
	GSTRate *float64
	Notes   string
}

type ListFilter struct {
	Status    *Status
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Quotation, error) {
	if strings.TrimSpace(params.Client.Name) == "" {
		return nil, ErrMissingClientName
	}

	specs, err := s.prepareSpecs(ctx, params.Specs)
	if err != nil {
		return nil, err
	}

	seq, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("next quotation number: %w", err)
	}

	q := &Quotation{
		Number:  s.formatNumber(seq),
		Status:  StatusDraft,
		Client:  params.Client,
		Company: s.settings.Company,
		Specs:   specs,
		Charges: s.settings.Charges,
		GSTRate: s.settings.GSTRate,
		Notes:   params.Notes,
	}

	if params.Company != nil {
		q.Company = *params.Company
	}

	if params.Charges != nil {
		q.Charges = *params.Charges
	}

	if params.GSTRate != nil {
		q.GSTRate = *params.GSTRate
	}

	q.Reprice()

	if err := s.repo.CreateQuotation(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// Preview prices specifications without persisting anything.
func (s *Service) Preview(ctx context.Context, params CreateParams) (*Quotation, error) {
	specs, err := s.prepareSpecs(ctx, params.Specs)
	if err != nil {
		return nil, err
	}

	q := &Quotation{
		Status:  StatusDraft,
		Client:  params.Client,
		Company: s.settings.Company,
		Specs:   specs,
		Charges: s.settings.Charges,
		GSTRate: s.settings.GSTRate,
	}

	if params.Charges != nil {
		q.Charges = *params.Charges
	}

	if params.GSTRate != nil {
		q.GSTRate = *params.GSTRate
	}

	q.Reprice()

	return q, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quotation, error) {
	q, err := s.repo.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	q.Reprice()

	return q, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Quotation, error) {
	qs, err := s.repo.ListQuotations(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, q := range qs {
		q.Reprice()
	}

	return qs, nil
}

func (s *Service) Update(ctx context.Context, q *Quotation) error {
	if strings.TrimSpace(q.Client.Name) == "" {
		return ErrMissingClientName
	}

	specs, err := s.prepareSpecs(ctx, q.Specs)
	if err != nil {
		return err
	}

	q.Specs = specs
	q.Reprice()

	return s.repo.UpdateQuotation(ctx, q)
}

// AppendSpecifications adds specifications to the end of an existing quotation.
func (s *Service) AppendSpecifications(ctx context.Context, id uuid.UUID, specs []window.Specification) (*Quotation, error) {
	q, err := s.repo.GetQuotation(ctx, id)
	if err != nil {
		return nil, err
	}

	q.Specs = append(q.Specs, specs...)

	if err := s.Update(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

// UpdateStatus overwrites the status; there are no guarded transitions.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteQuotation(ctx, id)
}

// prepareSpecs assigns missing IDs, fills unpriced specifications from the
// pricebook and validates the result.
func (s *Service) prepareSpecs(ctx context.Context, specs []window.Specification) ([]window.Specification, error) {
	out := make([]window.Specification, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))

	for _, spec := range specs {
		if spec.ID == "" {
			spec.ID = uuid.NewString()
		}

		if _, dup := seen[spec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecification, spec.ID)
		}

		seen[spec.ID] = struct{}{}

		if spec.Pricing.BasePrice == 0 && spec.Pricing.SqFtPrice == 0 {
			spec = s.fillRates(ctx, spec)
		}

		if err := window.Validate(spec); err != nil {
			return nil, err
		}

		out = append(out, spec)
	}

	return out, nil
}

func (s *Service) fillRates(ctx context.Context, spec window.Specification) window.Specification {
	if s.rates == nil {
		return spec
	}

	rates, ok, err := s.rates.Suggest(ctx, spec.Type)
	if err != nil {
		slog.Warn("failed to suggest rates", "type", spec.Type, "error", err)
		return spec
	}

	if !ok {
		return spec
	}

	spec.Pricing.BasePrice = rates.BasePrice
	spec.Pricing.SqFtPrice = rates.SqFtPrice

	return spec
}

func (s *Service) formatNumber(seq int64) string {
	prefix := s.settings.NumberPrefix
	if prefix == "" {
		prefix = "QT"
	}

	return fmt.Sprintf("%s-%d-%04d", prefix, s.now().Year(), seq)
}
