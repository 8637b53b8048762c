package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/importer/sheet"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

var ErrNoRows = errors.New("no importable rows found")

// Appender attaches imported specifications to an existing quotation.
type Appender interface {
	AppendSpecifications(ctx context.Context, id uuid.UUID, specs []window.Specification) (*quotation.Quotation, error)
}

type Service struct {
	sheetImporter Importer
	quotations    Appender
}

// NewService creates an import service. quotations may be nil when
// imports are never appended.
func NewService(quotations Appender) *Service {
	return &Service{
		sheetImporter: sheet.NewParser(),
		quotations:    quotations,
	}
}

// Import parses r and resolves every row into a specification. A row that
// resolves to an invalid specification fails the whole import.
func (s *Service) Import(format Format, r io.Reader) ([]window.Specification, error) {
	var importer Importer

	switch format {
	case FormatSheet, "":
		importer = s.sheetImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	drafts, err := importer.Parse(r)
	if err != nil {
		return nil, err
	}

	if len(drafts) == 0 {
		return nil, ErrNoRows
	}

	specs := make([]window.Specification, len(drafts))
	for i, d := range drafts {
		specs[i] = window.Resolve(d)

		if err := window.Validate(specs[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return specs, nil
}

// ImportInto parses r and appends the rows to the quotation with the given
// id. It returns the updated quotation and the number of rows appended.
func (s *Service) ImportInto(ctx context.Context, id uuid.UUID, format Format, r io.Reader) (*quotation.Quotation, int, error) {
	if s.quotations == nil {
		return nil, 0, errors.New("import service has no quotation store")
	}

	specs, err := s.Import(format, r)
	if err != nil {
		return nil, 0, err
	}

	q, err := s.quotations.AppendSpecifications(ctx, id, specs)
	if err != nil {
		return nil, 0, err
	}

	return q, len(specs), nil
}
