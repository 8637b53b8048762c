package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
)

const noDocument = "No specifications"

// Quotations is the read side of the quotation service.
type Quotations interface {
	Get(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error)
	List(ctx context.Context, filter quotation.ListFilter) ([]*quotation.Quotation, error)
}

type Renderer interface {
	Render(q *quotation.Quotation) (*document.Document, error)
}

// Item represents a single exported quotation with its local file path.
// FilePath is empty when the quotation had nothing to render.
type Item struct {
	Quotation *quotation.Quotation
	FilePath  string
}

// Service renders quotations to PDF, one at a time or in batches.
type Service struct {
	quotations Quotations
	renderer   Renderer
	workers    int
}

// NewService creates a new export service. workers bounds how many
// quotations of a batch are rendered at once.
func NewService(quotations Quotations, renderer Renderer, workers int) *Service {
	return &Service{
		quotations: quotations,
		renderer:   renderer,
		workers:    max(workers, 1),
	}
}

// Export renders a single quotation.
func (s *Service) Export(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	q, err := s.quotations.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(q)
	if err != nil {
		return nil, fmt.Errorf("rendering quotation %s: %w", q.Number, err)
	}

	return doc, nil
}

// ExportBatch writes one PDF per quotation matching the filter into outputDir.
// Items keep the listing order. Quotations without specifications are listed
// with an empty FilePath instead of failing the batch.
func (s *Service) ExportBatch(ctx context.Context, filter quotation.ListFilter, outputDir string) ([]Item, error) {
	qs, err := s.quotations.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	items := make([]Item, len(qs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, q := range qs {
		items[i] = Item{Quotation: q}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := s.renderer.Render(q)
			if errors.Is(err, document.ErrNoSpecifications) {
				slog.Warn("skipping quotation without specifications", "number", q.Number)
				return nil
			}

			if err != nil {
				return fmt.Errorf("rendering quotation %s: %w", q.Number, err)
			}

			path := filepath.Join(outputDir, doc.Filename)
			if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", doc.Filename, err)
			}

			items[i].FilePath = path

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// GenerateSummary creates a plain-text listing of the exported items.
func (s *Service) GenerateSummary(items []Item) string {
	var sb strings.Builder

	var total float64

	for _, item := range items {
		q := item.Quotation

		fileStatus := noDocument
		if item.FilePath != "" {
			fileStatus = filepath.Base(item.FilePath)
		}

		total += q.Pricing.GrandTotal

		sb.WriteString(fmt.Sprintf("* %s | %s | %s | %s | %s\n",
			q.Number, q.Client.Name, document.Label(string(q.Status)), document.Money(q.Pricing.GrandTotal), fileStatus))
	}

	sb.WriteString(fmt.Sprintf("\n%d quotations, %s in total\n", len(items), document.Money(total)))

	return sb.String()
}
