package document

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
)

var ErrNoSpecifications = errors.New("quotation has no window specifications")

// Document is a rendered quotation.
type Document struct {
	Filename string
	Content  []byte
	Pages    int
	Layout   []Placement
}

type Config struct {
	ValidityDays int
	// Terms replaces the default terms when non-empty.
	Terms []string
}

type Renderer struct {
	cfg     Config
	metrics Metrics
	now     func() time.Time
}

func NewRenderer(cfg Config) *Renderer {
	if cfg.ValidityDays <= 0 {
		cfg.ValidityDays = 30
	}

	return &Renderer{cfg: cfg, metrics: A4, now: time.Now}
}

// WithClock replaces the clock used for the issue date and filename.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

func (r *Renderer) terms() []string {
	if len(r.cfg.Terms) > 0 {
		return r.cfg.Terms
	}

	return []string{
		fmt.Sprintf("This quotation is valid for %d days from the date of issue.", r.cfg.ValidityDays),
		"50% advance with the confirmed order, balance before dispatch.",
		"Delivery within 3 to 4 weeks of final site measurement and approval.",
		"GST is charged at the rate shown; transport and loading are billed once per order.",
		"Civil, masonry and electrical work are excluded unless stated otherwise.",
		"Final prices may vary if the measured sizes differ from those quoted.",
	}
}

// Render lays out q onto A4 pages and returns the PDF. The input is not
// modified; specifications are priced on a copy. Missing data is shown as
// placeholders, so the only failure is a quotation with nothing to render.
func (r *Renderer) Render(q *quotation.Quotation) (*Document, error) {
	if q == nil || len(q.Specs) == 0 {
		return nil, ErrNoSpecifications
	}

	specs := slices.Clone(q.Specs)
	pricing.ApplyAll(specs)

	issued := r.now()
	c := newCanvas(r.metrics)

	s := &sheet{
		c:          c,
		q:          q,
		specs:      specs,
		totals:     pricing.TotalsOf(specs, q.Charges.Total(), q.GSTRate),
		issued:     issued,
		validUntil: issued.AddDate(0, 0, r.cfg.ValidityDays),
		terms:      r.terms(),
	}

	c.pdf.SetTitle("Quotation "+s.number(), true)
	c.pdf.SetAuthor(orNA(q.Company.Name), true)
	c.pdf.SetCreator("fenestra", false)
	c.pdf.SetCreationDate(issued)

	cursor := NewCursor(r.metrics, func(page int) float64 {
		c.pdf.AddPage()
		if page == 1 {
			return 0
		}

		return s.continuation(r.metrics.MarginTop)
	})

	cursor.Emit(headerRegion{s: s})
	cursor.Emit(clientRegion{s: s})
	cursor.Emit(newIntroRegion(s))

	for i, spec := range specs {
		cursor.Emit(specRegion{s: s, index: i, spec: spec})
	}

	cursor.Emit(totalsRegion{s: s})
	cursor.Emit(termsRegion{s: s})

	pages := c.pdf.PageCount()
	for p := 1; p <= pages; p++ {
		c.pdf.SetPage(p)
		s.footer(p, pages)
	}

	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return &Document{
		Filename: Filename(q.Number, issued),
		Content:  buf.Bytes(),
		Pages:    pages,
		Layout:   cursor.Placements(),
	}, nil
}
