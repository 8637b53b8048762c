package document_test

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func clock() time.Time {
	return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
}

func pricedSpec(t window.Type, name string) window.Specification {
	typ, width, height, base, sqft, qty := string(t), 1200.0, 1500.0, 5000.0, 300.0, 2

	return window.Resolve(window.Draft{
		Type:      &typ,
		Name:      &name,
		Width:     &width,
		Height:    &height,
		BasePrice: &base,
		SqFtPrice: &sqft,
		Quantity:  &qty,
	})
}

func newQuotation(specs ...window.Specification) *quotation.Quotation {
	return &quotation.Quotation{
		ID:      uuid.New(),
		Number:  "QT-2026-0007",
		Status:  quotation.StatusDraft,
		Client:  quotation.Client{Name: "Anita Desai", Phone: "+91 98450 00000"},
		Company: quotation.Company{Name: "Acme Windows", GSTIN: "29ABCDE1234F1Z5"},
		Specs:   specs,
		Charges: quotation.Charges{Transport: 1500, Loading: 500},
		GSTRate: 0.18,
	}
}

func TestRenderer_Render(t *testing.T) {
	r := document.NewRenderer(document.Config{ValidityDays: 15}).WithClock(clock)

	q := newQuotation(pricedSpec(window.TypeSliding, "Living room"), pricedSpec(window.TypeBay, "Study"))

	doc, err := r.Render(q)
	require.NoError(t, err)

	assert.Equal(t, "Quotation_QT-2026-0007_2026-03-14.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
	assert.GreaterOrEqual(t, doc.Pages, 2)

	var names []string
	for _, p := range doc.Layout {
		names = append(names, p.Region)
	}

	assert.Equal(t, []string{"header", "client", "intro", "spec-1", "spec-2", "totals", "terms"}, names)
	assert.Equal(t, doc.Pages, doc.Layout[len(doc.Layout)-1].Page)
}

func TestRenderer_Render_DoesNotMutateInput(t *testing.T) {
	spec := pricedSpec(window.TypeCasement, "Hall")
	spec.Computed = window.Computed{TotalPrice: -1}

	q := newQuotation(spec)

	_, err := document.NewRenderer(document.Config{}).WithClock(clock).Render(q)
	require.NoError(t, err)
	assert.InDelta(t, -1, q.Specs[0].Computed.TotalPrice, 1e-12)
}

func TestRenderer_Render_NoSpecifications(t *testing.T) {
	r := document.NewRenderer(document.Config{})

	_, err := r.Render(newQuotation())
	assert.ErrorIs(t, err, document.ErrNoSpecifications)

	_, err = r.Render(nil)
	assert.ErrorIs(t, err, document.ErrNoSpecifications)
}

func TestRenderer_Render_DegradesOnBadInput(t *testing.T) {
	unknown := pricedSpec(window.Type("skylight"), "")
	noSize := pricedSpec(window.TypeFixed, "Store")
	noSize.Dimensions = window.Dimensions{}

	q := newQuotation(unknown, noSize)
	q.Client = quotation.Client{}
	q.Company = quotation.Company{}
	q.Number = ""

	doc, err := document.NewRenderer(document.Config{}).WithClock(clock).Render(q)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
	assert.Equal(t, "Quotation_Draft_2026-03-14.pdf", doc.Filename)
	assert.Equal(t, window.PlaceholderTitle, unknown.Type.Title())
}

func TestRenderer_Render_PaginatesSpecificationRegions(t *testing.T) {
	var specs []window.Specification
	for _, typ := range window.Types {
		specs = append(specs, pricedSpec(typ, typ.Title()))
	}

	doc, err := document.NewRenderer(document.Config{}).WithClock(clock).Render(newQuotation(specs...))
	require.NoError(t, err)

	usable := document.A4.UsableHeight()
	perPage := map[int]int{}

	var tallest float64

	for _, p := range doc.Layout {
		if len(p.Region) < 5 || p.Region[:5] != "spec-" {
			continue
		}

		perPage[p.Page]++

		tallest = max(tallest, p.Height)
	}

	require.Len(t, perPage, len(specs), "each specification region should share its page with no other")

	shortest := math.Inf(1)
	for _, p := range doc.Layout {
		if len(p.Region) > 5 && p.Region[:5] == "spec-" {
			shortest = min(shortest, p.Height)
		}
	}

	require.Greater(t, shortest, usable/2)

	limit := int(math.Floor(usable / shortest))
	for page, n := range perPage {
		assert.LessOrEqual(t, n, limit, "page %d", page)
	}

	assert.LessOrEqual(t, tallest, usable)
}
