package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const (
	headerHeight       = 42
	continuationHeight = 12
	clientHeight       = 36
	totalsHeight       = 56
	termsHeight        = 82
	lineHeight         = 5
	rowHeight          = 5
	tableHeaderHeight  = 6.5
	maxTerms           = 6
	maxNoteLines       = 2
	maxIntroLines      = 6
)

// sheet is the per-render state shared by all regions.
type sheet struct {
	c          *canvas
	q          *quotation.Quotation
	specs      []window.Specification
	totals     pricing.Totals
	issued     time.Time
	validUntil time.Time
	terms      []string
}

func (s *sheet) left() float64  { return s.c.m.MarginLeft }
func (s *sheet) width() float64 { return s.c.m.ContentWidth() }
func (s *sheet) right() float64 { return s.left() + s.width() }

func (s *sheet) number() string {
	return orNA(s.q.Number)
}

// table draws a titled key/value table and returns its height.
func (s *sheet) table(x, y, w float64, title string, rows [][2]string) float64 {
	c := s.c

	c.fill(x, y, w, tableHeaderHeight, colorAccent)
	c.font("B", 8.5, colorPrimary)
	c.text(x+2, y, w-4, tableHeaderHeight, title, "L")

	keyW := w * 0.45
	for i, r := range rows {
		ry := y + tableHeaderHeight + float64(i)*rowHeight
		if i%2 == 1 {
			c.fill(x, ry, w, rowHeight, colorSurface)
		}

		c.font("", 8, colorMuted)
		c.text(x+2, ry, keyW-2, rowHeight, r[0], "L")
		c.font("", 8, colorText)
		c.text(x+keyW, ry, w-keyW-2, rowHeight, c.fitText(orNA(r[1]), w-keyW-2), "L")
	}

	h := tableHeight(len(rows))
	c.hline(x, x+w, y+h, colorBorder, 0.2)

	return h
}

func tableHeight(rows int) float64 {
	return tableHeaderHeight + float64(rows)*rowHeight
}

type headerRegion struct{ s *sheet }

func (r headerRegion) Name() string    { return "header" }
func (r headerRegion) Height() float64 { return headerHeight }
func (r headerRegion) Draw(y float64) {
	s, c := r.s, r.s.c
	co := s.q.Company
	half := s.width() / 2

	c.font("B", 16, colorPrimary)
	c.text(s.left(), y, half, 8, c.fitText(orNA(co.Name), half), "L")

	var details []string
	if co.Address != "" {
		details = append(details, co.Address)
	}

	if contact := joinNonEmpty(" | ", prefixed("Phone: ", co.Phone), prefixed("Email: ", co.Email)); contact != "" {
		details = append(details, contact)
	}

	if reg := joinNonEmpty(" | ", prefixed("GSTIN: ", co.GSTIN), co.Website); reg != "" {
		details = append(details, reg)
	}

	c.font("", 8.5, colorMuted)
	for i, d := range details {
		c.text(s.left(), y+10+float64(i)*4.5, half, 4.5, c.fitText(d, half), "L")
	}

	c.font("B", 18, colorPrimary)
	c.text(s.left()+half, y, half, 9, "QUOTATION", "R")

	meta := [][2]string{
		{"No.", s.number()},
		{"Date", formatDate(s.issued)},
		{"Valid until", formatDate(s.validUntil)},
		{"Status", Label(string(s.q.Status))},
	}
	for i, m := range meta {
		my := y + 11 + float64(i)*lineHeight
		c.font("", 8.5, colorMuted)
		c.text(s.left()+half, my, half-32, lineHeight, m[0], "R")
		c.font("B", 8.5, colorText)
		c.text(s.right()-30, my, 30, lineHeight, m[1], "R")
	}

	c.hline(s.left(), s.right(), y+headerHeight-1, colorPrimary, 0.6)
}

// continuation is the slim header repeated on every page after the first.
func (s *sheet) continuation(y float64) float64 {
	c := s.c

	c.font("B", 9, colorPrimary)
	c.text(s.left(), y, s.width()/2, 6, c.fitText(orNA(s.q.Company.Name), s.width()/2), "L")
	c.font("", 8.5, colorMuted)
	c.text(s.left()+s.width()/2, y, s.width()/2, 6, fmt.Sprintf("Quotation %s (continued)", s.number()), "R")
	c.hline(s.left(), s.right(), y+8, colorBorder, 0.3)

	return continuationHeight
}

type clientRegion struct{ s *sheet }

func (r clientRegion) Name() string    { return "client" }
func (r clientRegion) Height() float64 { return clientHeight }
func (r clientRegion) Draw(y float64) {
	s, c := r.s, r.s.c
	cl := s.q.Client
	gap := 6.0
	w := (s.width() - gap) / 2

	c.box(s.left(), y, w, clientHeight, colorSurface, colorBorder)
	c.font("B", 8, colorMuted)
	c.text(s.left()+3, y+2, w-6, lineHeight, "PREPARED FOR", "L")
	c.font("B", 11, colorText)
	c.text(s.left()+3, y+7, w-6, 6, c.fitText(orNA(cl.Name), w-6), "L")

	c.font("", 8.5, colorText)
	rows := []string{
		"Phone: " + orNA(cl.Phone),
		"Email: " + orNA(cl.Email),
		"Address: " + orNA(cl.Address),
	}
	for i, row := range rows {
		c.text(s.left()+3, y+14+float64(i)*lineHeight, w-6, lineHeight, c.fitText(row, w-6), "L")
	}

	x := s.left() + w + gap
	c.box(x, y, w, clientHeight, colorSurface, colorBorder)
	c.font("B", 8, colorMuted)
	c.text(x+3, y+2, w-6, lineHeight, "SITE ADDRESS", "L")

	site := cl.SiteAddress
	if site == "" {
		site = cl.Address
	}

	c.font("", 8.5, colorText)
	c.paragraph(x+3, y+8, w-6, lineHeight-0.5, c.lines(orNA(site), w-6, 3))

	c.font("B", 8.5, colorPrimary)
	c.text(x+3, y+clientHeight-8, w-6, lineHeight,
		fmt.Sprintf("%d window units in %d specifications", s.q.Units(), len(s.specs)), "L")
}

// introRegion is the narrative paragraph. Its height depends on how the
// text wraps, which is known before drawing.
type introRegion struct {
	s     *sheet
	lines []string
}

func newIntroRegion(s *sheet) introRegion {
	text := fmt.Sprintf(
		"Thank you for the opportunity to quote for your project. Please find below our proposal for %d window units "+
			"across %d specifications, each with its diagram, configuration and pricing. All dimensions are in "+
			"millimetres and areas in square feet. Prices are subject to final site measurement.",
		s.q.Units(), len(s.specs),
	)

	s.c.font("", 9, colorText)

	return introRegion{s: s, lines: s.c.lines(text, s.width(), maxIntroLines)}
}

func (r introRegion) Name() string    { return "intro" }
func (r introRegion) Height() float64 { return 8 + float64(len(r.lines))*lineHeight }
func (r introRegion) Draw(y float64) {
	s, c := r.s, r.s.c

	c.font("B", 9.5, colorText)
	c.text(s.left(), y, s.width(), 6, "Dear "+orNA(s.q.Client.Name)+",", "L")
	c.font("", 9, colorText)
	c.paragraph(s.left(), y+7, s.width(), lineHeight, r.lines)
}

type totalsRegion struct{ s *sheet }

func (r totalsRegion) Name() string    { return "totals" }
func (r totalsRegion) Height() float64 { return totalsHeight }
func (r totalsRegion) Draw(y float64) {
	s, c := r.s, r.s.c
	t := s.totals

	c.fill(s.left(), y, s.width(), 8, colorPrimary)
	c.font("B", 10, colorWhite)
	c.text(s.left()+3, y, s.width()-6, 8, "Quotation Summary", "L")

	var area, weight float64
	for _, spec := range s.specs {
		q := float64(max(spec.Pricing.Quantity, 0))
		area += spec.Computed.Area * q
		weight += spec.Computed.Weight * q
	}

	gap := 6.0
	leftW := s.width() * 0.4
	s.table(s.left(), y+11, leftW, "Overview", [][2]string{
		{"Specifications", fmt.Sprint(len(s.specs))},
		{"Total units", fmt.Sprint(s.q.Units())},
		{"Total area", quantity(area, 2) + " sq ft"},
		{"Approx. weight", quantity(weight, 1) + " kg"},
	})

	x := s.left() + leftW + gap
	w := s.width() - leftW - gap
	amounts := [][2]string{
		{"Subtotal", Money(t.Subtotal)},
		{"Transport & loading", Money(t.TransportCost)},
		{fmt.Sprintf("GST (%s%%)", percent(t.GSTRate)), Money(t.GST)},
	}

	for i, a := range amounts {
		ay := y + 11 + float64(i)*7
		c.font("", 9, colorMuted)
		c.text(x+2, ay, w/2, 7, a[0], "L")
		c.font("", 9, colorText)
		c.text(x+w/2, ay, w/2-2, 7, a[1], "R")
		c.hline(x, x+w, ay+7, colorBorder, 0.2)
	}

	gy := y + 11 + float64(len(amounts))*7 + 3
	c.fill(x, gy, w, 10, colorPrimary)
	c.font("B", 11, colorWhite)
	c.text(x+2, gy, w/2, 10, "Grand Total", "L")
	c.text(x+w/2, gy, w/2-2, 10, Money(t.GrandTotal), "R")
}

type termsRegion struct{ s *sheet }

func (r termsRegion) Name() string    { return "terms" }
func (r termsRegion) Height() float64 { return termsHeight }
func (r termsRegion) Draw(y float64) {
	s, c := r.s, r.s.c

	c.font("B", 10, colorPrimary)
	c.text(s.left(), y, s.width(), 7, "Terms & Conditions", "L")
	c.hline(s.left(), s.right(), y+7, colorBorder, 0.3)

	terms := s.terms
	if len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}

	c.font("", 8.5, colorText)
	for i, term := range terms {
		line := fmt.Sprintf("%d. %s", i+1, term)
		c.text(s.left(), y+9+float64(i)*lineHeight, s.width(), lineHeight, c.fitText(line, s.width()), "L")
	}

	ny := y + 9 + maxTerms*lineHeight + 2
	c.font("B", 8.5, colorText)
	c.text(s.left(), ny, 14, lineHeight, "Notes:", "L")
	c.font("", 8.5, colorText)
	c.paragraph(s.left()+14, ny, s.width()-14, lineHeight, c.lines(orNA(s.q.Notes), s.width()-14, maxNoteLines))

	sy := y + termsHeight - 22
	w := (s.width() - 20) / 2

	c.font("", 8.5, colorMuted)
	c.text(s.left(), sy, w, lineHeight, "Customer acceptance", "L")
	c.text(s.right()-w, sy, w, lineHeight, "For "+orNA(s.q.Company.Name), "R")

	c.hline(s.left(), s.left()+w, sy+16, colorText, 0.3)
	c.hline(s.right()-w, s.right(), sy+16, colorText, 0.3)

	c.font("", 8, colorMuted)
	c.text(s.left(), sy+17, w, lineHeight, "Signature & date", "L")
	c.text(s.right()-w, sy+17, w, lineHeight, "Authorised Signatory", "R")
}

// footer annotates every page once the final page count is known.
func (s *sheet) footer(page, pages int) {
	c := s.c
	y := c.m.PageHeight - c.m.MarginBottom + 6
	third := s.width() / 3

	c.hline(s.left(), s.right(), y-2, colorBorder, 0.3)
	c.font("", 7.5, colorMuted)
	c.text(s.left(), y, third, 5, s.number(), "L")
	c.text(s.left()+third, y, third, 5, fmt.Sprintf("Page %d of %d", page, pages), "C")
	c.text(s.left()+2*third, y, third, 5, c.fitText(orNA(s.q.Company.Name), third), "R")
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}

	return prefix + v
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, sep)
}
