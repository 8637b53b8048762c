package document

import (
	"github.com/go-pdf/fpdf"
)

type rgb struct {
	r, g, b int
}

var (
	colorPrimary = rgb{21, 76, 121}
	colorAccent  = rgb{232, 240, 248}
	colorText    = rgb{33, 37, 41}
	colorMuted   = rgb{108, 117, 125}
	colorBorder  = rgb{206, 212, 218}
	colorWhite   = rgb{255, 255, 255}
	colorSurface = rgb{248, 249, 250}
)

const fontFamily = "Helvetica"

// canvas wraps fpdf with the handful of primitives the regions need. All
// text goes through the cp1252 translator of the core fonts.
type canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	m   Metrics
}

func newCanvas(m Metrics) *canvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(m.MarginLeft, m.MarginTop, m.MarginRight)
	pdf.SetAutoPageBreak(false, 0)

	return &canvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		m:   m,
	}
}

func (c *canvas) font(style string, size float64, col rgb) {
	c.pdf.SetFont(fontFamily, style, size)
	c.pdf.SetTextColor(col.r, col.g, col.b)
}

func (c *canvas) text(x, y, w, h float64, s, align string) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.tr(s), "", 0, align, false, 0, "")
}

// fitText shortens s with an ellipsis until it fits in w.
func (c *canvas) fitText(s string, w float64) string {
	if c.pdf.GetStringWidth(c.tr(s)) <= w {
		return s
	}

	r := []rune(s)
	for len(r) > 0 && c.pdf.GetStringWidth(c.tr(string(r)+"...")) > w {
		r = r[:len(r)-1]
	}

	return string(r) + "..."
}

// lines wraps s to w and returns at most limit lines.
func (c *canvas) lines(s string, w float64, limit int) []string {
	out := c.pdf.SplitText(c.tr(s), w)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// paragraph draws pre-wrapped, already translated lines.
func (c *canvas) paragraph(x, y, w, lineH float64, lines []string) {
	for i, l := range lines {
		c.pdf.SetXY(x, y+float64(i)*lineH)
		c.pdf.CellFormat(w, lineH, l, "", 0, "L", false, 0, "")
	}
}

func (c *canvas) fill(x, y, w, h float64, col rgb) {
	c.pdf.SetFillColor(col.r, col.g, col.b)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *canvas) box(x, y, w, h float64, fillCol, border rgb) {
	c.pdf.SetFillColor(fillCol.r, fillCol.g, fillCol.b)
	c.pdf.SetDrawColor(border.r, border.g, border.b)
	c.pdf.SetLineWidth(0.2)
	c.pdf.Rect(x, y, w, h, "FD")
}

func (c *canvas) hline(x1, x2, y float64, col rgb, width float64) {
	c.pdf.SetDrawColor(col.r, col.g, col.b)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y, x2, y)
}

func (c *canvas) schematic(s Schematic) {
	c.pdf.SetDrawColor(colorPrimary.r, colorPrimary.g, colorPrimary.b)
	c.pdf.SetFillColor(colorPrimary.r, colorPrimary.g, colorPrimary.b)
	c.pdf.SetLineWidth(0.3)

	for _, sh := range s.Shapes {
		if sh.Dashed {
			c.pdf.SetDashPattern([]float64{1, 1}, 0)
		}

		style := "D"
		if sh.Fill {
			style = "F"
		}

		switch sh.Kind {
		case ShapeRect:
			a, b := sh.Points[0], sh.Points[1]
			c.pdf.Rect(a.X, a.Y, b.X-a.X, b.Y-a.Y, style)
		case ShapeLine:
			c.pdf.Line(sh.Points[0].X, sh.Points[0].Y, sh.Points[1].X, sh.Points[1].Y)
		case ShapePolygon:
			pts := make([]fpdf.PointType, len(sh.Points))
			for i, p := range sh.Points {
				pts[i] = fpdf.PointType{X: p.X, Y: p.Y}
			}

			c.pdf.Polygon(pts, style)
		case ShapeCircle:
			c.pdf.Circle(sh.Points[0].X, sh.Points[0].Y, sh.Radius, style)
		}

		if sh.Dashed {
			c.pdf.SetDashPattern([]float64{}, 0)
		}
	}
}
