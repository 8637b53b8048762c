package document

// Metrics describes the fixed page geometry in millimetres.
type Metrics struct {
	PageWidth      float64
	PageHeight     float64
	MarginLeft     float64
	MarginRight    float64
	MarginTop      float64
	MarginBottom   float64
	SectionSpacing float64
}

// A4 portrait with room at the bottom for the footer.
var A4 = Metrics{
	PageWidth:      210,
	PageHeight:     297,
	MarginLeft:     15,
	MarginRight:    15,
	MarginTop:      15,
	MarginBottom:   18,
	SectionSpacing: 6,
}

func (m Metrics) ContentWidth() float64 {
	return m.PageWidth - m.MarginLeft - m.MarginRight
}

// UsableHeight is the vertical space between the top and bottom margins.
func (m Metrics) UsableHeight() float64 {
	return m.PageHeight - m.MarginTop - m.MarginBottom
}

// Region is a self-contained block of the document. Height must be known
// before Draw is called.
type Region interface {
	Name() string
	Height() float64
	Draw(y float64)
}

// Placement records where a region ended up.
type Placement struct {
	Region string  `json:"region"`
	Page   int     `json:"page"`
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
}

// NewPageFunc is called whenever the cursor opens a page. It returns the
// height consumed at the top of the page, e.g. by a continuation header.
type NewPageFunc func(page int) float64

// Cursor is the vertical write position over a growing sequence of pages.
type Cursor struct {
	metrics    Metrics
	newPage    NewPageFunc
	page       int
	y          float64
	dirty      bool
	placements []Placement
}

func NewCursor(m Metrics, newPage NewPageFunc) *Cursor {
	return &Cursor{metrics: m, newPage: newPage}
}

func (c *Cursor) Page() int {
	return c.page
}

func (c *Cursor) Y() float64 {
	return c.y
}

// Remaining is the space left above the bottom margin of the current page.
func (c *Cursor) Remaining() float64 {
	if c.page == 0 {
		return 0
	}

	return c.metrics.PageHeight - c.metrics.MarginBottom - c.y
}

// PageBreak opens a new page. It does nothing when the current page has
// no regions on it yet.
func (c *Cursor) PageBreak() {
	if c.page > 0 && !c.dirty {
		return
	}

	c.page++
	c.y = c.metrics.MarginTop
	c.dirty = false

	if c.newPage != nil {
		c.y += c.newPage(c.page)
	}
}

// Emit places r at the cursor, breaking to a new page first when r does not
// fit. A region taller than a whole page is still drawn on a fresh page.
func (c *Cursor) Emit(r Region) {
	if c.page == 0 {
		c.PageBreak()
	}

	h := r.Height()
	if c.Remaining() < h {
		c.PageBreak()
	}

	r.Draw(c.y)

	c.placements = append(c.placements, Placement{Region: r.Name(), Page: c.page, Y: c.y, Height: h})
	c.y += h + c.metrics.SectionSpacing
	c.dirty = true
}

func (c *Cursor) Placements() []Placement {
	return c.placements
}
