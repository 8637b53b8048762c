package document

import (
	"math"

	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeLine
	ShapePolygon
	ShapeCircle
)

type Point struct {
	X, Y float64
}

// Shape is one primitive of a schematic. Rect uses Points[0] as the top-left
// corner and Points[1] as the bottom-right, Line uses two points, Circle uses
// Points[0] as its centre.
type Shape struct {
	Kind   ShapeKind
	Points []Point
	Radius float64
	Fill   bool
	Dashed bool
}

// Schematic is the outcome of drawing a window diagram: either a set of
// shapes or a placeholder label to show instead.
type Schematic struct {
	Shapes      []Shape
	Placeholder string
}

func (s Schematic) OK() bool {
	return s.Placeholder == ""
}

const (
	PlaceholderUnknownType  = "Diagram not available"
	PlaceholderNoDimensions = "Dimensions not provided"
)

const (
	defaultBayAngle          = 135.0
	minAspect, maxAspect     = 0.5, 1.3
	frameFraction            = 0.045
	arrowSize                = 2.2
	maxLouvres, minLouvres   = 18, 4
	glassBlockTargetFraction = 1.0 / 6
)

type Box struct {
	X, Y, W, H float64
}

func (b Box) inset(d float64) Box {
	return Box{X: b.X + d, Y: b.Y + d, W: b.W - 2*d, H: b.H - 2*d}
}

func (b Box) right() float64  { return b.X + b.W }
func (b Box) bottom() float64 { return b.Y + b.H }
func (b Box) midX() float64   { return b.X + b.W/2 }
func (b Box) midY() float64   { return b.Y + b.H/2 }

// SchematicSize returns the diagram box size for a column of the given width.
// The height follows the window's aspect ratio within fixed bounds.
func SchematicSize(spec window.Specification, width float64) (w, h float64) {
	aspect := 0.75
	if spec.Dimensions.Width > 0 && spec.Dimensions.Height > 0 {
		aspect = spec.Dimensions.Height / spec.Dimensions.Width
	}

	aspect = math.Min(math.Max(aspect, minAspect), maxAspect)

	return width, width * aspect
}

type drawer func(spec window.Specification, glass Box, d *sketch)

var drawers = map[window.Type]drawer{
	window.TypeSliding:    drawSliding,
	window.TypeCasement:   drawCasement,
	window.TypeBay:        drawBay,
	window.TypeFixed:      drawFixed,
	window.TypeAwning:     drawAwning,
	window.TypePicture:    drawPicture,
	window.TypeDoubleHung: drawDoubleHung,
	window.TypeSingleHung: drawSingleHung,
	window.TypePivot:      drawPivot,
	window.TypeMetal:      drawMetal,
	window.TypeLouvered:   drawLouvered,
	window.TypeGlassBlock: drawGlassBlock,
}

// DrawSchematic produces the diagram for spec inside box.
func DrawSchematic(spec window.Specification, box Box) Schematic {
	draw, ok := drawers[spec.Type]
	if !ok {
		return Schematic{Placeholder: PlaceholderUnknownType}
	}

	if spec.Dimensions.Width <= 0 || spec.Dimensions.Height <= 0 {
		return Schematic{Placeholder: PlaceholderNoDimensions}
	}

	if box.W <= 0 || box.H <= 0 {
		return Schematic{Placeholder: PlaceholderUnknownType}
	}

	d := &sketch{}
	frame := math.Min(box.W, box.H) * frameFraction

	if spec.Type != window.TypeBay {
		d.rect(box, false)
		d.rect(box.inset(frame), false)
	}

	glass := box.inset(frame)
	draw(spec, glass, d)

	if spec.Options.Grille.Enabled && spec.Type != window.TypeGlassBlock && spec.Type != window.TypeLouvered {
		grille(spec.Options.Grille.Style, glass.inset(frame), d)
	}

	if spec.Options.Features.ScreenIncluded {
		d.dashedRect(glass.inset(frame / 2))
	}

	if spec.Options.Features.Motorized {
		d.circle(Point{X: box.right() - 2*frame, Y: box.Y + 2*frame}, frame, true)
	}

	return Schematic{Shapes: d.shapes}
}

type sketch struct {
	shapes []Shape
}

func (d *sketch) rect(b Box, fill bool) {
	d.shapes = append(d.shapes, Shape{
		Kind:   ShapeRect,
		Points: []Point{{b.X, b.Y}, {b.right(), b.bottom()}},
		Fill:   fill,
	})
}

func (d *sketch) dashedRect(b Box) {
	d.shapes = append(d.shapes, Shape{
		Kind:   ShapeRect,
		Points: []Point{{b.X, b.Y}, {b.right(), b.bottom()}},
		Dashed: true,
	})
}

func (d *sketch) line(a, b Point, dashed bool) {
	d.shapes = append(d.shapes, Shape{Kind: ShapeLine, Points: []Point{a, b}, Dashed: dashed})
}

func (d *sketch) polygon(fill bool, pts ...Point) {
	d.shapes = append(d.shapes, Shape{Kind: ShapePolygon, Points: pts, Fill: fill})
}

func (d *sketch) circle(c Point, r float64, fill bool) {
	d.shapes = append(d.shapes, Shape{Kind: ShapeCircle, Points: []Point{c}, Radius: r, Fill: fill})
}

// arrow draws a shaft from a to b with a filled head at b.
func (d *sketch) arrow(a, b Point) {
	d.line(a, b, false)

	dx, dy := b.X-a.X, b.Y-a.Y

	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	ux, uy := dx/length, dy/length
	s := math.Min(arrowSize, length/2)

	d.polygon(true,
		b,
		Point{b.X - ux*s - uy*s/2, b.Y - uy*s + ux*s/2},
		Point{b.X - ux*s + uy*s/2, b.Y - uy*s - ux*s/2},
	)
}

// columns splits b into n equal vertical panes.
func columns(b Box, n int) []Box {
	n = max(n, 1)
	w := b.W / float64(n)

	out := make([]Box, n)
	for i := range out {
		out[i] = Box{X: b.X + float64(i)*w, Y: b.Y, W: w, H: b.H}
	}

	return out
}

func drawSliding(spec window.Specification, glass Box, d *sketch) {
	panes := columns(glass, spec.Options.Panels)
	for i, p := range panes {
		d.rect(p, false)

		y := p.midY()
		left, right := Point{p.X + p.W*0.25, y}, Point{p.X + p.W*0.75, y}

		if i%2 == 0 {
			d.arrow(left, right)
		} else {
			d.arrow(right, left)
		}
	}
}

func drawCasement(spec window.Specification, glass Box, d *sketch) {
	panes := columns(glass, spec.Options.Panels)
	for i, p := range panes {
		d.rect(p, false)

		// Lines meet on the hinge side; panes alternate hinges.
		hingeX, freeX := p.X, p.right()
		if i%2 == 1 {
			hingeX, freeX = p.right(), p.X
		}

		d.line(Point{freeX, p.Y}, Point{hingeX, p.midY()}, true)
		d.line(Point{freeX, p.bottom()}, Point{hingeX, p.midY()}, true)
	}
}

func drawAwning(_ window.Specification, glass Box, d *sketch) {
	d.line(Point{glass.X, glass.bottom()}, Point{glass.midX(), glass.Y}, true)
	d.line(Point{glass.right(), glass.bottom()}, Point{glass.midX(), glass.Y}, true)
}

func drawFixed(_ window.Specification, glass Box, d *sketch) {
	d.line(Point{glass.X, glass.Y}, Point{glass.right(), glass.bottom()}, false)
	d.line(Point{glass.right(), glass.Y}, Point{glass.X, glass.bottom()}, false)
}

func drawPicture(_ window.Specification, glass Box, d *sketch) {
	d.rect(glass.inset(math.Min(glass.W, glass.H)*0.08), false)
}

func drawDoubleHung(_ window.Specification, glass Box, d *sketch) {
	top, bottom := hungSashes(glass, d)
	d.arrow(Point{top.midX(), top.midY() - top.H*0.2}, Point{top.midX(), top.midY() + top.H*0.2})
	d.arrow(Point{bottom.midX(), bottom.midY() + bottom.H*0.2}, Point{bottom.midX(), bottom.midY() - bottom.H*0.2})
}

func drawSingleHung(_ window.Specification, glass Box, d *sketch) {
	_, bottom := hungSashes(glass, d)
	d.arrow(Point{bottom.midX(), bottom.midY() + bottom.H*0.2}, Point{bottom.midX(), bottom.midY() - bottom.H*0.2})
}

func hungSashes(glass Box, d *sketch) (top, bottom Box) {
	top = Box{X: glass.X, Y: glass.Y, W: glass.W, H: glass.H / 2}
	bottom = Box{X: glass.X, Y: glass.midY(), W: glass.W, H: glass.H / 2}

	d.rect(top, false)
	d.rect(bottom, false)

	return top, bottom
}

func drawPivot(_ window.Specification, glass Box, d *sketch) {
	y := glass.midY()
	r := math.Min(glass.W, glass.H) * 0.03

	d.line(Point{glass.X, y}, Point{glass.right(), y}, true)
	d.circle(Point{glass.X, y}, r, true)
	d.circle(Point{glass.right(), y}, r, true)
}

func drawMetal(_ window.Specification, glass Box, d *sketch) {
	const bars = 3

	step := glass.H / (bars + 1)
	for i := 1; i <= bars; i++ {
		y := glass.Y + float64(i)*step
		d.line(Point{glass.X, y}, Point{glass.right(), y}, false)
	}

	d.line(Point{glass.midX(), glass.Y}, Point{glass.midX(), glass.bottom()}, false)
}

func drawLouvered(_ window.Specification, glass Box, d *sketch) {
	n := int(glass.H / (glass.W * 0.08))
	n = min(max(n, minLouvres), maxLouvres)

	step := glass.H / float64(n)
	for i := range n {
		y := glass.Y + float64(i)*step
		d.polygon(false,
			Point{glass.X, y + step*0.7},
			Point{glass.right(), y + step*0.7},
			Point{glass.right(), y + step*0.2},
			Point{glass.X, y + step*0.2},
		)
	}
}

func drawGlassBlock(_ window.Specification, glass Box, d *sketch) {
	target := glass.W * glassBlockTargetFraction

	cols := max(int(math.Round(glass.W/target)), 1)
	rows := max(int(math.Round(glass.H/target)), 1)
	bw, bh := glass.W/float64(cols), glass.H/float64(rows)

	for r := range rows {
		for c := range cols {
			cell := Box{X: glass.X + float64(c)*bw, Y: glass.Y + float64(r)*bh, W: bw, H: bh}
			d.rect(cell.inset(math.Min(bw, bh)*0.08), false)
		}
	}
}

// drawBay draws the plan-like elevation of a three-sided bay: a centre
// light flanked by two foreshortened side lights.
func drawBay(spec window.Specification, glass Box, d *sketch) {
	angle := defaultBayAngle
	if a := spec.Dimensions.BayAngle; a != nil && *a > 90 && *a < 180 {
		angle = *a
	}

	// Side lights shrink as the bay opens towards a flat wall.
	foreshorten := math.Cos((180 - angle) * math.Pi / 180)
	sideW := glass.W * 0.25 * foreshorten
	centerW := glass.W - 2*sideW
	skew := glass.H * 0.08 * math.Sin((180-angle)*math.Pi/180)

	center := Box{X: glass.X + sideW, Y: glass.Y, W: centerW, H: glass.H}
	d.rect(center, false)
	d.rect(center.inset(math.Min(center.W, center.H)*frameFraction), false)

	d.polygon(false,
		Point{glass.X, glass.Y + skew},
		Point{center.X, glass.Y},
		Point{center.X, glass.bottom()},
		Point{glass.X, glass.bottom() - skew},
	)
	d.polygon(false,
		Point{center.right(), glass.Y},
		Point{glass.right(), glass.Y + skew},
		Point{glass.right(), glass.bottom() - skew},
		Point{center.right(), glass.bottom()},
	)
}

func grille(style string, b Box, d *sketch) {
	switch style {
	case "prairie":
		m := math.Min(b.W, b.H) * 0.15
		d.line(Point{b.X, b.Y + m}, Point{b.right(), b.Y + m}, false)
		d.line(Point{b.X, b.bottom() - m}, Point{b.right(), b.bottom() - m}, false)
		d.line(Point{b.X + m, b.Y}, Point{b.X + m, b.bottom()}, false)
		d.line(Point{b.right() - m, b.Y}, Point{b.right() - m, b.bottom()}, false)
	case "diamond":
		d.polygon(false,
			Point{b.midX(), b.Y},
			Point{b.right(), b.midY()},
			Point{b.midX(), b.bottom()},
			Point{b.X, b.midY()},
		)
	case "colonial":
		for i := 1; i < 3; i++ {
			x := b.X + b.W*float64(i)/3
			d.line(Point{x, b.Y}, Point{x, b.bottom()}, false)
		}

		d.line(Point{b.X, b.midY()}, Point{b.right(), b.midY()}, false)
	default:
		d.line(Point{b.midX(), b.Y}, Point{b.midX(), b.bottom()}, false)
		d.line(Point{b.X, b.midY()}, Point{b.right(), b.midY()}, false)
	}
}
