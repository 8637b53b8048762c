package document

import (
	"fmt"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const (
	titleBarHeight    = 10
	regionPadding     = 4
	columnGap         = 6
	leftColumnShare   = 0.4
	schematicFraction = 0.85
	captionHeight     = 11
	blockGap          = 4
	cardHeight        = 14
	cardGap           = 3
	cardsPerRow       = 3
)

// specRegion is one window specification: a title bar over a diagram column
// and a data column. Both column heights are known up front so the region is
// never split across pages.
type specRegion struct {
	s     *sheet
	index int
	spec  window.Specification
}

func (r specRegion) Name() string {
	return fmt.Sprintf("spec-%d", r.index+1)
}

func (r specRegion) leftWidth() float64 {
	return r.s.width() * leftColumnShare
}

func (r specRegion) rightWidth() float64 {
	return r.s.width() - r.leftWidth() - columnGap
}

func (r specRegion) leftHeight() float64 {
	_, h := SchematicSize(r.spec, r.leftWidth()*schematicFraction)
	return h + captionHeight
}

func (r specRegion) rightHeight() float64 {
	glass, frame, hardware, config := r.groups()

	groups := max(tableHeight(len(glass)), tableHeight(len(frame))) +
		blockGap +
		max(tableHeight(len(hardware)), tableHeight(len(config)))

	return tableHeight(len(r.basicInfo())) + blockGap + groups + blockGap + r.cardsHeight()
}

func (r specRegion) cardsHeight() float64 {
	rows := (len(r.cards()) + cardsPerRow - 1) / cardsPerRow
	return float64(rows)*cardHeight + float64(rows-1)*cardGap
}

func (r specRegion) Height() float64 {
	return titleBarHeight + regionPadding + max(r.leftHeight(), r.rightHeight()) + regionPadding
}

func (r specRegion) basicInfo() [][2]string {
	sp := r.spec
	size := notAvailable

	if sp.Dimensions.Width > 0 && sp.Dimensions.Height > 0 {
		size = fmt.Sprintf("%s x %s mm", quantity(sp.Dimensions.Width, 0), quantity(sp.Dimensions.Height, 0))
	}

	return [][2]string{
		{"Window type", sp.Type.Title()},
		{"Location", sp.Location},
		{"Size (W x H)", size},
		{"Opening", Label(sp.Options.OpeningType)},
		{"Quantity", fmt.Sprint(sp.Pricing.Quantity)},
	}
}

func (r specRegion) groups() (glass, frame, hardware, config [][2]string) {
	o := r.spec.Options

	glass = [][2]string{
		{"Type", Label(o.Glass.Type)},
		{"Thickness", orNA(o.Glass.Thickness)},
	}
	frame = [][2]string{
		{"Material", Label(o.Frame.Material)},
		{"Colour", Label(o.Frame.Color)},
	}
	hardware = [][2]string{
		{"Lock", Label(o.Lock.Type)},
		{"Position", Label(o.Lock.Position)},
	}

	grilleValue := "No"
	if o.Grille.Enabled {
		grilleValue = Label(o.Grille.Style)
	}

	config = [][2]string{
		{"Panels", fmt.Sprint(o.Panels)},
		{"Tracks", fmt.Sprint(o.Tracks)},
		{"Grille", grilleValue},
		{"Screen", yesNo(o.Features.ScreenIncluded)},
		{"Motorized", yesNo(o.Features.Motorized)},
	}

	if r.spec.Type == window.TypeBay {
		angle := defaultBayAngle
		if a := r.spec.Dimensions.BayAngle; a != nil {
			angle = *a
		}

		config = append(config, [2]string{"Bay angle", quantity(angle, 0) + " deg"})
	}

	return glass, frame, hardware, config
}

type card struct {
	label, value string
	highlight    bool
}

func (r specRegion) cards() []card {
	c := r.spec.Computed
	p := pricing.PriceSpecification(r.spec)

	return []card{
		{label: "Base price", value: Money(p.AdjustedBasePrice)},
		{label: "Rate per sq ft", value: Money(p.AdjustedSqFtPrice)},
		{label: "Area", value: quantity(c.Area, 2) + " sq ft"},
		{label: "Unit price", value: Money(c.UnitPrice)},
		{label: "Weight", value: quantity(c.Weight, 1) + " kg"},
		{label: "Total", value: Money(c.TotalPrice), highlight: true},
	}
}

func (r specRegion) Draw(y float64) {
	s, c := r.s, r.s.c
	h := r.Height()

	c.box(s.left(), y, s.width(), h, colorWhite, colorBorder)
	c.fill(s.left(), y, s.width(), titleBarHeight, colorPrimary)

	title := fmt.Sprintf("%d. %s", r.index+1, orNA(r.spec.Name))
	c.font("B", 10.5, colorWhite)
	c.text(s.left()+3, y, s.width()*0.6, titleBarHeight, c.fitText(title, s.width()*0.6), "L")
	c.font("", 9, colorWhite)
	c.text(s.left()+s.width()*0.6, y, s.width()*0.4-3, titleBarHeight, r.spec.Type.Title(), "R")

	top := y + titleBarHeight + regionPadding
	r.drawDiagram(top)
	r.drawData(top)
}

func (r specRegion) drawDiagram(top float64) {
	s, c := r.s, r.s.c
	colW := r.leftWidth()

	w, h := SchematicSize(r.spec, colW*schematicFraction)
	box := Box{X: s.left() + (colW-w)/2, Y: top, W: w, H: h}

	sch := DrawSchematic(r.spec, box)
	if sch.OK() {
		c.schematic(sch)
	} else {
		c.box(box.X, box.Y, box.W, box.H, colorSurface, colorBorder)
		c.font("I", 9, colorMuted)
		c.text(box.X, box.midY()-3, box.W, 6, sch.Placeholder, "C")
	}

	sp := r.spec
	caption := notAvailable
	if sp.Dimensions.Width > 0 && sp.Dimensions.Height > 0 {
		caption = fmt.Sprintf("W %s mm x H %s mm", quantity(sp.Dimensions.Width, 0), quantity(sp.Dimensions.Height, 0))
	}

	c.font("B", 8.5, colorText)
	c.text(s.left(), top+h+1, colW, lineHeight, caption, "C")
	c.font("", 8, colorMuted)
	c.text(s.left(), top+h+1+lineHeight, colW, lineHeight, c.fitText(orNA(sp.Location), colW), "C")
}

func (r specRegion) drawData(top float64) {
	s, c := r.s, r.s.c
	x := s.left() + r.leftWidth() + columnGap
	w := r.rightWidth()

	y := top + s.table(x, top, w, "Basic information", r.basicInfo()) + blockGap

	glass, frame, hardware, config := r.groups()
	half := (w - blockGap) / 2

	row1 := max(s.table(x, y, half, "Glass", glass), s.table(x+half+blockGap, y, half, "Frame", frame))
	y += row1 + blockGap

	row2 := max(s.table(x, y, half, "Hardware", hardware), s.table(x+half+blockGap, y, half, "Configuration", config))
	y += row2 + blockGap

	cardW := (w - float64(cardsPerRow-1)*cardGap) / cardsPerRow
	for i, cd := range r.cards() {
		cx := x + float64(i%cardsPerRow)*(cardW+cardGap)
		cy := y + float64(i/cardsPerRow)*(cardHeight+cardGap)

		bg, fg, label := colorSurface, colorText, colorMuted
		if cd.highlight {
			bg, fg, label = colorPrimary, colorWhite, colorAccent
		}

		c.box(cx, cy, cardW, cardHeight, bg, colorBorder)
		c.font("", 7.5, label)
		c.text(cx+2, cy+2, cardW-4, 4, cd.label, "L")
		c.font("B", 9.5, fg)
		c.text(cx+2, cy+7, cardW-4, 6, c.fitText(cd.value, cardW-4), "L")
	}
}
