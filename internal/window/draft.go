package window

import "strings"

// Draft is a specification as it arrives from a form, an import or a stored
// document. Every field is optional; Resolve turns it into a Specification
// with the declared defaults applied.
type Draft struct {
	ID       *string `json:"id,omitempty"`
	Type     *string `json:"type,omitempty"`
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`

	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	BayAngle *float64 `json:"bayAngle,omitempty"`

	GlassType      *string `json:"glassType,omitempty"`
	GlassThickness *string `json:"glassThickness,omitempty"`
	FrameMaterial  *string `json:"frameMaterial,omitempty"`
	FrameColor     *string `json:"frameColor,omitempty"`
	LockType       *string `json:"lockType,omitempty"`
	LockPosition   *string `json:"lockPosition,omitempty"`
	OpeningType    *string `json:"openingType,omitempty"`
	Panels         *int    `json:"panels,omitempty"`
	Tracks         *int    `json:"tracks,omitempty"`
	GrilleEnabled  *bool   `json:"grilleEnabled,omitempty"`
	GrilleStyle    *string `json:"grilleStyle,omitempty"`
	ScreenIncluded *bool   `json:"screenIncluded,omitempty"`
	Motorized      *bool   `json:"motorized,omitempty"`

	BasePrice *float64 `json:"basePrice,omitempty"`
	SqFtPrice *float64 `json:"sqFtPrice,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
}

// Defaults applied by Resolve when a draft leaves a field unset.
const (
	DefaultType           = TypeSliding
	DefaultGlassType      = "clear"
	DefaultGlassThickness = "5mm"
	DefaultFrameMaterial  = "aluminum"
	DefaultFrameColor     = "white"
	DefaultLockType       = "crescent"
	DefaultLockPosition   = "center"
	DefaultGrilleStyle    = "none"
	DefaultQuantity       = 1
)

// Resolve applies the per-field defaults. Defaults for the opening type,
// panel and track counts depend on the window type.
func Resolve(d Draft) Specification {
	t := Type(normalize(str(d.Type, string(DefaultType))))
	info := catalog[t]

	s := Specification{
		ID:       strings.TrimSpace(str(d.ID, "")),
		Type:     t,
		Name:     strings.TrimSpace(str(d.Name, "")),
		Location: strings.TrimSpace(str(d.Location, "")),
		Dimensions: Dimensions{
			Width:    num(d.Width, 0),
			Height:   num(d.Height, 0),
			BayAngle: d.BayAngle,
		},
		Options: Options{
			Glass: Glass{
				Type:      normalize(str(d.GlassType, DefaultGlassType)),
				Thickness: normalize(str(d.GlassThickness, DefaultGlassThickness)),
			},
			Frame: Frame{
				Material: normalize(str(d.FrameMaterial, DefaultFrameMaterial)),
				Color:    strings.TrimSpace(str(d.FrameColor, DefaultFrameColor)),
			},
			Lock: Lock{
				Type:     normalize(str(d.LockType, DefaultLockType)),
				Position: normalize(str(d.LockPosition, DefaultLockPosition)),
			},
			OpeningType: normalize(str(d.OpeningType, info.opening)),
			Panels:      integer(d.Panels, max(info.panels, 1)),
			Tracks:      integer(d.Tracks, info.tracks),
			Grille: Grille{
				Enabled: flag(d.GrilleEnabled),
				Style:   normalize(str(d.GrilleStyle, DefaultGrilleStyle)),
			},
			Features: Features{
				ScreenIncluded: flag(d.ScreenIncluded),
				Motorized:      flag(d.Motorized),
			},
		},
		Pricing: Pricing{
			BasePrice: num(d.BasePrice, 0),
			SqFtPrice: num(d.SqFtPrice, 0),
			Quantity:  integer(d.Quantity, DefaultQuantity),
		},
	}

	// Double glazing has no single pane thickness.
	if s.Options.Glass.Type == "double-glazed" && str(d.GlassThickness, "") == "" {
		s.Options.Glass.Thickness = ""
	}

	return s
}

// ToDraft is the inverse of Resolve, used when a stored specification is
// edited field by field.
func ToDraft(s Specification) Draft {
	t := string(s.Type)

	return Draft{
		ID:             &s.ID,
		Type:           &t,
		Name:           &s.Name,
		Location:       &s.Location,
		Width:          &s.Dimensions.Width,
		Height:         &s.Dimensions.Height,
		BayAngle:       s.Dimensions.BayAngle,
		GlassType:      &s.Options.Glass.Type,
		GlassThickness: &s.Options.Glass.Thickness,
		FrameMaterial:  &s.Options.Frame.Material,
		FrameColor:     &s.Options.Frame.Color,
		LockType:       &s.Options.Lock.Type,
		LockPosition:   &s.Options.Lock.Position,
		OpeningType:    &s.Options.OpeningType,
		Panels:         &s.Options.Panels,
		Tracks:         &s.Options.Tracks,
		GrilleEnabled:  &s.Options.Grille.Enabled,
		GrilleStyle:    &s.Options.Grille.Style,
		ScreenIncluded: &s.Options.Features.ScreenIncluded,
		Motorized:      &s.Options.Features.Motorized,
		BasePrice:      &s.Pricing.BasePrice,
		SqFtPrice:      &s.Pricing.SqFtPrice,
		Quantity:       &s.Pricing.Quantity,
	}
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

func str(p *string, def string) string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return def
	}

	return *p
}

func num(p *float64, def float64) float64 {
	if p == nil {
		return def
	}

	return *p
}

func integer(p *int, def int) int {
	if p == nil {
		return def
	}

	return *p
}

func flag(p *bool) bool {
	return p != nil && *p
}
