package window

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidDimensions = errors.New("width and height must be positive")
	ErrInvalidPricing    = errors.New("prices must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidLayout     = fmt.Errorf("panels must be between 1 and %d and tracks between 0 and %d", MaxPanels, MaxTracks)
)

// Limits on the sash layout of a single unit.
const (
	MaxPanels = 12
	MaxTracks = 6
)

// Specification is one configured window or door unit within a quotation.
type Specification struct {
	ID         string     `json:"id"`
	Type       Type       `json:"type"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	Dimensions Dimensions `json:"dimensions"`
	Options    Options    `json:"specifications"`
	Pricing    Pricing    `json:"pricing"`

	// Computed is derived from Dimensions, Options and Pricing and is
	// overwritten every time the specification is priced.
	Computed Computed `json:"computedValues"`
}

// Dimensions are in millimeters.
type Dimensions struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	BayAngle *float64 `json:"bayAngle,omitempty"`
}

type Options struct {
	Glass       Glass    `json:"glass"`
	Frame       Frame    `json:"frame"`
	Lock        Lock     `json:"lock"`
	OpeningType string   `json:"openingType"`
	Panels      int      `json:"panels"`
	Tracks      int      `json:"tracks"`
	Grille      Grille   `json:"grille"`
	Features    Features `json:"features"`
}

type Glass struct {
	Type      string `json:"type"`
	Thickness string `json:"thickness"`
}

type Frame struct {
	Material string `json:"material"`
	Color    string `json:"color"`
}

type Lock struct {
	Type     string `json:"type"`
	Position string `json:"position"`
}

type Grille struct {
	Enabled bool   `json:"enabled"`
	Style   string `json:"style"`
}

type Features struct {
	ScreenIncluded bool `json:"screenIncluded"`
	Motorized      bool `json:"motorized"`
}

type Pricing struct {
	BasePrice float64 `json:"basePrice"`
	SqFtPrice float64 `json:"sqFtPrice"`
	Quantity  int     `json:"quantity"`
}

type Computed struct {
	Area       float64 `json:"area"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Weight     float64 `json:"weight"`
}

// GlassOption returns the key used to look up the glass surcharge,
// e.g. "clear-5mm" or "double-glazed" when no thickness is set.
func (o Options) GlassOption() string {
	if o.Glass.Thickness == "" {
		return o.Glass.Type
	}

	return o.Glass.Type + "-" + o.Glass.Thickness
}

// ParseGlassOption splits a glass option such as "toughened-10mm" or a
// sheet cell such as "Clear 6 mm" into glass type and thickness. The
// thickness is empty when the option does not end in a millimeter size.
func ParseGlassOption(option string) (glassType, thickness string) {
	option = normalize(strings.ReplaceAll(strings.ToLower(option), " mm", "mm"))

	i := strings.LastIndex(option, "-")
	if i < 0 || !strings.HasSuffix(option, "mm") || !unicode.IsDigit(rune(option[i+1])) {
		return option, ""
	}

	return option[:i], option[i+1:]
}

// Validate rejects specifications that cannot be priced meaningfully.
// It is meant for input boundaries; pricing itself never fails.
func Validate(s Specification) error {
	if s.Dimensions.Width <= 0 || s.Dimensions.Height <= 0 {
		return fmt.Errorf("%s: %w", label(s), ErrInvalidDimensions)
	}

	if s.Pricing.BasePrice < 0 || s.Pricing.SqFtPrice < 0 {
		return fmt.Errorf("%s: %w", label(s), ErrInvalidPricing)
	}

	if s.Pricing.Quantity < 1 {
		return fmt.Errorf("%s: %w", label(s), ErrInvalidQuantity)
	}

	if o := s.Options; o.Panels < 1 || o.Panels > MaxPanels || o.Tracks < 0 || o.Tracks > MaxTracks {
		return fmt.Errorf("%s: %w", label(s), ErrInvalidLayout)
	}

	return nil
}

func label(s Specification) string {
	switch {
	case s.Name != "":
		return fmt.Sprintf("window %q", s.Name)
	case s.ID != "":
		return fmt.Sprintf("window %s", s.ID)
	}

	return "window"
}
