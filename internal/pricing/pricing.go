package pricing

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const (
	// MM2PerSqFt converts square millimeters to square feet.
	MM2PerSqFt = 92903.0

	// KgPerSqFt is the approximate weight of a finished unit per square foot.
	KgPerSqFt = 15.0
)

// Priced holds every value derived from one specification.
type Priced struct {
	Area              float64
	AdjustedBasePrice float64
	AdjustedSqFtPrice float64
	UnitPrice         float64
	TotalPrice        float64
	Weight            float64
}

// Totals are the quotation-level roll-up values.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	TransportCost float64 `json:"transportCost"`
	GSTRate       float64 `json:"gstRate"`
	GST           float64 `json:"gst"`
	GrandTotal    float64 `json:"grandTotal"`
}

// PriceSpecification derives area, adjusted prices, totals and weight.
// Invalid input never fails: non-positive dimensions price as zero,
// a quantity below one yields a zero total and negative prices count as zero.
func PriceSpecification(spec window.Specification) Priced {
	w, h := spec.Dimensions.Width, spec.Dimensions.Height
	if w <= 0 || h <= 0 {
		return Priced{}
	}

	area := (w * h) / MM2PerSqFt
	adjustedBase := nonNegative(spec.Pricing.BasePrice) * FrameMultiplier(spec.Options.Frame.Material)
	adjustedSqFt := nonNegative(spec.Pricing.SqFtPrice) + GlassSurcharge(spec.Options.GlassOption())
	unit := adjustedBase + area*adjustedSqFt

	var total float64
	if spec.Pricing.Quantity >= 1 {
		total = unit * float64(spec.Pricing.Quantity)
	}

	return Priced{
		Area:              area,
		AdjustedBasePrice: adjustedBase,
		AdjustedSqFtPrice: adjustedSqFt,
		UnitPrice:         unit,
		TotalPrice:        total,
		Weight:            area * KgPerSqFt,
	}
}

// Apply returns a copy of spec with its computed values refreshed.
func Apply(spec window.Specification) window.Specification {
	p := PriceSpecification(spec)
	spec.Computed = window.Computed{
		Area:       p.Area,
		UnitPrice:  p.UnitPrice,
		TotalPrice: p.TotalPrice,
		Weight:     p.Weight,
	}

	return spec
}

// ApplyAll prices every specification in place.
func ApplyAll(specs []window.Specification) {
	for i := range specs {
		specs[i] = Apply(specs[i])
	}
}

// AggregateTotals sums the specification totals. GST is charged on the
// subtotal plus transport, not on the subtotal alone.
func AggregateTotals(specs []Priced, transportCost, gstRate float64) Totals {
	if len(specs) == 0 {
		return Totals{GSTRate: gstRate}
	}

	subtotal := decimal.Zero
	for _, s := range specs {
		subtotal = subtotal.Add(decimal.NewFromFloat(s.TotalPrice))
	}

	transport := decimal.NewFromFloat(nonNegative(transportCost))
	gst := subtotal.Add(transport).Mul(decimal.NewFromFloat(gstRate))

	return Totals{
		Subtotal:      subtotal.InexactFloat64(),
		TransportCost: transport.InexactFloat64(),
		GSTRate:       gstRate,
		GST:           gst.InexactFloat64(),
		GrandTotal:    subtotal.Add(transport).Add(gst).InexactFloat64(),
	}
}

// TotalsOf aggregates already-priced specifications.
func TotalsOf(specs []window.Specification, transportCost, gstRate float64) Totals {
	priced := make([]Priced, 0, len(specs))
	for _, s := range specs {
		priced = append(priced, PriceSpecification(s))
	}

	return AggregateTotals(priced, transportCost, gstRate)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

func sortedRates(m map[string]float64) []Rate {
	rates := make([]Rate, 0, len(m))
	for k, v := range m {
		rates = append(rates, Rate{Key: k, Value: v})
	}

	slices.SortFunc(rates, func(a, b Rate) int { return strings.Compare(a.Key, b.Key) })

	return rates
}
