package pricing

// frameMultipliers scale the base price by frame material.
var frameMultipliers = map[string]float64{
	"aluminum":  1.0,
	"upvc":      1.2,
	"wooden":    1.8,
	"steel":     0.9,
	"composite": 1.5,
}

// glassSurcharges are added to the per-square-foot price, keyed by glass option.
var glassSurcharges = map[string]float64{
	"clear-5mm":      150,
	"clear-6mm":      180,
	"clear-8mm":      230,
	"frosted-5mm":    220,
	"tinted-5mm":     250,
	"reflective-6mm": 320,
	"toughened-8mm":  450,
	"toughened-10mm": 550,
	"laminated-6mm":  520,
	"laminated-8mm":  600,
	"double-glazed":  800,
}

// FrameMultiplier returns 1.0 for unknown materials.
func FrameMultiplier(material string) float64 {
	m, ok := frameMultipliers[material]
	if !ok {
		return 1.0
	}

	return m
}

// GlassSurcharge returns 0 for unknown glass options.
func GlassSurcharge(option string) float64 {
	return glassSurcharges[option]
}

// Rate is one row of a lookup table, for display.
type Rate struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Tables returns copies of the lookup tables, sorted by key.
func Tables() (frames, glass []Rate) {
	return sortedRates(frameMultipliers), sortedRates(glassSurcharges)
}
