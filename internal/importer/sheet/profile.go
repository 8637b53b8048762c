package sheet

// field is a Draft attribute a sheet column can feed.
type field int

const (
	fieldWidth field = iota
	fieldHeight
	fieldType
	fieldName
	fieldLocation
	fieldQuantity
	fieldGlass
	fieldFrame
	fieldColor
	fieldPanels
	fieldBasePrice
	fieldSqFtPrice
)

// Profile describes the column layout of a measurement sheet. Headers are
// matched case-insensitively; a profile matches when every required header
// is present in a single row.
type Profile struct {
	Name         string
	Comma        rune
	DecimalComma bool
	Columns      map[field]string
	Required     []field
}

func (p Profile) requiredCols() []string {
	cols := make([]string, 0, len(p.Required))
	for _, f := range p.Required {
		cols = append(cols, p.Columns[f])
	}

	return cols
}

// profiles are tried in order. Sheets exported from spreadsheets set to a
// European locale use ';' and a decimal comma.
var profiles = []Profile{
	{
		Name:  "measurement",
		Comma: ',',
		Columns: map[field]string{
			fieldWidth:     "width (mm)",
			fieldHeight:    "height (mm)",
			fieldType:      "type",
			fieldName:      "name",
			fieldLocation:  "location",
			fieldQuantity:  "qty",
			fieldGlass:     "glass",
			fieldFrame:     "frame",
			fieldColor:     "colour",
			fieldPanels:    "panels",
			fieldBasePrice: "base price",
			fieldSqFtPrice: "rate per sq ft",
		},
		Required: []field{fieldWidth, fieldHeight, fieldType},
	},
	{
		Name:         "site",
		Comma:        ';',
		DecimalComma: true,
		Columns: map[field]string{
			fieldWidth:    "w",
			fieldHeight:   "h",
			fieldType:     "window",
			fieldName:     "ref",
			fieldLocation: "room",
			fieldQuantity: "nos",
			fieldGlass:    "glass",
			fieldFrame:    "frame",
		},
		Required: []field{fieldWidth, fieldHeight, fieldName},
	},
}
