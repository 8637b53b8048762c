package window

// Type is a window category from the fixed catalog.
type Type string

const (
	TypeSliding    Type = "sliding"
	TypeCasement   Type = "casement"
	TypeBay        Type = "bay"
	TypeFixed      Type = "fixed"
	TypeAwning     Type = "awning"
	TypePicture    Type = "picture"
	TypeDoubleHung Type = "double-hung"
	TypeSingleHung Type = "single-hung"
	TypePivot      Type = "pivot"
	TypeMetal      Type = "metal"
	TypeLouvered   Type = "louvered"
	TypeGlassBlock Type = "glass-block"
)

// PlaceholderTitle is used for types outside the catalog.
const PlaceholderTitle = "Custom Window"

// Types lists the catalog in display order.
var Types = []Type{
	TypeSliding,
	TypeCasement,
	TypeBay,
	TypeFixed,
	TypeAwning,
	TypePicture,
	TypeDoubleHung,
	TypeSingleHung,
	TypePivot,
	TypeMetal,
	TypeLouvered,
	TypeGlassBlock,
}

type typeInfo struct {
	title   string
	opening string
	panels  int
	tracks  int
}

var catalog = map[Type]typeInfo{
	TypeSliding:    {title: "Sliding Window", opening: "sliding", panels: 2, tracks: 2},
	TypeCasement:   {title: "Casement Window", opening: "side-hung", panels: 1},
	TypeBay:        {title: "Bay Window", opening: "fixed-center", panels: 3},
	TypeFixed:      {title: "Fixed Window", opening: "non-opening", panels: 1},
	TypeAwning:     {title: "Awning Window", opening: "top-hung", panels: 1},
	TypePicture:    {title: "Picture Window", opening: "non-opening", panels: 1},
	TypeDoubleHung: {title: "Double Hung Window", opening: "vertical-sliding", panels: 2, tracks: 2},
	TypeSingleHung: {title: "Single Hung Window", opening: "vertical-sliding", panels: 2, tracks: 1},
	TypePivot:      {title: "Pivot Window", opening: "center-pivot", panels: 1},
	TypeMetal:      {title: "Metal Window", opening: "side-hung", panels: 2},
	TypeLouvered:   {title: "Louvered Window", opening: "louvre", panels: 1},
	TypeGlassBlock: {title: "Glass Block Window", opening: "non-opening", panels: 1},
}

func (t Type) Known() bool {
	_, ok := catalog[t]
	return ok
}

// Title returns the display title, or PlaceholderTitle for unknown types.
func (t Type) Title() string {
	info, ok := catalog[t]
	if !ok {
		return PlaceholderTitle
	}

	return info.title
}

func (t Type) String() string { return string(t) }
