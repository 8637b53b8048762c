package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

var box = document.Box{X: 10, Y: 20, W: 60, H: 80}

func specOf(t window.Type, width, height float64) window.Specification {
	typ := string(t)

	return window.Resolve(window.Draft{Type: &typ, Width: &width, Height: &height})
}

func TestDrawSchematic_EveryCatalogType(t *testing.T) {
	for _, typ := range window.Types {
		t.Run(string(typ), func(t *testing.T) {
			got := document.DrawSchematic(specOf(typ, 1200, 1500), box)

			require.True(t, got.OK(), got.Placeholder)
			assert.NotEmpty(t, got.Shapes)

			for _, sh := range got.Shapes {
				for _, p := range sh.Points {
					assert.GreaterOrEqual(t, p.X, box.X-1e-9)
					assert.LessOrEqual(t, p.X, box.X+box.W+1e-9)
					assert.GreaterOrEqual(t, p.Y, box.Y-1e-9)
					assert.LessOrEqual(t, p.Y, box.Y+box.H+1e-9)
				}
			}
		})
	}
}

func TestDrawSchematic_DistinctPerType(t *testing.T) {
	seen := map[int][]window.Type{}
	for _, typ := range window.Types {
		n := len(document.DrawSchematic(specOf(typ, 1000, 1000), box).Shapes)
		seen[n] = append(seen[n], typ)
	}

	// Not every type can differ by count alone, but the catalog must not
	// collapse onto a couple of generic drawings.
	assert.GreaterOrEqual(t, len(seen), 6)
}

func TestDrawSchematic_Placeholders(t *testing.T) {
	tests := []struct {
		name string
		spec window.Specification
		want string
	}{
		{
			name: "UnknownType",
			spec: specOf(window.Type("skylight"), 1000, 1000),
			want: document.PlaceholderUnknownType,
		},
		{
			name: "MissingDimensions",
			spec: specOf(window.TypeSliding, 0, 1000),
			want: document.PlaceholderNoDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := document.DrawSchematic(tt.spec, box)

			assert.False(t, got.OK())
			assert.Equal(t, tt.want, got.Placeholder)
			assert.Empty(t, got.Shapes)
		})
	}
}

func TestDrawSchematic_Overlays(t *testing.T) {
	plain := specOf(window.TypeCasement, 1000, 1200)

	decorated := plain
	decorated.Options.Grille.Enabled = true
	decorated.Options.Grille.Style = "colonial"
	decorated.Options.Features.ScreenIncluded = true
	decorated.Options.Features.Motorized = true

	base := document.DrawSchematic(plain, box)
	got := document.DrawSchematic(decorated, box)

	// Colonial grille adds three bars, plus one screen outline and one motor mark.
	assert.Len(t, got.Shapes, len(base.Shapes)+5)

	var dashedRects int
	for _, sh := range got.Shapes {
		if sh.Kind == document.ShapeRect && sh.Dashed {
			dashedRects++
		}
	}

	assert.Equal(t, 1, dashedRects)
}

func TestDrawSchematic_SlidingPanels(t *testing.T) {
	spec := specOf(window.TypeSliding, 2400, 1200)
	spec.Options.Panels = 3

	var rects, arrows int
	for _, sh := range document.DrawSchematic(spec, box).Shapes {
		switch {
		case sh.Kind == document.ShapeRect:
			rects++
		case sh.Kind == document.ShapePolygon && sh.Fill:
			arrows++
		}
	}

	assert.Equal(t, 2+3, rects)
	assert.Equal(t, 3, arrows)
}

func TestSchematicSize_AspectIsBounded(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantH         float64
	}{
		{name: "Square", width: 1000, height: 1000, wantH: 50},
		{name: "VeryTall", width: 500, height: 3000, wantH: 65},
		{name: "VeryWide", width: 4000, height: 500, wantH: 25},
		{name: "MissingDimensions", width: 0, height: 0, wantH: 37.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := document.SchematicSize(specOf(window.TypeFixed, tt.width, tt.height), 50)

			assert.InDelta(t, 50, w, 1e-9)
			assert.InDelta(t, tt.wantH, h, 1e-9)
		})
	}
}
