package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

func typeText(f SpecForm, s string) SpecForm {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return f
}

func focusField(f SpecForm, target int) SpecForm {
	for f.focus != target {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}

	return f
}

func TestSpecForm_LivePreview(t *testing.T) {
	f := NewSpecForm(nil)
	assert.Zero(t, f.Preview().TotalPrice)
	assert.Error(t, f.Validate())

	f = typeText(focusField(f, specWidth), "929.03")
	f = typeText(focusField(f, specHeight), "1000")
	assert.InDelta(t, 10.0, f.Preview().Area, 1e-9)

	before := f.Preview().TotalPrice

	f = typeText(focusField(f, specSqFtPrice), "100")
	assert.Greater(t, f.Preview().TotalPrice, before)

	f = typeText(focusField(f, specQuantity), "3")
	assert.InDelta(t, f.Preview().UnitPrice*3, f.Preview().TotalPrice, 1e-9)

	require.NoError(t, f.Validate())
}

func TestSpecForm_Choices(t *testing.T) {
	f := focusField(NewSpecForm(nil), specType)
	assert.Equal(t, string(window.TypeSliding), *f.Draft().Type)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, string(window.TypeCasement), *f.Draft().Type)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, string(window.TypeGlassBlock), *f.Draft().Type)
}

func TestSpecForm_EditPrefill(t *testing.T) {
	w, h, qty := 1200.0, 900.0, 4
	spec := window.Resolve(window.Draft{
		ID:             new("spec-1"),
		Name:           new("Bedroom"),
		Type:           new(string(window.TypeBay)),
		Width:          &w,
		Height:         &h,
		Quantity:       &qty,
		FrameMaterial:  new("upvc"),
		GlassType:      new("toughened"),
		GlassThickness: new("10mm"),
	})

	d := NewSpecForm(&spec).Draft()

	assert.Equal(t, "spec-1", *d.ID)
	assert.Equal(t, "Bedroom", *d.Name)
	assert.Equal(t, string(window.TypeBay), *d.Type)
	assert.Equal(t, 1200.0, *d.Width)
	assert.Equal(t, 4, *d.Quantity)
	assert.Equal(t, "upvc", *d.FrameMaterial)
	assert.Equal(t, "toughened", *d.GlassType)
	assert.Equal(t, "10mm", *d.GlassThickness)
}

func TestSpecForm_EditKeepsOptions(t *testing.T) {
	spec := window.Resolve(window.Draft{
		Name:           new("Hall"),
		Type:           new(string(window.TypeSliding)),
		Width:          new(1800.0),
		Height:         new(1200.0),
		FrameColor:     new("Walnut"),
		LockType:       new("multipoint"),
		Panels:         new(3),
		Tracks:         new(3),
		GrilleEnabled:  new(true),
		GrilleStyle:    new("georgian"),
		ScreenIncluded: new(true),
		Motorized:      new(true),
	})

	f := typeText(focusField(NewSpecForm(&spec), specName), " East")
	got := f.Specification()

	assert.Equal(t, "Hall East", got.Name)
	assert.Equal(t, "Walnut", got.Options.Frame.Color)
	assert.Equal(t, "multipoint", got.Options.Lock.Type)
	assert.Equal(t, 3, got.Options.Panels)
	assert.Equal(t, 3, got.Options.Tracks)
	assert.True(t, got.Options.Grille.Enabled)
	assert.Equal(t, "georgian", got.Options.Grille.Style)
	assert.True(t, got.Options.Features.ScreenIncluded)
	assert.True(t, got.Options.Features.Motorized)

	// A new type resets the layout to that type's defaults.
	f = focusField(f, specType)
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	got = f.Specification()

	assert.Equal(t, window.TypeCasement, got.Type)
	assert.Equal(t, window.Resolve(window.Draft{Type: new(string(window.TypeCasement))}).Options.Panels, got.Options.Panels)
	assert.Equal(t, "Walnut", got.Options.Frame.Color)
}

func TestSpecForm_ClearedFieldDropsValue(t *testing.T) {
	spec := window.Resolve(window.Draft{Name: new("Hall"), Width: new(900.0), Height: new(900.0)})

	f := focusField(NewSpecForm(&spec), specWidth)
	for range len("900") {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}

	assert.Nil(t, f.Draft().Width)
	assert.ErrorIs(t, f.Validate(), window.ErrInvalidDimensions)
}
