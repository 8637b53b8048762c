package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const (
	specName = iota
	specLocation
	specType
	specWidth
	specHeight
	specQuantity
	specFrame
	specGlass
	specBasePrice
	specSqFtPrice
	specFieldCount
)

// formField is either a free text input or a fixed list cycled with left/right.
type formField struct {
	label    string
	input    textinput.Model
	options  []string
	selected int
}

func (f formField) isChoice() bool {
	return f.options != nil
}

func (f formField) value() string {
	if f.isChoice() {
		return f.options[f.selected]
	}

	return strings.TrimSpace(f.input.Value())
}

// SpecForm edits one window specification. Its price preview is derived
// from the current input on every call, so it follows each keystroke.
type SpecForm struct {
	fields []formField
	focus  int
	// original is the specification being edited, nil for a new one.
	original *window.Specification
}

func textField(label, placeholder string, numeric bool) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 24
	ti.Prompt = ""

	if numeric {
		ti.CharLimit = 12
		ti.Validate = func(s string) error {
			if s == "" {
				return nil
			}

			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("not a number")
			}

			return nil
		}
	}

	return formField{label: label, input: ti}
}

func choiceField(label string, options []string, current string) formField {
	f := formField{label: label, options: options}

	for i, o := range options {
		if o == current {
			f.selected = i
		}
	}

	return f
}

func rateKeys(rates []pricing.Rate) []string {
	keys := make([]string, len(rates))
	for i, r := range rates {
		keys[i] = r.Key
	}

	return keys
}

// NewSpecForm starts an empty form, or one prefilled from spec when editing.
// Options the form has no field for are carried over from spec unchanged.
func NewSpecForm(spec *window.Specification) SpecForm {
	var original *window.Specification
	if spec != nil {
		original = new(*spec)
	} else {
		spec = new(window.Resolve(window.Draft{}))
	}

	types := make([]string, len(window.Types))
	for i, t := range window.Types {
		types[i] = string(t)
	}

	frames, glass := pricing.Tables()

	fields := make([]formField, specFieldCount)
	fields[specName] = textField("Name", "Living room window", false)
	fields[specLocation] = textField("Location", "Ground floor", false)
	fields[specType] = choiceField("Type", types, string(spec.Type))
	fields[specWidth] = textField("Width (mm)", "1200", true)
	fields[specHeight] = textField("Height (mm)", "1500", true)
	fields[specQuantity] = textField("Quantity", "1", true)
	fields[specFrame] = choiceField("Frame", rateKeys(frames), spec.Options.Frame.Material)
	fields[specGlass] = choiceField("Glass", rateKeys(glass), spec.Options.GlassOption())
	fields[specBasePrice] = textField("Base price", "0", true)
	fields[specSqFtPrice] = textField("Rate per sq ft", "0", true)

	fields[specName].input.SetValue(spec.Name)
	fields[specLocation].input.SetValue(spec.Location)

	setNumber := func(i int, v float64) {
		if v > 0 {
			fields[i].input.SetValue(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}

	setNumber(specWidth, spec.Dimensions.Width)
	setNumber(specHeight, spec.Dimensions.Height)
	setNumber(specQuantity, float64(spec.Pricing.Quantity))
	setNumber(specBasePrice, spec.Pricing.BasePrice)
	setNumber(specSqFtPrice, spec.Pricing.SqFtPrice)

	f := SpecForm{fields: fields, original: original}
	f.fields[0].input.Focus()

	return f
}

func (f SpecForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f SpecForm) Update(msg tea.Msg) (SpecForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return f.move(1), nil
		case "shift+tab", "up":
			return f.move(-1), nil
		case "left", "right":
			if cur := &f.fields[f.focus]; cur.isChoice() {
				step := 1
				if keyMsg.String() == "left" {
					step = len(cur.options) - 1
				}

				cur.selected = (cur.selected + step) % len(cur.options)

				return f, nil
			}
		}
	}

	cur := &f.fields[f.focus]
	if cur.isChoice() {
		return f, nil
	}

	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)

	return f, cmd
}

func (f SpecForm) move(step int) SpecForm {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + step + len(f.fields)) % len(f.fields)

	if !f.fields[f.focus].isChoice() {
		f.fields[f.focus].input.Focus()
	}

	return f
}

func (f SpecForm) text(i int) *string {
	v := f.fields[i].value()
	if v == "" {
		return nil
	}

	return &v
}

func (f SpecForm) number(i int) *float64 {
	v, err := strconv.ParseFloat(f.fields[i].value(), 64)
	if err != nil {
		return nil
	}

	return &v
}

// Draft returns the edited specification as a draft: the original's
// options overlaid with the form contents. Unparseable numbers are left
// unset. Changing the type drops the layout so the new type's defaults
// apply.
func (f SpecForm) Draft() window.Draft {
	var d window.Draft
	if f.original != nil {
		d = window.ToDraft(*f.original)
	}

	d.Name = f.text(specName)
	d.Location = f.text(specLocation)
	d.Type = f.text(specType)
	d.Width = f.number(specWidth)
	d.Height = f.number(specHeight)
	d.FrameMaterial = f.text(specFrame)
	d.BasePrice = f.number(specBasePrice)
	d.SqFtPrice = f.number(specSqFtPrice)
	d.Quantity = nil

	if q := f.number(specQuantity); q != nil {
		d.Quantity = new(int(*q))
	}

	glassType, thickness := window.ParseGlassOption(f.fields[specGlass].value())
	d.GlassType = &glassType
	d.GlassThickness = nil
	if thickness != "" {
		d.GlassThickness = &thickness
	}

	if f.original != nil && string(f.original.Type) != f.fields[specType].value() {
		d.OpeningType, d.Panels, d.Tracks, d.BayAngle = nil, nil, nil, nil
	}

	return d
}

func (f SpecForm) Specification() window.Specification {
	return pricing.Apply(window.Resolve(f.Draft()))
}

func (f SpecForm) Preview() pricing.Priced {
	return pricing.PriceSpecification(window.Resolve(f.Draft()))
}

func (f SpecForm) Validate() error {
	return window.Validate(window.Resolve(f.Draft()))
}

func (f SpecForm) View() string {
	labelStyle := lipgloss.NewStyle().Width(16)
	focused := lipgloss.NewStyle().Foreground(accentColor)

	var sb strings.Builder

	for i, field := range f.fields {
		label := labelStyle.Render(field.label)
		if i == f.focus {
			label = focused.Render(labelStyle.Render("> " + field.label))
		}

		value := field.input.View()
		if field.isChoice() {
			shown := field.value()
			if i == specType {
				shown = window.Type(shown).Title()
			}

			value = fmt.Sprintf("< %s >", shown)
		}

		sb.WriteString(label + value + "\n")
	}

	return sb.String()
}

// PreviewView renders the live price panel for the form.
func (f SpecForm) PreviewView() string {
	p := f.Preview()

	rows := []string{
		lipgloss.NewStyle().Bold(true).Render("Live price"),
		"",
		fmt.Sprintf("Area        %.2f sq ft", p.Area),
		fmt.Sprintf("Base        %s", FormatMoney(p.AdjustedBasePrice)),
		fmt.Sprintf("Per sq ft   %s", FormatMoney(p.AdjustedSqFtPrice)),
		fmt.Sprintf("Unit        %s", FormatMoney(p.UnitPrice)),
		fmt.Sprintf("Weight      %.1f kg", p.Weight),
		"",
		activeStyle(fmt.Sprintf("Total       %s", FormatMoney(p.TotalPrice))),
	}

	if err := f.Validate(); err != nil {
		rows = append(rows, "", errorStyle(err.Error()))
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(40).
		Render(strings.Join(rows, "\n"))
}
