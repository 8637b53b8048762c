package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

type builderState int

const (
	builderStateClient builderState = iota
	builderStateSpec
	builderStateReview
	builderStateSaving
	builderStateDone
)

// clientFields lives on the heap so the huh form keeps writing to the same
// values while the model is copied around by bubbletea.
type clientFields struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	SiteAddress string
	Notes       string
}

// BuilderModel walks through creating a quotation: client details, then one
// window at a time with a live price, then a review before saving.
type BuilderModel struct {
	CommonModel
	quotations *quotation.Service

	state  builderState
	client *clientFields
	form   *huh.Form

	specForm SpecForm
	// editing is the index being edited in specs, or -1 for a new window.
	editing int
	specs   []window.Specification
	cursor  int

	saved  *quotation.Quotation
	status string
	err    error
}

func NewBuilderModel(svc *quotation.Service) BuilderModel {
	m := BuilderModel{
		quotations: svc,
		client:     &clientFields{},
		editing:    -1,
	}
	m.form = m.buildClientForm()

	return m
}

func (m BuilderModel) Title() string { return "New Quotation" }

func (m BuilderModel) ShortHelp() string {
	switch m.state {
	case builderStateSpec:
		return "Tab/Shift+Tab: move | Left/Right: change option | Enter: keep window | Esc: discard"
	case builderStateReview:
		return "a: add | e: edit | d: delete | c: client | Enter: save quotation | Esc: back"
	case builderStateDone:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: next"
}

func (m BuilderModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m BuilderModel) buildClientForm() *huh.Form {
	c := m.client

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Client Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("client name cannot be empty")
					}

					return nil
				}),
			huh.NewInput().Key("phone").Title("Phone").Value(&c.Phone),
			huh.NewInput().Key("email").Title("Email").Value(&c.Email),
			huh.NewInput().Key("address").Title("Address").Value(&c.Address),
			huh.NewInput().Key("site").Title("Site Address").Value(&c.SiteAddress),
			huh.NewText().Key("notes").Title("Notes").CharLimit(2000).Value(&c.Notes),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(builderSavedMsg); ok {
		if saved.err != nil {
			m.state = builderStateReview
			m.err = saved.err
			m.status = fmt.Sprintf("Error saving: %v", saved.err)

			return m, nil
		}

		m.state = builderStateDone
		m.saved = saved.quotation
		m.err = nil

		return m, nil
	}

	switch m.state {
	case builderStateClient:
		return m.updateClient(msg)
	case builderStateSpec:
		return m.updateSpec(msg)
	case builderStateReview:
		return m.updateReview(msg)
	case builderStateDone:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m BuilderModel) updateClient(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		if len(m.specs) > 0 {
			m.state = builderStateReview
			return m, nil
		}

		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if len(m.specs) > 0 {
		m.state = builderStateReview
		return m, nil
	}

	return m.startSpec(-1)
}

func (m BuilderModel) startSpec(index int) (tea.Model, tea.Cmd) {
	m.editing = index
	m.status = ""

	if index >= 0 && index < len(m.specs) {
		m.specForm = NewSpecForm(&m.specs[index])
	} else {
		m.editing = -1
		m.specForm = NewSpecForm(nil)
	}

	m.state = builderStateSpec

	return m, m.specForm.Init()
}

func (m BuilderModel) updateSpec(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.status = ""
			if len(m.specs) == 0 {
				m.state = builderStateClient
				m.form = m.buildClientForm()

				return m, m.form.Init()
			}

			m.state = builderStateReview

			return m, nil
		case tea.KeyEnter:
			return m.keepSpec(), nil
		}
	}

	var cmd tea.Cmd
	m.specForm, cmd = m.specForm.Update(msg)

	return m, cmd
}

// keepSpec stores the form's window, replacing the one being edited.
func (m BuilderModel) keepSpec() BuilderModel {
	if err := m.specForm.Validate(); err != nil {
		m.status = err.Error()
		return m
	}

	spec := m.specForm.Specification()

	if m.editing >= 0 && m.editing < len(m.specs) {
		m.specs[m.editing] = spec
		m.cursor = m.editing
	} else {
		m.specs = append(m.specs, spec)
		m.cursor = len(m.specs) - 1
	}

	m.editing = -1
	m.status = ""
	m.state = builderStateReview

	return m
}

func (m BuilderModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.specs)-1 {
			m.cursor++
		}
	case "a":
		return m.startSpec(-1)
	case "e":
		if len(m.specs) > 0 {
			return m.startSpec(m.cursor)
		}
	case "d":
		if len(m.specs) > 0 {
			m.specs = append(m.specs[:m.cursor:m.cursor], m.specs[m.cursor+1:]...)
			m.cursor = max(0, min(m.cursor, len(m.specs)-1))
		}
	case "c":
		m.state = builderStateClient
		m.form = m.buildClientForm()

		return m, m.form.Init()
	case "enter":
		if len(m.specs) == 0 {
			m.status = "Add at least one window before saving."
			return m, nil
		}

		m.state = builderStateSaving
		m.status = ""

		return m, m.saveCmd()
	}

	return m, nil
}

// totals includes the window currently in the form so the figures move
// while it is being typed.
func (m BuilderModel) totals() pricing.Totals {
	specs := m.specs

	if m.state == builderStateSpec {
		specs = append([]window.Specification(nil), m.specs...)
		current := m.specForm.Specification()

		if m.editing >= 0 && m.editing < len(specs) {
			specs[m.editing] = current
		} else {
			specs = append(specs, current)
		}
	}

	settings := m.quotations.Settings()

	return pricing.TotalsOf(specs, settings.Charges.Total(), settings.GSTRate)
}

func (m BuilderModel) View() string {
	var content string

	switch m.state {
	case builderStateClient:
		content = "Client Details\n\n" + m.form.View()
	case builderStateSpec:
		content = m.viewSpec()
	case builderStateReview:
		content = m.viewReview()
	case builderStateSaving:
		content = "Saving quotation..."
	case builderStateDone:
		content = m.viewDone()
	}

	if m.status != "" {
		content += "\n\n" + errorStyle(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m BuilderModel) viewSpec() string {
	title := fmt.Sprintf("Window %d", len(m.specs)+1)
	if m.editing >= 0 {
		title = fmt.Sprintf("Editing window %d", m.editing+1)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		m.specForm.View(),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.specForm.PreviewView(),
		m.totalsView(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m BuilderModel) totalsView() string {
	t := m.totals()

	rows := []string{
		lipgloss.NewStyle().Bold(true).Render("Quotation"),
		"",
		fmt.Sprintf("Subtotal    %s", FormatMoney(t.Subtotal)),
		fmt.Sprintf("Transport   %s", FormatMoney(t.TransportCost)),
		fmt.Sprintf("GST %-6s  %s", fmt.Sprintf("%.0f%%", t.GSTRate*100), FormatMoney(t.GST)),
		"",
		activeStyle(fmt.Sprintf("Grand total %s", FormatMoney(t.GrandTotal))),
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(40).
		Render(strings.Join(rows, "\n"))
}

func (m BuilderModel) viewReview() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Quotation for %s\n\n", activeStyle(m.client.Name))

	if len(m.specs) == 0 {
		sb.WriteString("No windows yet. Press a to add one.\n")
	}

	for i, s := range m.specs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		fmt.Fprintf(&sb, "%s%d. %-20s %-20s %6.0f x %-6.0f x%-3d %s\n",
			cursor, i+1,
			truncate(orDash(s.Name), 20),
			s.Type.Title(),
			s.Dimensions.Width, s.Dimensions.Height,
			s.Pricing.Quantity,
			FormatMoney(s.Computed.TotalPrice),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sb.String(), "  ", m.totalsView())
}

func (m BuilderModel) viewDone() string {
	q := m.saved

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(okColor).
		Render(fmt.Sprintf("Saved quotation %s", q.Number))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		fmt.Sprintf("Client:       %s", q.Client.Name),
		fmt.Sprintf("Windows:      %d (%d units)", len(q.Specs), q.Units()),
		fmt.Sprintf("Grand total:  %s", FormatMoney(q.Pricing.GrandTotal)),
		"",
		"(Esc to go back)",
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

type builderSavedMsg struct {
	quotation *quotation.Quotation
	err       error
}

func (m BuilderModel) saveCmd() tea.Cmd {
	c := *m.client
	params := quotation.CreateParams{
		Client: quotation.Client{
			Name:        strings.TrimSpace(c.Name),
			Phone:       strings.TrimSpace(c.Phone),
			Email:       strings.TrimSpace(c.Email),
			Address:     strings.TrimSpace(c.Address),
			SiteAddress: strings.TrimSpace(c.SiteAddress),
		},
		Specs: append([]window.Specification(nil), m.specs...),
		Notes: strings.TrimSpace(c.Notes),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		q, err := m.quotations.Create(ctx, params)

		return builderSavedMsg{quotation: q, err: err}
	}
}
