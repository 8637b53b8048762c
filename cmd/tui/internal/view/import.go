package view

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/fenestra/internal/importer"
	"github.com/MrJamesThe3rd/fenestra/internal/pricing"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateParsing
	importStatePreview
	importStateSaving
	importStateResult
)

type importFields struct {
	Client string
}

type ImportModel struct {
	CommonModel
	quotations *quotation.Service
	importer   *importer.Service

	state      importState
	filePicker filepicker.Model
	path       string
	specs      []window.Specification
	fields     *importFields
	form       *huh.Form

	status string
	err    error
}

func NewImportModel(quotations *quotation.Service, imp *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		quotations: quotations,
		importer:   imp,
		filePicker: fp,
		fields:     &importFields{},
	}
}

func (m ImportModel) Title() string { return "Import Measurement Sheet" }

func (m ImportModel) ShortHelp() string {
	switch m.state {
	case importStatePreview:
		return "Enter: create quotation | Esc: pick another file"
	case importStateResult:
		return "Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case importParsedMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.specs = msg.specs
		m.fields = &importFields{}
		m.form = m.buildClientForm()
		m.state = importStatePreview

		return m, m.form.Init()

	case importSavedMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.err = nil
		m.status = fmt.Sprintf("Created %s with %d windows (%s).",
			msg.quotation.Number, len(msg.quotation.Specs), FormatMoney(msg.quotation.Pricing.GrandTotal))

		return m, nil
	}

	switch m.state {
	case importStateFilePick:
		return m.updateFilePick(msg)
	case importStatePreview:
		return m.updatePreview(msg)
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview, importStateResult:
		m.state = importStateFilePick
		m.specs = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.path = path
		m.state = importStateParsing
		m.status = fmt.Sprintf("Reading %s...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) buildClientForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("client").
				Title("Client Name").
				Description("A new draft quotation is created with these windows").
				Value(&m.fields.Client).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("client name cannot be empty")
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ImportModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = importStateSaving
	m.status = "Saving quotation..."

	return m, m.saveCmd()
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case importStateFilePick:
		return style.Render("Select a measurement sheet:\n\n" + m.filePicker.View())
	case importStateParsing, importStateSaving:
		return style.Render(m.status)
	case importStatePreview:
		return style.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.viewSpecs(),
			"",
			m.form.View(),
		))
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewSpecs() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d windows read from %s\n\n", len(m.specs), m.path)

	var total float64
	for i, s := range m.specs {
		p := pricing.PriceSpecification(s)
		total += p.TotalPrice

		fmt.Fprintf(&sb, "%3d. %-20s %-20s %6.0f x %-6.0f x%-3d %s\n",
			i+1,
			truncate(orDash(s.Name), 20),
			s.Type.Title(),
			s.Dimensions.Width, s.Dimensions.Height,
			s.Pricing.Quantity,
			FormatMoney(p.TotalPrice),
		)
	}

	fmt.Fprintf(&sb, "\nSubtotal before pricebook rates: %s", activeStyle(FormatMoney(total)))

	return sb.String()
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	color := okColor

	if m.err != nil {
		color = errorColor
	}

	return style.Render(
		lipgloss.NewStyle().Foreground(color).Render(m.status) + "\n\n(Esc to go back)",
	)
}

type importParsedMsg struct {
	specs []window.Specification
	err   error
}

type importSavedMsg struct {
	quotation *quotation.Quotation
	err       error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importParsedMsg{err: err}
		}
		defer f.Close()

		specs, err := m.importer.Import(importer.FormatSheet, f)

		return importParsedMsg{specs: specs, err: err}
	}
}

func (m ImportModel) saveCmd() tea.Cmd {
	params := quotation.CreateParams{
		Client: quotation.Client{Name: strings.TrimSpace(m.fields.Client)},
		Specs:  m.specs,
		Notes:  "Imported from " + filepath.Base(m.path),
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		q, err := m.quotations.Create(ctx, params)

		return importSavedMsg{quotation: q, err: err}
	}
}
