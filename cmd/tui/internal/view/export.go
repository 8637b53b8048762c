package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/export"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
)

const exportTimeout = 5 * time.Minute

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

type exportFields struct {
	Period Period
	// Status is empty for every status.
	Status quotation.Status
	Path   string
}

type ExportModel struct {
	CommonModel
	exportService *export.Service

	state   exportState
	fields  *exportFields
	form    *huh.Form
	spinner spinner.Model
	summary string
	err     error
	now     func() time.Time
}

func NewExportModel(svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	m := ExportModel{
		exportService: svc,
		fields:        &exportFields{Period: PeriodThisMonth, Path: "./exports"},
		spinner:       s,
		now:           time.Now,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export Quotations" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) buildForm() *huh.Form {
	periods := make([]huh.Option[Period], len(Periods))
	for i, p := range Periods {
		periods[i] = huh.NewOption(p.String(), p)
	}

	statuses := []huh.Option[quotation.Status]{huh.NewOption("All", quotation.Status(""))}
	for _, s := range quotation.Statuses {
		statuses = append(statuses, huh.NewOption(document.Label(string(s)), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Period]().
				Key("period").
				Title("Created").
				Options(periods...).
				Value(&m.fields.Period),
			huh.NewSelect[quotation.Status]().
				Key("status").
				Title("Status").
				Options(statuses...).
				Value(&m.fields.Status),
			huh.NewInput().
				Key("path").
				Title("Output Path").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&m.fields.Path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd())
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.summary = result.body

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

// filter turns the form selection into a list filter.
func (m ExportModel) filter() quotation.ListFilter {
	var f quotation.ListFilter

	if m.fields.Status != "" {
		f.Status = new(m.fields.Status)
	}

	if start, end, ok := m.fields.Period.Range(m.now()); ok {
		f.StartDate = &start
		f.EndDate = &end
	}

	return f
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Rendering quotation PDFs...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(okColor).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Summary:",
			"",
			m.summary,
		),
	)
}

type exportResultMsg struct {
	body string
	err  error
}

func (m ExportModel) runExportCmd() tea.Cmd {
	filter, path := m.filter(), m.fields.Path

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		items, err := m.exportService.ExportBatch(ctx, filter, path)
		if err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{body: m.exportService.GenerateSummary(items)}
	}
}
