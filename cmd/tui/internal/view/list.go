package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/fenestra/internal/document"
	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateStatus
)

// statusChoice holds the select binding outside the model copy.
type statusChoice struct {
	value quotation.Status
}

type ListModel struct {
	CommonModel
	quotations *quotation.Service

	state      listState
	table      table.Model
	items      []*quotation.Quotation
	form       *huh.Form
	choice     *statusChoice
	statusIdx  int
	period     Period
	filter     quotation.ListFilter
	loading    bool
	err        error
	status     string
	now        func() time.Time
}

func NewListModel(svc *quotation.Service) ListModel {
	columns := []table.Column{
		{Title: "Number", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Client", Width: 28},
		{Title: "Status", Width: 11},
		{Title: "Units", Width: 6},
		{Title: "Grand Total", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		quotations: svc,
		table:      t,
		loading:    true,
		now:        time.Now,
	}
}

func (m ListModel) Title() string { return "Quotations" }

func (m ListModel) ShortHelp() string {
	if m.state == listStateStatus {
		return "Enter: apply | Esc: cancel"
	}

	return "Esc: back | c: change status | s: status filter | d: date filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.items = msg.items
		m.refreshTable()

		return m, nil

	case statusSavedMsg:
		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("%s is now %s.", msg.number, document.Label(string(msg.to)))

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 5))
		return m, nil
	}

	if m.state == listStateStatus {
		return m.updateStatus(msg)
	}

	return m.updateBrowse(msg)
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % (len(quotation.Statuses) + 1)
			m.applyFilter()

			return m, m.loadCmd()
		case "d":
			m.period = m.period.Next()
			m.applyFilter()

			return m, m.loadCmd()
		case "c":
			return m.enterStatusMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) selected() *quotation.Quotation {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	return m.items[idx]
}

func (m ListModel) enterStatusMode() (tea.Model, tea.Cmd) {
	q := m.selected()
	if q == nil {
		return m, nil
	}

	options := make([]huh.Option[quotation.Status], len(quotation.Statuses))
	for i, s := range quotation.Statuses {
		options[i] = huh.NewOption(document.Label(string(s)), s)
	}

	m.choice = &statusChoice{value: q.Status}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[quotation.Status]().
				Key("status").
				Title("Status for " + q.Number).
				Options(options...).
				Value(&m.choice.value),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = listStateStatus
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveStatusCmd()
}

func (m *ListModel) applyFilter() {
	m.filter.Status = nil
	if m.statusIdx > 0 {
		m.filter.Status = new(quotation.Statuses[m.statusIdx-1])
	}

	m.filter.StartDate, m.filter.EndDate = nil, nil
	if start, end, ok := m.period.Range(m.now()); ok {
		m.filter.StartDate = &start
		m.filter.EndDate = &end
	}
}

func (m ListModel) statusLabel() string {
	if m.statusIdx == 0 {
		return "All"
	}

	return document.Label(string(quotation.Statuses[m.statusIdx-1]))
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, q := range m.items {
		rows = append(rows, table.Row{
			q.Number,
			FormatDate(q.CreatedAt),
			q.Client.Name,
			document.Label(string(q.Status)),
			fmt.Sprint(q.Units()),
			FormatMoney(q.Pricing.GrandTotal),
		})
	}

	m.table.SetRows(rows)
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading quotations...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [d] Date: %s | %d quotations",
		activeStyle(m.statusLabel()),
		activeStyle(m.period.String()),
		len(m.items),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == listStateStatus && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type loadListMsg struct {
	items []*quotation.Quotation
	err   error
}

func (m ListModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.quotations.List(ctx, filter)

		return loadListMsg{items: items, err: err}
	}
}

type statusSavedMsg struct {
	number string
	to     quotation.Status
	err    error
}

func (m ListModel) saveStatusCmd() tea.Cmd {
	q := m.selected()
	if q == nil || m.choice == nil {
		return nil
	}

	id, number, to := q.ID, q.Number, m.choice.value

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.quotations.UpdateStatus(ctx, id, to)

		return statusSavedMsg{number: number, to: to, err: err}
	}
}
