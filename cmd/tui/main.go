package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/fenestra/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/fenestra/internal/app"
	"github.com/MrJamesThe3rd/fenestra/internal/config"
)

type model struct {
	services *app.Services
	company  string

	currentView View

	builderView view.BuilderModel
	listView    view.ListModel
	importView  view.ImportModel
	exportView  view.ExportModel
}

type View int

const (
	ViewMenu    View = 0
	ViewBuilder View = 1
	ViewList    View = 2
	ViewImport  View = 3
	ViewExport  View = 4
)

func initialModel(services *app.Services, company string) model {
	return model{
		services:    services,
		company:     company,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewBuilder
				m.builderView = view.NewBuilderModel(m.services.Quotations)

				return m, m.builderView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.services.Quotations)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.services.Quotations, m.services.Importer)

				return m, m.importView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.services.Export)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewBuilder:
		var newModel tea.Model
		newModel, cmd = m.builderView.Update(msg)
		m.builderView = newModel.(view.BuilderModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.company + " Quotations\n\n" +
				"1. New Quotation\n" +
				"2. Browse Quotations\n" +
				"3. Import Measurement Sheet\n" +
				"4. Export PDFs\n\n" +
				"q. Quit",
		)
	case ViewBuilder:
		current = m.builderView
	case ViewList:
		current = m.listView
	case ViewImport:
		current = m.importView
	case ViewExport:
		current = m.exportView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 1, 0).Render(current.Title())
	help := lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, current.View(), help)
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	services, err := app.New(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer services.Close()

	p := tea.NewProgram(initialModel(services, cfg.Company.Name), tea.WithAltScreen())
	_, err = p.Run()

	return err
}

func main() {
	if err := run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
