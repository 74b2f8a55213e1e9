package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clausecheck/cli/internal/api"
	"github.com/clausecheck/cli/internal/pins"
	"github.com/clausecheck/cli/internal/workflow"
)

type page int

const (
	pageUpload page = iota
	pageAnalysis
	pageHistory
)

// App is the root TUI model. It owns the shared collaborators and
// routes messages to the active page.
type App struct {
	service api.Service
	runner  *workflow.Runner
	store   *pins.Store

	page     page
	upload   *UploadView
	analysis *AnalysisView
	history  *HistoryView

	width  int
	height int
}

// NewApp creates the TUI application.
func NewApp(service api.Service, store *pins.Store, language string) *App {
	app := &App{
		service: service,
		runner:  workflow.NewRunner(service),
		store:   store,
	}
	app.upload = NewUploadView(app, language)
	app.analysis = NewAnalysisView(app)
	app.history = NewHistoryView(app)
	return app
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.upload.Init()
}

// Update handles updates
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.page == pageUpload && !a.upload.busy {
				return a, tea.Quit
			}
		case "esc":
			if a.page == pageUpload {
				return a, tea.Quit
			}
			a.page = pageUpload
			return a, nil
		case "h":
			if a.page != pageHistory {
				a.page = pageHistory
				return a, a.history.Init()
			}
		}
	case analysisReadyMsg:
		a.upload.busy = false
		a.analysis.SetAnalysis(msg.analysis)
		a.page = pageAnalysis
		return a, nil
	}

	switch a.page {
	case pageUpload:
		return a, a.upload.Update(msg)
	case pageAnalysis:
		return a, a.analysis.Update(msg)
	case pageHistory:
		return a, a.history.Update(msg)
	}
	return a, nil
}

// View renders the active page
func (a *App) View() string {
	switch a.page {
	case pageAnalysis:
		return a.analysis.View()
	case pageHistory:
		return a.history.View()
	default:
		return a.upload.View()
	}
}

// analysisReadyMsg signals a fetched or freshly created analysis that
// should be shown.
type analysisReadyMsg struct {
	analysis *api.AnalysisResult
}

// errorMsg signals a failed command
type errorMsg struct {
	error error
}

// statusMsg carries transient feedback for the active page's footer
type statusMsg struct {
	text string
}

// copyText puts text on the system clipboard and reports the outcome.
func copyText(text, done string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{text: fmt.Sprintf("복사 실패: %v", err)}
		}
		return statusMsg{text: done}
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	checkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	safeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// labelStyle returns the style for a risk label.
func labelStyle(label api.RiskLabel) lipgloss.Style {
	switch label {
	case api.LabelWarning:
		return warningStyle
	case api.LabelCheck:
		return checkStyle
	default:
		return safeStyle
	}
}
