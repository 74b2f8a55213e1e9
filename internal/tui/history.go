package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clausecheck/cli/internal/api"
	"github.com/clausecheck/cli/internal/view"
)

// HistoryView pages through past analyses. Pages are zero-indexed and
// stateless on the server; a full page means there may be another one.
type HistoryView struct {
	app *App

	page     int
	entries  []api.AnalysisResult
	selected int
	loading  bool
	errText  string
}

// NewHistoryView creates a new history view
func NewHistoryView(app *App) *HistoryView {
	return &HistoryView{app: app}
}

// Init initializes the history view
func (hv *HistoryView) Init() tea.Cmd {
	hv.loading = true
	hv.errText = ""
	return hv.loadPage
}

// Update handles updates
func (hv *HistoryView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if hv.loading {
			return nil
		}
		switch msg.String() {
		case "j", "down":
			if hv.selected < len(hv.entries)-1 {
				hv.selected++
			}
		case "k", "up":
			if hv.selected > 0 {
				hv.selected--
			}
		case "n", "right":
			// A full page is the only hint that more may exist.
			if len(hv.entries) == api.DefaultPageSize {
				hv.page++
				return hv.Init()
			}
		case "p", "left":
			if hv.page > 0 {
				hv.page--
				return hv.Init()
			}
		case "r":
			return hv.Init()
		case "enter":
			if hv.selected >= 0 && hv.selected < len(hv.entries) {
				return hv.openSelected
			}
		}
	case historyLoadedMsg:
		hv.entries = msg.entries
		hv.loading = false
		hv.selected = 0
	case errorMsg:
		hv.loading = false
		hv.errText = api.UserError(msg.error)
	}
	return nil
}

// View renders the history view
func (hv *HistoryView) View() string {
	var lines []string

	lines = append(lines, titleStyle.Render("분석 히스토리"))
	lines = append(lines, "")

	if hv.loading {
		lines = append(lines, "불러오는 중...")
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if hv.errText != "" {
		lines = append(lines, errorStyle.Render(hv.errText))
		lines = append(lines, "")
	}

	if len(hv.entries) == 0 && hv.errText == "" {
		lines = append(lines, "분석 히스토리가 없습니다. 계약서를 업로드하여 분석을 시작해보세요.")
	}

	for i, entry := range hv.entries {
		style := lipgloss.NewStyle()
		if i == hv.selected {
			style = style.Bold(true).Foreground(lipgloss.Color("205"))
		}
		lines = append(lines, style.Render(view.HistoryLine(entry)))
	}

	lines = append(lines, "")
	lines = append(lines, dimStyle.Render(fmt.Sprintf("페이지 %d", hv.page+1)))
	help := "j/k: 이동 | Enter: 열기 | n/p: 다음/이전 페이지 | r: 새로고침 | Esc: 뒤로"
	lines = append(lines, dimStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// loadPage fetches the current history page
func (hv *HistoryView) loadPage() tea.Msg {
	entries, err := hv.app.service.GetAnalysisHistory(context.Background(), hv.page, api.DefaultPageSize)
	if err != nil {
		return errorMsg{error: err}
	}
	return historyLoadedMsg{entries: entries}
}

// openSelected fetches the full analysis for the selected entry
func (hv *HistoryView) openSelected() tea.Msg {
	entry := hv.entries[hv.selected]
	analysis, err := hv.app.service.GetAnalysis(context.Background(), entry.AnalysisID)
	if err != nil {
		return errorMsg{error: err}
	}
	return analysisReadyMsg{analysis: analysis}
}

// historyLoadedMsg signals a history page has been loaded
type historyLoadedMsg struct {
	entries []api.AnalysisResult
}
