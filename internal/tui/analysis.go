package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clausecheck/cli/internal/api"
	"github.com/clausecheck/cli/internal/view"
)

// AnalysisView renders one risk assessment: the served summary counts,
// the clause cards, and the pin/copy/export actions.
type AnalysisView struct {
	app *App

	analysis   *api.AnalysisResult
	selected   int
	pinnedOnly bool
	status     string
}

// NewAnalysisView creates a new analysis view
func NewAnalysisView(app *App) *AnalysisView {
	return &AnalysisView{app: app}
}

// SetAnalysis replaces the shown analysis and resets view state
func (av *AnalysisView) SetAnalysis(a *api.AnalysisResult) {
	av.analysis = a
	av.selected = 0
	av.pinnedOnly = false
	av.status = ""
}

func (av *AnalysisView) visibleItems() []api.ClauseItem {
	if av.analysis == nil {
		return nil
	}
	if av.pinnedOnly {
		return view.PinnedOnly(av.analysis, av.app.store)
	}
	return av.analysis.Items
}

// Update handles updates
func (av *AnalysisView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if av.analysis == nil {
			return nil
		}
		items := av.visibleItems()
		switch msg.String() {
		case "j", "down":
			if av.selected < len(items)-1 {
				av.selected++
			}
		case "k", "up":
			if av.selected > 0 {
				av.selected--
			}
		case " ", "enter":
			if av.selected >= 0 && av.selected < len(items) {
				av.togglePin(items[av.selected].ClauseID)
			}
		case "f":
			av.pinnedOnly = !av.pinnedOnly
			av.selected = 0
		case "c":
			if av.selected >= 0 && av.selected < len(items) {
				return copyText(view.NegotiationText(items[av.selected]), "협상 문구가 복사되었습니다")
			}
		case "a":
			return copyText(view.AllNegotiationText(av.analysis), "전체 협상 제안이 복사되었습니다")
		case "s":
			return copyText(view.ConfirmationDigest(av.analysis), "요약이 복사되었습니다")
		case "e":
			return av.exportJSON
		}
	case statusMsg:
		av.status = msg.text
	case errorMsg:
		av.status = api.UserError(msg.error)
	}
	return nil
}

func (av *AnalysisView) togglePin(clauseID string) {
	if av.app.store.IsPinned(av.analysis.AnalysisID, clauseID) {
		if err := av.app.store.Unpin(av.analysis.AnalysisID, clauseID); err != nil {
			av.status = fmt.Sprintf("핀 저장 실패: %v", err)
			return
		}
		av.status = "핀 해제되었습니다"
	} else {
		if err := av.app.store.Pin(av.analysis.AnalysisID, clauseID); err != nil {
			av.status = fmt.Sprintf("핀 저장 실패: %v", err)
			return
		}
		av.status = "핀되었습니다"
	}
	if av.pinnedOnly && av.selected >= len(av.visibleItems()) {
		av.selected = 0
	}
}

// exportJSON writes the analysis to analysis-<id>.json
func (av *AnalysisView) exportJSON() tea.Msg {
	data, err := view.ExportJSON(av.analysis)
	if err != nil {
		return statusMsg{text: fmt.Sprintf("내보내기 실패: %v", err)}
	}
	name := fmt.Sprintf("analysis-%s.json", av.analysis.AnalysisID)
	if err := os.WriteFile(name, data, 0644); err != nil {
		return statusMsg{text: fmt.Sprintf("내보내기 실패: %v", err)}
	}
	return statusMsg{text: "JSON 파일이 저장되었습니다: " + name}
}

// View renders the analysis view
func (av *AnalysisView) View() string {
	if av.analysis == nil {
		return dimStyle.Render("표시할 분석 결과가 없습니다.")
	}

	a := av.analysis
	var lines []string

	lines = append(lines, titleStyle.Render("분석 결과 "+a.AnalysisID))
	lines = append(lines, fmt.Sprintf("%s %d  %s %d  %s %d",
		warningStyle.Render("주의 필요"), a.OverallSummary.WarningCount,
		checkStyle.Render("확인 권장"), a.OverallSummary.CheckCount,
		safeStyle.Render("양호"), a.OverallSummary.OkCount,
	))
	for _, point := range a.OverallSummary.KeyPoints {
		lines = append(lines, dimStyle.Render("* "+point))
	}
	lines = append(lines, "")

	if av.pinnedOnly {
		lines = append(lines, currentStyle.Render("핀만 보기"))
	}

	items := av.visibleItems()
	if len(items) == 0 {
		lines = append(lines, "핀된 조항이 없습니다. Space 키로 중요 조항을 저장할 수 있습니다.")
	}

	for i, item := range items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == av.selected {
			cursor = "> "
			style = style.Bold(true)
		}
		pin := " "
		if av.app.store.IsPinned(a.AnalysisID, item.ClauseID) {
			pin = "*"
		}
		header := fmt.Sprintf("%s%s [%s] %s", cursor, pin, labelStyle(item.Label).Render(view.LabelName(item.Label)), item.Title)
		lines = append(lines, style.Render(header))

		if i == av.selected {
			if item.RiskReason != "" {
				lines = append(lines, dimStyle.Render("    "+item.RiskReason))
			}
			for _, point := range item.WhatToConfirm {
				lines = append(lines, "    확인: "+point)
			}
			for _, text := range item.SoftSuggestion {
				lines = append(lines, "    제안: "+text)
			}
		}
	}

	if len(a.NegotiationSuggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, currentStyle.Render("전체 협상 제안"))
		for _, text := range a.NegotiationSuggestions {
			lines = append(lines, "- "+text)
		}
	}

	if a.Disclaimer != "" {
		lines = append(lines, "")
		lines = append(lines, dimStyle.Render(a.Disclaimer))
	}

	if av.status != "" {
		lines = append(lines, "")
		lines = append(lines, okStyle.Render(av.status))
	}

	lines = append(lines, "")
	help := "j/k: 이동 | Space: 핀 | f: 핀만 보기 | c: 조항 복사 | a: 전체 복사 | s: 요약 복사 | e: JSON | Esc: 뒤로"
	lines = append(lines, dimStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
