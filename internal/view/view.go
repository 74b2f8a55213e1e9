// Package view derives presentation-ready values from a fetched
// analysis plus the local pin store. Everything here is a pure
// projection; no network calls, no mutation of the inputs.
package view

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clausecheck/cli/internal/api"
)

// Pins is the slice of the pin store the view layer needs.
type Pins interface {
	IsPinned(analysisID, clauseID string) bool
}

// LabelName returns the display name for a risk label.
func LabelName(label api.RiskLabel) string {
	switch label {
	case api.LabelWarning:
		return "주의 필요"
	case api.LabelCheck:
		return "확인 권장"
	case api.LabelOK:
		return "양호"
	}
	return string(label)
}

// PinnedOnly returns the clauses of a that are pinned, in their
// original order.
func PinnedOnly(a *api.AnalysisResult, pins Pins) []api.ClauseItem {
	var items []api.ClauseItem
	for _, item := range a.Items {
		if pins.IsPinned(a.AnalysisID, item.ClauseID) {
			items = append(items, item)
		}
	}
	return items
}

// NegotiationText is the clipboard payload for one clause's suggested
// phrasings: each entry separated by a blank line, verbatim.
func NegotiationText(item api.ClauseItem) string {
	return strings.Join(item.SoftSuggestion, "\n\n")
}

// AllNegotiationText is the clipboard payload for the analysis-level
// negotiation suggestions.
func AllNegotiationText(a *api.AnalysisResult) string {
	return strings.Join(a.NegotiationSuggestions, "\n\n")
}

// ConfirmationDigest builds the "copy summary" text: every clause with
// its number, title, and what-to-confirm bullets.
func ConfirmationDigest(a *api.AnalysisResult) string {
	blocks := make([]string, 0, len(a.Items))
	for i, item := range a.Items {
		var b strings.Builder
		fmt.Fprintf(&b, "조항 %d %s", i+1, item.Title)
		for _, point := range item.WhatToConfirm {
			b.WriteString("\n- ")
			b.WriteString(point)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// ExportJSON serializes a full analysis for the "export JSON" action.
func ExportJSON(a *api.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}

// HistoryLine renders one history entry as a single line: short id,
// counts straight from the served summary, item total, and the first
// key point if there is one.
func HistoryLine(a api.AnalysisResult) string {
	id := a.AnalysisID
	if len(id) > 8 {
		id = id[:8]
	}
	line := fmt.Sprintf("분석 %s  주의 %d · 확인 %d · 양호 %d  (%d개 조항)",
		id,
		a.OverallSummary.WarningCount,
		a.OverallSummary.CheckCount,
		a.OverallSummary.OkCount,
		len(a.Items),
	)
	if len(a.OverallSummary.KeyPoints) > 0 {
		line += "  — " + a.OverallSummary.KeyPoints[0]
	}
	return line
}

// Render produces the plain-text rendering the headless CLI prints.
// Counts come from the served summary, never recomputed from the items.
func Render(a *api.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "분석 결과 %s\n", a.AnalysisID)
	fmt.Fprintf(&b, "주의 필요 %d · 확인 권장 %d · 양호 %d\n",
		a.OverallSummary.WarningCount,
		a.OverallSummary.CheckCount,
		a.OverallSummary.OkCount,
	)
	for _, point := range a.OverallSummary.KeyPoints {
		fmt.Fprintf(&b, "* %s\n", point)
	}

	for i, item := range a.Items {
		fmt.Fprintf(&b, "\n[%s] 조항 %d: %s\n", LabelName(item.Label), i+1, item.Title)
		if item.RiskReason != "" {
			fmt.Fprintf(&b, "  %s\n", item.RiskReason)
		}
		if len(item.WhatToConfirm) > 0 {
			b.WriteString("  확인 사항:\n")
			for _, point := range item.WhatToConfirm {
				fmt.Fprintf(&b, "  - %s\n", point)
			}
		}
		if len(item.SoftSuggestion) > 0 {
			b.WriteString("  협상 제안:\n")
			for _, text := range item.SoftSuggestion {
				fmt.Fprintf(&b, "  - %s\n", text)
			}
		}
	}

	if len(a.NegotiationSuggestions) > 0 {
		b.WriteString("\n전체 협상 제안:\n")
		for _, text := range a.NegotiationSuggestions {
			fmt.Fprintf(&b, "- %s\n", text)
		}
	}

	if a.Disclaimer != "" {
		fmt.Fprintf(&b, "\n%s\n", a.Disclaimer)
	}

	return b.String()
}
