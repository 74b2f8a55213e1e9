package view_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecheck/cli/internal/api"
	"github.com/clausecheck/cli/internal/pins"
	"github.com/clausecheck/cli/internal/view"
)

func sampleAnalysis() *api.AnalysisResult {
	return &api.AnalysisResult{
		AnalysisID: uuid.NewString(),
		OverallSummary: api.OverallSummary{
			WarningCount: 1,
			CheckCount:   1,
			OkCount:      1,
			KeyPoints:    []string{"손해배상 조항을 확인하세요"},
		},
		Items: []api.ClauseItem{
			{
				ClauseID:       "c1",
				Title:          "손해배상",
				Label:          api.LabelWarning,
				RiskReason:     "상한이 없습니다",
				WhatToConfirm:  []string{"배상 상한", "귀책 범위"},
				SoftSuggestion: []string{"상한을 계약 금액으로 제한해주세요.", "고의·중과실로 한정해주세요."},
			},
			{
				ClauseID:      "c2",
				Title:         "대금 지급",
				Label:         api.LabelCheck,
				WhatToConfirm: []string{"지급 기일"},
			},
			{
				ClauseID: "c3",
				Title:    "계약 기간",
				Label:    api.LabelOK,
			},
		},
		NegotiationSuggestions: []string{"전체 제안 1", "전체 제안 2"},
		Disclaimer:             "법률 자문이 아닙니다.",
	}
}

func TestPinnedOnly_PreservesOrder(t *testing.T) {
	a := sampleAnalysis()
	store := pins.NewStore(pins.NewMemKV())
	require.NoError(t, store.Pin(a.AnalysisID, "c2"))

	got := view.PinnedOnly(a, store)
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ClauseID)

	require.NoError(t, store.Pin(a.AnalysisID, "c3"))
	require.NoError(t, store.Pin(a.AnalysisID, "c1"))

	got = view.PinnedOnly(a, store)
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ClauseID)
	assert.Equal(t, "c2", got[1].ClauseID)
	assert.Equal(t, "c3", got[2].ClauseID)
}

func TestPinnedOnly_OtherAnalysisDoesNotLeak(t *testing.T) {
	a := sampleAnalysis()
	store := pins.NewStore(pins.NewMemKV())
	require.NoError(t, store.Pin(uuid.NewString(), "c1"))

	assert.Empty(t, view.PinnedOnly(a, store))
}

func TestNegotiationText_BlankLineJoin(t *testing.T) {
	a := sampleAnalysis()
	assert.Equal(t,
		"상한을 계약 금액으로 제한해주세요.\n\n고의·중과실로 한정해주세요.",
		view.NegotiationText(a.Items[0]))
	assert.Equal(t, "", view.NegotiationText(a.Items[2]))
}

func TestAllNegotiationText(t *testing.T) {
	a := sampleAnalysis()
	assert.Equal(t, "전체 제안 1\n\n전체 제안 2", view.AllNegotiationText(a))
}

func TestConfirmationDigest(t *testing.T) {
	a := sampleAnalysis()
	want := "조항 1 손해배상\n- 배상 상한\n- 귀책 범위\n\n" +
		"조항 2 대금 지급\n- 지급 기일\n\n" +
		"조항 3 계약 기간"
	assert.Equal(t, want, view.ConfirmationDigest(a))
}

func TestRender_UsesServedCounts(t *testing.T) {
	a := sampleAnalysis()
	// Deliberately inconsistent with the item labels: the view layer
	// shows the summary as served, it never recounts.
	a.OverallSummary.WarningCount = 9

	out := view.Render(a)
	assert.Contains(t, out, "주의 필요 9")
	assert.Contains(t, out, "손해배상")
	assert.Contains(t, out, "법률 자문이 아닙니다.")
}

func TestHistoryLine(t *testing.T) {
	a := sampleAnalysis()
	a.AnalysisID = "123e4567-e89b-12d3-a456-426614174000"

	line := view.HistoryLine(*a)
	assert.Contains(t, line, "분석 123e4567")
	assert.NotContains(t, line, "123e4567-e89b")
	assert.Contains(t, line, "손해배상 조항을 확인하세요")
	assert.Contains(t, line, "(3개 조항)")
}

func TestExportJSON_RoundTrips(t *testing.T) {
	a := sampleAnalysis()

	data, err := view.ExportJSON(a)
	require.NoError(t, err)

	var back api.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *a, back)
}

func TestLabelName(t *testing.T) {
	assert.Equal(t, "주의 필요", view.LabelName(api.LabelWarning))
	assert.Equal(t, "확인 권장", view.LabelName(api.LabelCheck))
	assert.Equal(t, "양호", view.LabelName(api.LabelOK))
	assert.Equal(t, "MAYBE", view.LabelName(api.RiskLabel("MAYBE")))
}
