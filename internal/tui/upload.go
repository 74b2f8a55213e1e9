package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clausecheck/cli/internal/api"
	"github.com/clausecheck/cli/internal/documents"
)

// contractTypeNames maps contract types to their display names
var contractTypeNames = map[api.ContractType]string{
	api.ContractFreelancer: "프리랜서",
	api.ContractEmployment: "정규직",
	api.ContractPartTime:   "파트타임",
	api.ContractLease:      "임대차",
	api.ContractNDA:        "비밀유지계약",
	api.ContractOther:      "기타",
}

// userProfileNames maps user profiles to their display names
var userProfileNames = map[api.UserProfile]string{
	api.ProfileStudent:            "학생",
	api.ProfileEntryLevel:         "신입",
	api.ProfileFreelancer:         "프리랜서",
	api.ProfileIndividualBusiness: "개인사업자",
	api.ProfileGeneralConsumer:    "일반 소비자",
}

// UploadView is the upload form: pick a PDF from the working directory,
// choose contract type and reader profile, start the analysis.
type UploadView struct {
	app      *App
	language string

	files      []string
	selected   int
	typeIdx    int
	profileIdx int
	info       *documents.FileInfo

	busy     bool
	errText  string
	status   string
}

// NewUploadView creates a new upload view
func NewUploadView(app *App, language string) *UploadView {
	return &UploadView{
		app:        app,
		language:   language,
		typeIdx:    -1,
		profileIdx: -1,
	}
}

// Init initializes the upload view
func (uv *UploadView) Init() tea.Cmd {
	return uv.scanFiles
}

// Update handles updates
func (uv *UploadView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if uv.busy {
			return nil
		}
		switch msg.String() {
		case "j", "down":
			if uv.selected < len(uv.files)-1 {
				uv.selected++
				return uv.preflightSelected
			}
		case "k", "up":
			if uv.selected > 0 {
				uv.selected--
				return uv.preflightSelected
			}
		case "t":
			uv.typeIdx = (uv.typeIdx + 1) % len(api.ContractTypes)
		case "p":
			uv.profileIdx = (uv.profileIdx + 1) % len(api.UserProfiles)
		case "r":
			return uv.scanFiles
		case "enter":
			return uv.startAnalysis()
		}
	case filesLoadedMsg:
		uv.files = msg.files
		if uv.selected >= len(uv.files) {
			uv.selected = 0
		}
		uv.info = nil
		if len(uv.files) > 0 {
			return uv.preflightSelected
		}
	case preflightMsg:
		uv.info = msg.info
		if msg.err != nil {
			uv.errText = documents.RejectionMessage(msg.err)
		} else {
			uv.errText = ""
		}
	case errorMsg:
		uv.busy = false
		uv.errText = api.UserError(msg.error)
	case statusMsg:
		uv.busy = false
		uv.status = msg.text
	}
	return nil
}

// View renders the upload view
func (uv *UploadView) View() string {
	var lines []string

	lines = append(lines, titleStyle.Render("계약서 업로드"))
	lines = append(lines, dimStyle.Render("분석할 PDF 계약서를 선택해주세요. (최대 10MB)"))
	lines = append(lines, "")

	if len(uv.files) == 0 {
		lines = append(lines, "현재 디렉터리에 PDF 파일이 없습니다. r 키로 다시 검색합니다.")
	} else {
		for i, file := range uv.files {
			style := lipgloss.NewStyle()
			if i == uv.selected {
				style = style.Bold(true).Foreground(lipgloss.Color("205"))
			}
			lines = append(lines, style.Render(filepath.Base(file)))
		}
	}
	lines = append(lines, "")

	if uv.info != nil {
		sizeMB := float64(uv.info.SizeBytes) / (1024 * 1024)
		lines = append(lines, dimStyle.Render(fmt.Sprintf("%s · %.2f MB · %d쪽", uv.info.Name, sizeMB, uv.info.Pages)))
		if uv.info.Preview != "" {
			lines = append(lines, dimStyle.Render(uv.info.Preview))
		}
		lines = append(lines, "")
	}

	typeLabel := "미선택"
	if uv.typeIdx >= 0 {
		typeLabel = contractTypeNames[api.ContractTypes[uv.typeIdx]]
	}
	profileLabel := "미선택"
	if uv.profileIdx >= 0 {
		profileLabel = userProfileNames[api.UserProfiles[uv.profileIdx]]
	}
	lines = append(lines, currentStyle.Render(fmt.Sprintf("계약서 유형: %s", typeLabel)))
	lines = append(lines, currentStyle.Render(fmt.Sprintf("사용자 프로필: %s", profileLabel)))
	lines = append(lines, "")

	if uv.busy {
		lines = append(lines, okStyle.Render("분석 중..."))
	}
	if uv.errText != "" {
		lines = append(lines, errorStyle.Render(uv.errText))
	}
	if uv.status != "" {
		lines = append(lines, uv.status)
	}

	lines = append(lines, "")
	help := "j/k: 파일 | t: 유형 | p: 프로필 | Enter: 분석 시작 | h: 히스토리 | r: 새로고침 | q: 종료"
	lines = append(lines, dimStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (uv *UploadView) startAnalysis() tea.Cmd {
	if len(uv.files) == 0 {
		uv.status = "파일을 선택해주세요."
		return nil
	}
	if uv.typeIdx < 0 {
		uv.status = "계약서 유형을 선택해주세요."
		return nil
	}
	if uv.profileIdx < 0 {
		uv.status = "사용자 프로필을 선택해주세요."
		return nil
	}

	path := uv.files[uv.selected]
	contractType := api.ContractTypes[uv.typeIdx]
	userProfile := api.UserProfiles[uv.profileIdx]

	uv.busy = true
	uv.errText = ""
	uv.status = ""

	return func() tea.Msg {
		info, err := documents.Preflight(path)
		if err != nil {
			return statusMsg{text: documents.RejectionMessage(err)}
		}
		result, err := uv.app.runner.AnalyzeFile(context.Background(), info.Path, contractType, userProfile, uv.language)
		if err != nil {
			return errorMsg{error: err}
		}
		return analysisReadyMsg{analysis: result}
	}
}

// scanFiles lists PDF files in the working directory
func (uv *UploadView) scanFiles() tea.Msg {
	files, _ := filepath.Glob("*.pdf")
	sort.Strings(files)
	return filesLoadedMsg{files: files}
}

// preflightSelected checks the selected file and loads its preview
func (uv *UploadView) preflightSelected() tea.Msg {
	if uv.selected < 0 || uv.selected >= len(uv.files) {
		return nil
	}
	info, err := documents.Preflight(uv.files[uv.selected])
	return preflightMsg{info: info, err: err}
}

// filesLoadedMsg signals the directory scan finished
type filesLoadedMsg struct {
	files []string
}

// preflightMsg signals a preflight check finished
type preflightMsg struct {
	info *documents.FileInfo
	err  error
}
