// Package workflow runs the upload → extract → analyze sequence as one
// operation. A failure at any step aborts the whole run; there is no
// retry and no compensation for the steps that already ran (an uploaded
// document left behind is the server's to clean up).
package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/clausecheck/cli/internal/api"
)

// Runner drives the analysis workflow against a remote service.
type Runner struct {
	service api.Service
}

// NewRunner creates a workflow runner.
func NewRunner(service api.Service) *Runner {
	return &Runner{service: service}
}

// Analyze uploads the file, triggers extraction, and requests the
// analysis. Each step's identifier feeds the next; the first error
// wins and is returned as the step produced it, unwrapped. On success
// the created analysis is returned exactly as served.
func (r *Runner) Analyze(ctx context.Context, filename string, file io.Reader, contractType api.ContractType, userProfile api.UserProfile, language string) (*api.AnalysisResult, error) {
	doc, err := r.service.UploadDocument(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	// The server promises an identifier on success.
	if doc == nil || doc.DocumentID == "" {
		return nil, &api.APIError{
			Status:  500,
			Code:    api.CodeInvalidResponse,
			Message: "문서 업로드 후 documentId를 받지 못했습니다.",
		}
	}

	if _, err := r.service.ExtractDocument(ctx, doc.DocumentID); err != nil {
		return nil, err
	}

	return r.service.CreateAnalysis(ctx, doc.DocumentID, contractType, userProfile, language)
}

// AnalyzeFile runs Analyze on a file on disk.
func (r *Runner) AnalyzeFile(ctx context.Context, path string, contractType api.ContractType, userProfile api.UserProfile, language string) (*api.AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return r.Analyze(ctx, filepath.Base(path), f, contractType, userProfile, language)
}
