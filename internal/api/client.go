package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiPrefix = "/api/v1"

// DefaultPageSize is the history page size when the caller passes none.
const DefaultPageSize = 20

// Service is the interface for the remote contract-analysis API.
type Service interface {
	UploadDocument(ctx context.Context, filename string, r io.Reader) (*Document, error)
	ExtractDocument(ctx context.Context, documentID string) (*Extraction, error)
	CreateAnalysis(ctx context.Context, documentID string, contractType ContractType, userProfile UserProfile, language string) (*AnalysisResult, error)
	GetAnalysis(ctx context.Context, analysisID string) (*AnalysisResult, error)
	GetDocument(ctx context.Context, documentID string, includeText bool) (*Document, error)
	GetDocumentAnalyses(ctx context.Context, documentID string) ([]AnalysisResult, error)
	GetAnalysisHistory(ctx context.Context, page, size int) ([]AnalysisResult, error)
}

// Client implements Service against the versioned HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// Logger, when set, receives a debug line per request.
	Logger *slog.Logger
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the uniform {success, data, error} wrapper every endpoint
// responds with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// do sends one request and interprets the response envelope. Every
// endpoint funnels through here; none gets its own success-path rules.
// On success the envelope's data is unmarshaled into out.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	u := c.baseURL + apiPrefix + path

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &APIError{Code: CodeNetworkError, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.Logger != nil {
		c.Logger.Debug("api request", "method", method, "path", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Code: CodeNetworkError, Message: err.Error()}
	}
	defer resp.Body.Close()

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	if !isJSON && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &APIError{
			Status:  resp.StatusCode,
			Code:    CodeHTTPError,
			Message: fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Code:    CodeHTTPError,
			Message: fmt.Sprintf("unexpected response body: %v", err),
		}
	}

	if !env.Success {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Code:    CodeUnknownError,
			Message: UserMessage(CodeUnknownError),
		}
		if env.Error != nil {
			if env.Error.Code != "" {
				apiErr.Code = env.Error.Code
			}
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &APIError{
			Status:  resp.StatusCode,
			Code:    CodeNoData,
			Message: "응답 데이터가 없습니다.",
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Code:    CodeInvalidResponse,
			Message: fmt.Sprintf("decoding response data: %v", err),
		}
	}
	return nil
}

// UploadDocument uploads the file as a multipart request. Size and type
// are not checked here; the server is authoritative. One attempt, no
// resume.
func (c *Client) UploadDocument(ctx context.Context, filename string, r io.Reader) (*Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, &APIError{Code: CodeUploadFailed, Message: err.Error()}
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, &APIError{Code: CodeUploadFailed, Message: err.Error()}
	}
	if err := mw.Close(); err != nil {
		return nil, &APIError{Code: CodeUploadFailed, Message: err.Error()}
	}

	var doc Document
	if err := c.do(ctx, http.MethodPost, "/documents", &buf, mw.FormDataContentType(), &doc); err != nil {
		return nil, err
	}
	if doc.DocumentID == "" {
		return nil, &APIError{
			Code:    CodeUploadFailed,
			Message: "문서 업로드 후 documentId를 받지 못했습니다.",
		}
	}
	doc.Status = StatusUploaded
	return &doc, nil
}

// ExtractDocument triggers server-side text extraction for an uploaded
// document. Idempotency of repeated calls is up to the server.
func (c *Client) ExtractDocument(ctx context.Context, documentID string) (*Extraction, error) {
	if err := requireUUID("documentId", documentID); err != nil {
		return nil, err
	}

	var ext Extraction
	if err := c.do(ctx, http.MethodPost, "/documents/"+documentID+"/extract", nil, "application/json", &ext); err != nil {
		return nil, err
	}
	return &ext, nil
}

type createAnalysisRequest struct {
	DocumentID   string       `json:"documentId"`
	ContractType ContractType `json:"contractType"`
	UserProfile  UserProfile  `json:"userProfile"`
	Language     string       `json:"language"`
}

// CreateAnalysis requests a risk analysis of an extracted document.
// language defaults to "ko-KR" when empty.
func (c *Client) CreateAnalysis(ctx context.Context, documentID string, contractType ContractType, userProfile UserProfile, language string) (*AnalysisResult, error) {
	if documentID == "" {
		return nil, validationError("documentId가 필요합니다.")
	}
	if contractType == "" {
		return nil, validationError("contractType이 필요합니다.")
	}
	if userProfile == "" {
		return nil, validationError("userProfile이 필요합니다.")
	}
	if !contractType.Valid() {
		return nil, validationError("지원하지 않는 contractType입니다: %s", contractType)
	}
	if !userProfile.Valid() {
		return nil, validationError("지원하지 않는 userProfile입니다: %s", userProfile)
	}
	if err := requireUUID("documentId", documentID); err != nil {
		return nil, err
	}
	if language == "" {
		language = "ko-KR"
	}

	body, err := json.Marshal(createAnalysisRequest{
		DocumentID:   documentID,
		ContractType: contractType,
		UserProfile:  userProfile,
		Language:     language,
	})
	if err != nil {
		return nil, &APIError{Code: CodeInternalError, Message: err.Error()}
	}

	var result AnalysisResult
	if err := c.do(ctx, http.MethodPost, "/analyses", bytes.NewReader(body), "application/json", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAnalysis fetches one analysis by id.
func (c *Client) GetAnalysis(ctx context.Context, analysisID string) (*AnalysisResult, error) {
	if err := requireUUID("analysisId", analysisID); err != nil {
		return nil, err
	}

	var result AnalysisResult
	if err := c.do(ctx, http.MethodGet, "/analyses/"+analysisID, nil, "application/json", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDocument fetches a document record, optionally with its extracted
// text.
func (c *Client) GetDocument(ctx context.Context, documentID string, includeText bool) (*Document, error) {
	if err := requireUUID("documentId", documentID); err != nil {
		return nil, err
	}

	path := "/documents/" + documentID
	if includeText {
		path += "?includeText=true"
	}

	var doc Document
	if err := c.do(ctx, http.MethodGet, path, nil, "application/json", &doc); err != nil {
		return nil, err
	}
	if doc.Status == "" {
		doc.Status = StatusUploaded
	}
	return &doc, nil
}

// GetDocumentAnalyses lists every analysis made from one document.
func (c *Client) GetDocumentAnalyses(ctx context.Context, documentID string) ([]AnalysisResult, error) {
	if err := requireUUID("documentId", documentID); err != nil {
		return nil, err
	}

	var results []AnalysisResult
	if err := c.do(ctx, http.MethodGet, "/analyses/documents/"+documentID, nil, "application/json", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetAnalysisHistory lists past analyses, newest first. Pages are
// zero-indexed; size defaults to DefaultPageSize.
func (c *Client) GetAnalysisHistory(ctx context.Context, page, size int) ([]AnalysisResult, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	params := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}

	var results []AnalysisResult
	if err := c.do(ctx, http.MethodGet, "/analyses/history?"+params.Encode(), nil, "application/json", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// requireUUID rejects identifiers that are not in the canonical
// 8-4-4-4-12 textual form, before any network call happens.
func requireUUID(field, id string) *APIError {
	if id == "" {
		return validationError("%s가 필요합니다.", field)
	}
	if len(id) != 36 {
		return validationError("올바른 UUID 형식이 아닙니다: %s", id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return validationError("올바른 UUID 형식이 아닙니다: %s", id)
	}
	return nil
}

// Compile-time check that Client implements Service.
var _ Service = (*Client)(nil)
