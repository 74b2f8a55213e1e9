package api

import (
	"fmt"
	"sort"
	"strings"
)

// Error codes the server is known to emit, plus the codes this client
// raises on its own (validation, transport, contract violations).
const (
	CodeNotFound            = "NOT_FOUND"
	CodeDocumentNotFound    = "DOCUMENT_NOT_FOUND"
	CodeUnsupportedFileType = "UNSUPPORTED_FILE_TYPE"
	CodeOCRNotImplemented   = "OCR_NOT_IMPLEMENTED"
	CodeFileTooLarge        = "FILE_TOO_LARGE"
	CodeExtractionFailed    = "EXTRACTION_FAILED"
	CodeLLMUpstreamError    = "LLM_UPSTREAM_ERROR"
	CodeJSONRepairFailed    = "JSON_REPAIR_FAILED"
	CodeRateLimited         = "RATE_LIMITED"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeNetworkError        = "NETWORK_ERROR"
	CodeUnknownError        = "UNKNOWN_ERROR"

	// Client-side codes for server contract violations.
	CodeHTTPError       = "HTTP_ERROR"
	CodeNoData          = "NO_DATA"
	CodeUploadFailed    = "UPLOAD_FAILED"
	CodeInvalidResponse = "INVALID_RESPONSE"
)

// APIError is the single error type every client operation fails with.
// Validation failures are raised before any network call; everything
// else carries whatever the server (or transport) reported.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api error %s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// IsValidation reports whether err is a client-detected precondition
// failure that never reached the network.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidationError)
}

func hasCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}

// userMessages maps server error codes to the Korean text shown to the
// user. Unrecognized codes fall back to UNKNOWN_ERROR.
var userMessages = map[string]string{
	CodeNotFound:            "요청한 리소스를 찾을 수 없습니다.",
	CodeDocumentNotFound:    "문서를 찾을 수 없습니다.",
	CodeUnsupportedFileType: "지원하지 않는 파일 형식입니다. PDF 파일만 업로드 가능합니다.",
	CodeOCRNotImplemented:   "이미지 OCR은 아직 지원하지 않습니다. PDF 파일만 업로드 가능합니다.",
	CodeFileTooLarge:        "파일 크기가 너무 큽니다. 10MB 이하의 파일을 업로드해주세요.",
	CodeExtractionFailed:    "텍스트 추출에 실패했습니다. 파일을 확인해주세요.",
	CodeLLMUpstreamError:    "분석 엔진 응답이 불안정합니다. 잠시 후 다시 시도해주세요.",
	CodeJSONRepairFailed:    "분석 결과 형식 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
	CodeRateLimited:         "요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요.",
	CodeValidationError:     "요청 값 검증에 실패했습니다.",
	CodeInternalError:       "서버 내부 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
	CodeNetworkError:        "네트워크 오류가 발생했습니다. 연결을 확인해주세요.",
	CodeUnknownError:        "알 수 없는 오류가 발생했습니다.",
}

// UserMessage returns the user-facing message for an error code.
func UserMessage(code string) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return userMessages[CodeUnknownError]
}

// UserError renders any error as user-facing text. APIError details,
// when present, take precedence over the code table; other errors get
// the generic unknown-error message.
func UserError(err error) string {
	apiErr, ok := err.(*APIError)
	if !ok {
		return UserMessage(CodeUnknownError)
	}
	if len(apiErr.Details) > 0 {
		keys := make([]string, 0, len(apiErr.Details))
		for k := range apiErr.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprint(apiErr.Details[k]))
		}
		return strings.Join(parts, ", ")
	}
	if apiErr.Message != "" && apiErr.Code == CodeValidationError {
		return apiErr.Message
	}
	return UserMessage(apiErr.Code)
}

func validationError(format string, args ...any) *APIError {
	return &APIError{
		Status:  400,
		Code:    CodeValidationError,
		Message: fmt.Sprintf(format, args...),
	}
}
