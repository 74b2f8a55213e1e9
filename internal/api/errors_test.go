package api_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clausecheck/cli/internal/api"
)

func TestUserMessage_KnownCodes(t *testing.T) {
	assert.Equal(t, "문서를 찾을 수 없습니다.", api.UserMessage(api.CodeDocumentNotFound))
	assert.Equal(t, "요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요.", api.UserMessage(api.CodeRateLimited))
}

func TestUserMessage_UnknownCodeFallsBack(t *testing.T) {
	fallback := api.UserMessage(api.CodeUnknownError)
	assert.Equal(t, fallback, api.UserMessage("SOMETHING_NEW"))
	assert.Equal(t, fallback, api.UserMessage(""))
}

func TestUserError_DetailsTakePrecedence(t *testing.T) {
	err := &api.APIError{
		Status:  400,
		Code:    api.CodeValidationError,
		Message: "validation failed",
		Details: map[string]any{
			"contractType": "필수 항목입니다",
			"documentId":   "형식이 올바르지 않습니다",
		},
	}
	assert.Equal(t, "필수 항목입니다, 형식이 올바르지 않습니다", api.UserError(err))
}

func TestUserError_NonAPIError(t *testing.T) {
	assert.Equal(t, api.UserMessage(api.CodeUnknownError), api.UserError(errors.New("boom")))
}

func TestUserError_MappedByCode(t *testing.T) {
	err := &api.APIError{Status: 502, Code: api.CodeLLMUpstreamError, Message: "upstream timeout"}
	assert.Equal(t, "분석 엔진 응답이 불안정합니다. 잠시 후 다시 시도해주세요.", api.UserError(err))
}
