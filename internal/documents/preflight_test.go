package documents_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecheck/cli/internal/documents"
)

func TestPreflight_WrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	_, err := documents.Preflight(path)
	assert.ErrorIs(t, err, documents.ErrWrongType)
}

func TestPreflight_MissingFile(t *testing.T) {
	_, err := documents.Preflight(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, documents.ErrUnreadable)
}

func TestPreflight_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(documents.MaxFileSize+1))
	require.NoError(t, f.Close())

	_, err = documents.Preflight(path)
	assert.ErrorIs(t, err, documents.ErrTooLarge)
}

func TestPreflight_NotActuallyPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text pretending"), 0644))

	_, err := documents.Preflight(path)
	assert.ErrorIs(t, err, documents.ErrWrongType)
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t, "파일 크기가 10MB를 초과합니다", documents.RejectionMessage(documents.ErrTooLarge))
	assert.Equal(t, "PDF 파일만 업로드 가능합니다", documents.RejectionMessage(documents.ErrWrongType))
	assert.Equal(t, "파일 업로드에 실패했습니다", documents.RejectionMessage(documents.ErrUnreadable))
}
