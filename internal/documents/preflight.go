// Package documents checks a contract file on this side of the wire
// before it is offered for upload. The server stays authoritative; the
// point is to reject obvious misfires without a round trip and to give
// the picker something to show (page count, first-page preview).
package documents

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// MaxFileSize is the upload cap enforced by the picker.
const MaxFileSize = 10 << 20 // 10 MiB

// Rejection reasons, in decreasing specificity.
var (
	ErrTooLarge   = errors.New("file exceeds 10MB")
	ErrWrongType  = errors.New("not a PDF file")
	ErrUnreadable = errors.New("file could not be read")
)

const previewRunes = 200

// FileInfo describes a file that passed preflight.
type FileInfo struct {
	Path      string
	Name      string
	SizeBytes int64
	Pages     int
	Preview   string
}

// Preflight checks that path is an uploadable contract: a readable PDF
// of at most MaxFileSize bytes. On success it reports the page count
// and a short first-page text preview.
func Preflight(path string) (*FileInfo, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: %s", ErrWrongType, filepath.Base(path))
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if stat.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, stat.Size())
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongType, err)
	}
	defer doc.Close()

	info := &FileInfo{
		Path:      path,
		Name:      filepath.Base(path),
		SizeBytes: stat.Size(),
		Pages:     doc.NumPage(),
	}

	if info.Pages > 0 {
		if text, err := doc.Text(0); err == nil {
			info.Preview = preview(text)
		}
	}

	return info, nil
}

// RejectionMessage maps a preflight failure to the user-facing text.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrTooLarge):
		return "파일 크기가 10MB를 초과합니다"
	case errors.Is(err, ErrWrongType):
		return "PDF 파일만 업로드 가능합니다"
	default:
		return "파일 업로드에 실패했습니다"
	}
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > previewRunes {
		return string(runes[:previewRunes]) + "..."
	}
	return text
}
