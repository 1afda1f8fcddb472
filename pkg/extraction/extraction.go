// Package extraction converts uploaded PDF bytes into normalized plain text
// suitable for embedding in a model prompt.
package extraction

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Sentinel errors for text extraction.
var (
	ErrExtractFailed = errors.New("failed to extract text from PDF")
	ErrNoText        = errors.New("no extractable text in PDF")
)

// Text extracts the plain text of every readable page in a PDF, strips
// null bytes, and collapses all whitespace runs to single spaces. Pages
// that cannot be decoded are skipped rather than failing the document.
// Returns the cleaned text and the document's page count.
//
// ErrExtractFailed means the bytes are not a readable PDF; ErrNoText means
// the document parsed but yielded no text (image-only or empty pages).
// Both reject the document before it reaches the model.
func Text(data []byte) (text string, pages int, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("%w: %v", ErrExtractFailed, r)
		}
	}()

	pages, err = pdfapi.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	var sb strings.Builder
	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		sb.WriteString(content)
		sb.WriteString("\n")
	}

	cleaned := Normalize(sb.String())
	if cleaned == "" {
		return "", pages, ErrNoText
	}

	return cleaned, pages, nil
}

// Normalize strips null bytes and collapses all whitespace (including line
// breaks) to single spaces, matching the formatting of text submitted
// directly so classification results do not differ by ingestion path.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return strings.Join(strings.Fields(s), " ")
}
