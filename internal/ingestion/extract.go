// Package ingestion provides document text extraction: the boundary between
// uploaded file bytes and the raw text the analyzer works on.
package ingestion

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxFileSize is the upload cap, matching the limit the calling layer
// advertises. Larger inputs are rejected before any parsing.
const MaxFileSize = 10 << 20

var (
	pdfMagic  = []byte("%PDF-")
	docxMagic = []byte("PK\x03\x04")
)

// ExtractText extracts raw text from uploaded file bytes. The format is
// sniffed from the content: PDF and DOCX are parsed, anything else that is
// valid UTF-8 passes through as plain text. Extraction is single-shot and
// non-retryable here; retry policy belongs to the caller.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ExtractionError{Format: "unknown", Message: "empty file"}
	}
	if len(data) > MaxFileSize {
		return "", &ExtractionError{Format: "unknown", Message: "file exceeds 10MB limit"}
	}

	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return extractPDF(data)
	case bytes.HasPrefix(data, docxMagic):
		return extractDOCX(data)
	default:
		if !utf8.Valid(data) {
			return "", &ExtractionError{Format: "unknown", Message: "unrecognized binary format"}
		}
		return string(data), nil
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Message: "failed to open document", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the whole document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	result := sb.String()
	if strings.TrimSpace(result) == "" {
		return "", &ExtractionError{Format: "pdf", Message: "document contains no extractable text"}
	}
	return result, nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Message: "failed to open document", Cause: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := stripTags(content)
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Format: "docx", Message: "document contains no extractable text"}
	}
	return text, nil
}

// stripTags removes the XML markup the docx library leaves in the content,
// inserting spaces so adjacent runs don't merge into one token.
func stripTags(content string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			sb.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
