// Package source turns uploaded report documents into markdown text
// for the report parser. Each supported format has an extractor that
// emits the toolkit's markdown dialect (or plain text, which the
// parser treats as paragraphs).
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Doc is extracted source material ready for parsing.
type Doc struct {
	Title    string // from metadata when available, else the filename
	Markdown string
}

// Extractor converts raw document bytes into markdown text.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Doc, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// titleFromFilename strips the extension to make a fallback title.
func titleFromFilename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
