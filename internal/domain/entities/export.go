package entities

import (
	"fmt"
	"strings"
)

// ExportFormat enumerates the downloadable artifact formats
type ExportFormat string

const (
	ExportFormatPDF      ExportFormat = "pdf"
	ExportFormatWord     ExportFormat = "word"
	ExportFormatText     ExportFormat = "text"
	ExportFormatMarkdown ExportFormat = "markdown"
)

// ExportFormats lists every supported format in display order
var ExportFormats = []ExportFormat{
	ExportFormatPDF,
	ExportFormatWord,
	ExportFormatText,
	ExportFormatMarkdown,
}

// ParseExportFormat accepts the canonical names plus the usual file extensions
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return ExportFormatPDF, nil
	case "word", "docx", "doc":
		return ExportFormatWord, nil
	case "text", "txt", "plain":
		return ExportFormatText, nil
	case "markdown", "md":
		return ExportFormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension, dot included
func (f ExportFormat) Extension() string {
	switch f {
	case ExportFormatPDF:
		return ".pdf"
	case ExportFormatWord:
		return ".docx"
	case ExportFormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// ExportRequest is consumed once per user export action. An empty VideoTitle
// or VideoID takes the value of the transcript being exported.
type ExportRequest struct {
	Format     ExportFormat
	VideoTitle string
	VideoID    string
}

// Artifact is a named byte sequence ready to be handed to a download collaborator
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Size returns the artifact length in bytes
func (a *Artifact) Size() int64 {
	if a == nil {
		return 0
	}
	return int64(len(a.Data))
}
