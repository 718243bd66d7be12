package export

import (
	"html"
	"regexp"
	"strings"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

var (
	inlineTag = regexp.MustCompile(`(?i)</?(b|strong|i|em)>`)
	newline   = regexp.MustCompile(`\r\n|\r|\n`)
)

// TextExporter writes a plain text transcript. It works on the rendered HTML
// directly since every bit of styling is discarded anyway.
type TextExporter struct {
	site Site
}

func NewTextExporter(site Site) *TextExporter {
	return &TextExporter{site: site}
}

func (e *TextExporter) Format() entities.ExportFormat {
	return entities.ExportFormatText
}

func (e *TextExporter) Export(doc Document) (*entities.Artifact, error) {
	h := newHeader(e.site, doc)

	lines := []string{h.Lead, h.Title, h.attribution(), ""}
	lines = append(lines, PlainLines(doc.HTML)...)

	return &entities.Artifact{
		Filename: Filename(doc.Title, entities.ExportFormatText),
		MIMEType: MIMEText,
		Data:     []byte(strings.Join(lines, "\n")),
	}, nil
}

// PlainLines turns rendered transcript HTML into one unstyled line per paragraph
func PlainLines(rendered string) []string {
	segments := strings.Split(rendered, "<p>")

	lines := make([]string, 0, len(segments))
	for i, seg := range segments {
		// Anything before the first <p> is only kept when it carries text
		if i == 0 && strings.TrimSpace(seg) == "" {
			continue
		}
		seg = strings.TrimSuffix(seg, "</p>")
		seg = html.UnescapeString(seg)
		seg = inlineTag.ReplaceAllString(seg, "")
		seg = newline.ReplaceAllString(seg, " ")
		lines = append(lines, seg)
	}
	return lines
}
