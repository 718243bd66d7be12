package export

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// MarkdownExporter converts the current HTML rendering to Markdown
type MarkdownExporter struct {
	site Site
}

func NewMarkdownExporter(site Site) *MarkdownExporter {
	return &MarkdownExporter{site: site}
}

func (e *MarkdownExporter) Format() entities.ExportFormat {
	return entities.ExportFormatMarkdown
}

func (e *MarkdownExporter) Export(doc Document) (*entities.Artifact, error) {
	body, err := htmltomarkdown.ConvertString(doc.HTML)
	if err != nil {
		return nil, fmt.Errorf("convert transcript to markdown: %w", err)
	}

	h := newHeader(e.site, doc)

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", h.Lead)
	fmt.Fprintf(&b, "# [%s](%s)\n\n", escapeMarkdownLink(h.Title), h.VideoURL)
	fmt.Fprintf(&b, "_%s[%s](%s)_\n\n", h.AttributionText, escapeMarkdownLink(h.SiteName), h.SiteURL)
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")

	return &entities.Artifact{
		Filename: Filename(doc.Title, entities.ExportFormatMarkdown),
		MIMEType: MIMEMarkdown,
		Data:     []byte(b.String()),
	}, nil
}

var linkEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`)

func escapeMarkdownLink(s string) string {
	return linkEscaper.Replace(s)
}
