package render

import (
	"strings"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// Transcript holds both renderings of one line sequence.
// Values are replaced wholesale, never edited in place.
type Transcript struct {
	WithTimestamps    string `json:"with_timestamps"`
	WithoutTimestamps string `json:"without_timestamps"`
}

// Variant returns the rendering matching the toggle
func (t Transcript) Variant(withTimestamps bool) string {
	if withTimestamps {
		return t.WithTimestamps
	}
	return t.WithoutTimestamps
}

// Render produces one <p> per line. Caption text is passed through untouched,
// inline markup included.
func Render(lines []entities.CaptionLine, withTimestamps bool) string {
	useHours := UseHourFormat(lines)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString("<p>")
		if withTimestamps {
			b.WriteString("<b>")
			b.WriteString(FormatTimestamp(line.StartSeconds, useHours))
			b.WriteString(": </b>")
		}
		b.WriteString(line.Text)
		b.WriteString("</p>")
	}
	return b.String()
}

// RenderBoth builds both variants from the same lines
func RenderBoth(lines []entities.CaptionLine) Transcript {
	return Transcript{
		WithTimestamps:    Render(lines, true),
		WithoutTimestamps: Render(lines, false),
	}
}
