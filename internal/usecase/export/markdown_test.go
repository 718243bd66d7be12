package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownExporter_Export(t *testing.T) {
	art, err := NewMarkdownExporter(Site{}).Export(Document{
		HTML:    "<p><b>0:05: </b>Hello <i>world</i></p><p>Second line</p>",
		Title:   "My [Live] Video",
		VideoID: "dQw4w9WgXcQ",
	})
	require.NoError(t, err)

	assert.Equal(t, "transcrypt-My-[Live]-Video.md", art.Filename)
	assert.Equal(t, MIMEMarkdown, art.MIMEType)

	out := string(art.Data)
	assert.Contains(t, out, "### Transcript for:")
	assert.Contains(t, out, `# [My \[Live\] Video](https://www.youtube.com/watch?v=dQw4w9WgXcQ)`)
	assert.Contains(t, out, "[Transcrypt](https://transcrypt.web.app)")
	assert.Contains(t, out, "**0:05:**")
	assert.Contains(t, out, "*world*")
	assert.Contains(t, out, "Second line")
	assert.NotContains(t, out, "<p>")
}
