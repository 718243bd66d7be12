package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

func TestPlainLines(t *testing.T) {
	lines := PlainLines("<p><b>0:05: </b>Hello</p><p>Tom &amp; <EM>Jerry</EM>\nshow</p><p>keep <u>this</u></p>")
	assert.Equal(t, []string{
		"0:05: Hello",
		"Tom & Jerry show",
		"keep <u>this</u>",
	}, lines)
}

func TestPlainLines_Empty(t *testing.T) {
	assert.Empty(t, PlainLines(""))
}

func TestTextExporter_Export(t *testing.T) {
	exp := NewTextExporter(Site{Name: "Transcrypt", URL: "https://example.test"})
	assert.Equal(t, entities.ExportFormatText, exp.Format())

	art, err := exp.Export(Document{
		HTML:    "<p><b>0:05: </b>Hello</p><p><strong>Bye</strong> <i>now</i></p>",
		Title:   "My Video",
		VideoID: "dQw4w9WgXcQ",
	})
	require.NoError(t, err)

	assert.Equal(t, "transcrypt-My-Video.txt", art.Filename)
	assert.Equal(t, MIMEText, art.MIMEType)

	out := string(art.Data)
	assert.Equal(t, strings.Join([]string{
		"Transcript for:",
		"My Video",
		"Transcript generated by Transcrypt (https://example.test)",
		"",
		"0:05: Hello",
		"Bye now",
	}, "\n"), out)
	assert.NotContains(t, out, "<")
}

func TestTextExporter_DefaultSite(t *testing.T) {
	art, err := NewTextExporter(Site{}).Export(Document{Title: "t"})
	require.NoError(t, err)
	assert.Contains(t, string(art.Data), DefaultSiteURL)
}
