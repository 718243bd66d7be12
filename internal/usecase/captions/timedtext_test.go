package captions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

func TestParseTimedText_Transcript(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8" ?><transcript>
		<text start="0" dur="1.5">Hello &amp;amp; welcome</text>
		<text start="65.25" dur="2">&lt;i&gt;music&lt;/i&gt; plays</text>
	</transcript>`

	lines, err := ParseTimedText([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []entities.CaptionLine{
		{StartSeconds: 0, Duration: 1.5, Text: "Hello &amp; welcome"},
		{StartSeconds: 65.25, Duration: 2, Text: "<i>music</i> plays"},
	}, lines)
}

func TestParseTimedText_Srv3(t *testing.T) {
	doc := `<?xml version="1.0" encoding="utf-8" ?><timedtext format="3"><body>
		<p t="1200" d="2500">First line</p>
		<p t="4000" d="1000"><s>word</s><s> by word</s></p>
		<p t="5000" d="10">
		</p>
	</body></timedtext>`

	lines, err := ParseTimedText([]byte(doc))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, entities.CaptionLine{StartSeconds: 1.2, Duration: 2.5, Text: "First line"}, lines[0])
	assert.Equal(t, "word by word", lines[1].Text)
	assert.Equal(t, 4.0, lines[1].StartSeconds)
}

func TestParseTimedText_Errors(t *testing.T) {
	_, err := ParseTimedText([]byte("not xml at all <"))
	assert.Error(t, err)

	_, err = ParseTimedText([]byte(`<html><body>nope</body></html>`))
	assert.Error(t, err)

	_, err = ParseTimedText([]byte(`<transcript><text start="abc">x</text></transcript>`))
	assert.Error(t, err)

	for _, start := range []string{"Inf", "+Inf", "-Inf", "NaN"} {
		_, err = ParseTimedText([]byte(`<transcript><text start="` + start + `" dur="1">x</text></transcript>`))
		assert.Error(t, err, start)
	}

	_, err = ParseTimedText([]byte(`<timedtext format="3"><body><p t="Infinity" d="10">x</p></body></timedtext>`))
	assert.Error(t, err)
}

func TestParseTimedText_Empty(t *testing.T) {
	lines, err := ParseTimedText([]byte(`<transcript></transcript>`))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
