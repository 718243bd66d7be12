package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

func TestRender(t *testing.T) {
	lines := []entities.CaptionLine{
		{StartSeconds: 0, Duration: 2, Text: "Hello <i>world</i>"},
		{StartSeconds: 65.7, Duration: 3, Text: "Second &amp; last"},
	}

	t.Run("without timestamps", func(t *testing.T) {
		assert.Equal(t,
			"<p>Hello <i>world</i></p><p>Second &amp; last</p>",
			Render(lines, false))
	})

	t.Run("with timestamps", func(t *testing.T) {
		assert.Equal(t,
			"<p><b>0:00: </b>Hello <i>world</i></p><p><b>1:05: </b>Second &amp; last</p>",
			Render(lines, true))
	})

	t.Run("hour format applies to every line", func(t *testing.T) {
		long := []entities.CaptionLine{
			{StartSeconds: 5, Text: "a"},
			{StartSeconds: 3601, Text: "b"},
		}
		assert.Equal(t,
			"<p><b>0:00:05: </b>a</p><p><b>1:00:01: </b>b</p>",
			Render(long, true))
	})

	t.Run("empty transcript", func(t *testing.T) {
		assert.Equal(t, "", Render(nil, true))
	})
}

func TestRenderBoth(t *testing.T) {
	lines := []entities.CaptionLine{{StartSeconds: 1, Text: "x"}}
	before := append([]entities.CaptionLine(nil), lines...)

	out := RenderBoth(lines)

	assert.Equal(t, "<p><b>0:01: </b>x</p>", out.WithTimestamps)
	assert.Equal(t, "<p>x</p>", out.WithoutTimestamps)
	assert.Equal(t, out.WithTimestamps, out.Variant(true))
	assert.Equal(t, out.WithoutTimestamps, out.Variant(false))
	assert.Equal(t, before, lines)
	assert.Equal(t, out, RenderBoth(lines))
}
