package render

import (
	"fmt"
	"math"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

const (
	// hourThreshold is the start offset at which a transcript switches to H:MM:SS
	hourThreshold = 3600
	// maxSeconds keeps the integer conversion defined for huge or infinite input
	maxSeconds = math.MaxInt32
)

// UseHourFormat reports whether any line starts at or after one hour.
// It is decided once per transcript so every line shares the same shape.
func UseHourFormat(lines []entities.CaptionLine) bool {
	return entities.MaxStart(lines) >= hourThreshold
}

// FormatTimestamp renders seconds as M:SS, or H:MM:SS when useHourFormat is set.
// Fractions are truncated, negative input clamps to zero and anything past
// maxSeconds (+Inf included) clamps to maxSeconds.
func FormatTimestamp(seconds float64, useHourFormat bool) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	if seconds > maxSeconds {
		seconds = maxSeconds
	}
	total := int64(math.Floor(seconds))

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if useHourFormat {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	// Without the hour column minutes keep counting past 59
	return fmt.Sprintf("%d:%02d", total/60, s)
}
