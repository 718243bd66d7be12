package export

import (
	"regexp"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

const (
	filenamePrefix   = "transcrypt-"
	filenameTitleLen = 15
)

// Matches what a JavaScript \s matches
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

// Filename derives the artifact name from the video title: whitespace runs become
// dashes and the result is cut to 15 characters, even mid word.
func Filename(title string, format entities.ExportFormat) string {
	core := []rune(whitespaceRun.ReplaceAllString(title, "-"))
	if len(core) > filenameTitleLen {
		core = core[:filenameTitleLen]
	}
	return filenamePrefix + string(core) + format.Extension()
}
