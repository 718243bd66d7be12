package entities

// TrackKind distinguishes authored captions from YouTube's speech recognition output
type TrackKind string

const (
	TrackKindStandard TrackKind = "standard"
	TrackKindASR      TrackKind = "asr"
)

// CaptionLine is one timed subtitle cue. Text may carry b/strong/i/em inline markup.
type CaptionLine struct {
	StartSeconds float64 `json:"start"`
	Duration     float64 `json:"dur"`
	Text         string  `json:"text"`
}

// CaptionTrack describes one subtitle stream available for a video
type CaptionTrack struct {
	LanguageCode   string    `json:"language_code"`
	Name           string    `json:"name"`
	Kind           TrackKind `json:"kind"`
	IsTranslatable bool      `json:"is_translatable"`
	// Query is the base64url encoded timedtext query used to download the track
	Query string `json:"data"`
}

// Language is a machine translation target offered by YouTube
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TrackList is the caption listing for a single video
type TrackList struct {
	VideoID              string         `json:"video_id"`
	Title                string         `json:"title"`
	Tracks               []CaptionTrack `json:"tracks"`
	TranslationLanguages []Language     `json:"translation_languages,omitempty"`
}

// MaxStart returns the largest start offset in lines, or 0 for an empty slice
func MaxStart(lines []CaptionLine) float64 {
	var max float64
	for _, l := range lines {
		if l.StartSeconds > max {
			max = l.StartSeconds
		}
	}
	return max
}

// TranscriptRequest identifies the caption track to load for a transcript view.
// Query, when set, is the base64url timedtext query of a listed track and wins
// over Language.
type TranscriptRequest struct {
	Video       string
	Query       string
	Language    string
	TranslateTo string
	Title       string
}

// Transcript is a downloaded caption track ready for rendering
type Transcript struct {
	VideoID  string
	Title    string
	Language string
	Lines    []CaptionLine
}
