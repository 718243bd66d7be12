package caption

// TrackResponse is one caption track of a video
type TrackResponse struct {
	LanguageCode   string `json:"language_code"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	IsTranslatable bool   `json:"is_translatable"`
	Data           string `json:"data"`
}

// LanguageResponse is a machine translation target
type LanguageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TrackListResponse lists the caption tracks of a video
type TrackListResponse struct {
	VideoID              string             `json:"video_id"`
	Title                string             `json:"title"`
	Tracks               []TrackResponse    `json:"tracks"`
	TranslationLanguages []LanguageResponse `json:"translation_languages"`
}

// LineResponse is one caption line
type LineResponse struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"dur"`
	Text     string  `json:"text"`
}

// TrackLinesResponse is a downloaded caption track
type TrackLinesResponse struct {
	Count int            `json:"count"`
	Lines []LineResponse `json:"lines"`
}
