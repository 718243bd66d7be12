package caption

// ListTracksRequest represents GET /captions
type ListTracksRequest struct {
	Video string `query:"video" validate:"required,youtube_video"`
}

// FetchTrackRequest represents GET /captions/track.
// Data is checked by the handler so a missing value yields the documented message.
type FetchTrackRequest struct {
	Data  string `query:"data"`
	TLang string `query:"tlang" validate:"omitempty,max=16"`
}
