package transcript

// CreateTranscriptRequest represents POST /transcripts.
// Either Video or Data must be given; Data selects a listed track directly.
type CreateTranscriptRequest struct {
	Video    string `json:"video" validate:"required_without=Data,omitempty,youtube_video"`
	Data     string `json:"data" validate:"required_without=Video"`
	Language string `json:"lang" validate:"omitempty,max=16"`
	TLang    string `json:"tlang" validate:"omitempty,max=16"`
	Title    string `json:"title" validate:"omitempty,max=500"`
}

// SetTimestampsRequest represents PUT /transcripts/:id/timestamps
type SetTimestampsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// ExportRequest represents GET /transcripts/:id/export
type ExportRequest struct {
	Format   string `query:"format" validate:"required"`
	Delivery string `query:"delivery" validate:"omitempty,oneof=download link"`
	Title    string `query:"title" validate:"max=200"`
}
