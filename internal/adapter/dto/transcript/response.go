package transcript

import "time"

// TranscriptResponse is the current state of a transcript session
type TranscriptResponse struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Timestamps bool      `json:"timestamps"`
	HTML       string    `json:"html,omitempty"`
	Failure    string    `json:"failure,omitempty"`
	VideoID    string    `json:"video_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ExportLinkResponse points at an uploaded export
type ExportLinkResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Warning  string `json:"warning,omitempty"`
}
