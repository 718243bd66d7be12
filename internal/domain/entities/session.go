package entities

import "time"

// SessionState is the lifecycle state of one transcript view
type SessionState string

const (
	SessionStateLoading   SessionState = "loading"
	SessionStateReady     SessionState = "ready"
	SessionStateExporting SessionState = "exporting"
	SessionStateFailed    SessionState = "failed"
)

// TranscriptSession is the persisted snapshot of a transcript view.
// Both renderings are kept so toggling never re-renders.
type TranscriptSession struct {
	ID                string       `json:"id"`
	State             SessionState `json:"state"`
	Timestamps        bool         `json:"timestamps"`
	Failure           string       `json:"failure,omitempty"`
	VideoID           string       `json:"video_id"`
	Title             string       `json:"title"`
	Language          string       `json:"language,omitempty"`
	LineCount         int          `json:"line_count"`
	WithTimestamps    string       `json:"with_timestamps,omitempty"`
	WithoutTimestamps string       `json:"without_timestamps,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
	ExpiresAt         time.Time    `json:"expires_at"`
}

// NewTranscriptSession creates a session in the loading state
func NewTranscriptSession(id string, ttl time.Duration) *TranscriptSession {
	now := time.Now()
	return &TranscriptSession{
		ID:        id,
		State:     SessionStateLoading,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired checks if session is expired
func (s *TranscriptSession) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
