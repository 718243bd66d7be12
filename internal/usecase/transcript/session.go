package transcript

import (
	"context"
	"sync"
	"time"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
	"github.com/johnquangdev/transcrypt/internal/usecase/export"
	"github.com/johnquangdev/transcrypt/internal/usecase/markup"
	"github.com/johnquangdev/transcrypt/internal/usecase/render"
)

// Loader retrieves the caption lines of one transcript
type Loader interface {
	LoadTranscript(ctx context.Context) (*entities.Transcript, error)
}

// LoaderFunc adapts a function to Loader
type LoaderFunc func(ctx context.Context) (*entities.Transcript, error)

func (f LoaderFunc) LoadTranscript(ctx context.Context) (*entities.Transcript, error) {
	return f(ctx)
}

// ExporterResolver finds the exporter for a format. *export.Registry satisfies it.
type ExporterResolver interface {
	Get(format entities.ExportFormat) (export.Exporter, error)
}

// ExportResult carries the artifact and any markup problems met while parsing.
// Warning never blocks the export.
type ExportResult struct {
	Artifact *entities.Artifact
	Warning  error
}

// Session drives one transcript view:
//
//	Loading -> Ready(off) <-> Ready(on) -> Exporting -> Ready(*)
//	Loading -> Failed
type Session struct {
	mu         sync.Mutex
	id         string
	state      entities.SessionState
	timestamps bool
	failure    string
	videoID    string
	title      string
	language   string
	lineCount  int
	rendered   render.Transcript
	createdAt  time.Time
	expiresAt  time.Time
}

// NewSession returns a session waiting for its transcript
func NewSession(id string) *Session {
	return &Session{
		id:        id,
		state:     entities.SessionStateLoading,
		createdAt: time.Now(),
	}
}

// Restore rebuilds a session from a stored snapshot
func Restore(snap *entities.TranscriptSession) *Session {
	state := snap.State
	// Exporting never outlives the call that entered it
	if state == entities.SessionStateExporting {
		state = entities.SessionStateReady
	}
	return &Session{
		id:         snap.ID,
		state:      state,
		timestamps: snap.Timestamps,
		failure:    snap.Failure,
		videoID:    snap.VideoID,
		title:      snap.Title,
		language:   snap.Language,
		lineCount:  snap.LineCount,
		rendered: render.Transcript{
			WithTimestamps:    snap.WithTimestamps,
			WithoutTimestamps: snap.WithoutTimestamps,
		},
		createdAt: snap.CreatedAt,
		expiresAt: snap.ExpiresAt,
	}
}

// Snapshot captures the session for storage
func (s *Session) Snapshot() *entities.TranscriptSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state == entities.SessionStateExporting {
		state = entities.SessionStateReady
	}
	return &entities.TranscriptSession{
		ID:                s.id,
		State:             state,
		Timestamps:        s.timestamps,
		Failure:           s.failure,
		VideoID:           s.videoID,
		Title:             s.title,
		Language:          s.language,
		LineCount:         s.lineCount,
		WithTimestamps:    s.rendered.WithTimestamps,
		WithoutTimestamps: s.rendered.WithoutTimestamps,
		CreatedAt:         s.createdAt,
		UpdatedAt:         time.Now(),
		ExpiresAt:         s.expiresAt,
	}
}

func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state
func (s *Session) State() entities.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Timestamps reports whether the timestamped variant is current
func (s *Session) Timestamps() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timestamps
}

// Failure is the retrieval error message once the session has failed
func (s *Session) Failure() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Title returns the video title
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// VideoID returns the video the transcript belongs to
func (s *Session) VideoID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoID
}

// HTML returns the rendering currently on display, empty unless a transcript is loaded
func (s *Session) HTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() string {
	if s.state != entities.SessionStateReady && s.state != entities.SessionStateExporting {
		return ""
	}
	return s.rendered.Variant(s.timestamps)
}

// Load retrieves the transcript and renders both variants.
// Any loader error moves the session to Failed with the error text kept verbatim.
func (s *Session) Load(ctx context.Context, loader Loader) error {
	s.mu.Lock()
	if s.state != entities.SessionStateLoading {
		s.mu.Unlock()
		return ucErrors.ErrAlreadyLoaded
	}
	s.mu.Unlock()

	src, err := loader.LoadTranscript(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = entities.SessionStateFailed
		s.failure = err.Error()
		return err
	}

	s.videoID = src.VideoID
	s.title = src.Title
	s.language = src.Language
	s.lineCount = len(src.Lines)
	s.rendered = render.RenderBoth(src.Lines)
	s.timestamps = false
	s.state = entities.SessionStateReady
	return nil
}

// SetTimestamps selects which pre-rendered variant is current and returns it
func (s *Session) SetTimestamps(on bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTimestampsLocked(on)
}

// Toggle flips the timestamp setting
func (s *Session) Toggle() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTimestampsLocked(!s.timestamps)
}

func (s *Session) setTimestampsLocked(on bool) (string, error) {
	switch s.state {
	case entities.SessionStateReady:
	case entities.SessionStateExporting:
		return "", ucErrors.ErrExportInProgress
	default:
		return "", ucErrors.ErrNotReady
	}

	s.timestamps = on
	return s.rendered.Variant(on), nil
}

// Export parses the current rendering and hands it to the exporter for req.Format.
// The session returns to Ready whatever the outcome; only one export runs at a time.
func (s *Session) Export(exporters ExporterResolver, req entities.ExportRequest) (*ExportResult, error) {
	s.mu.Lock()
	switch s.state {
	case entities.SessionStateReady:
	case entities.SessionStateExporting:
		s.mu.Unlock()
		return nil, ucErrors.ErrExportInProgress
	default:
		s.mu.Unlock()
		return nil, ucErrors.ErrNotReady
	}
	s.state = entities.SessionStateExporting
	if req.VideoTitle == "" {
		req.VideoTitle = s.title
	}
	if req.VideoID == "" {
		req.VideoID = s.videoID
	}
	doc := export.Document{
		HTML:    s.currentLocked(),
		Title:   req.VideoTitle,
		VideoID: req.VideoID,
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = entities.SessionStateReady
		s.mu.Unlock()
	}()

	exporter, err := exporters.Get(req.Format)
	if err != nil {
		return nil, err
	}

	nodes, parseErr := markup.Parse(doc.HTML)
	doc.Nodes = nodes

	artifact, err := exporter.Export(doc)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Artifact: artifact, Warning: parseErr}, nil
}
