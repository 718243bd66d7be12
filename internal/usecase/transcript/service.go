package transcript

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/domain/repositories"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

const (
	DefaultSessionTTL = 2 * time.Hour
	exportLockTTL     = 2 * time.Minute
)

// CaptionFetcher downloads the caption track described by a request
type CaptionFetcher interface {
	FetchTranscript(ctx context.Context, req entities.TranscriptRequest) (*entities.Transcript, error)
}

// TranscriptService keeps transcript sessions in a store and drives them
// through loading, toggling and exporting.
type TranscriptService struct {
	store     repositories.SessionStore
	captions  CaptionFetcher
	exporters ExporterResolver
	ttl       time.Duration
	logger    *zap.Logger
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(
	store repositories.SessionStore,
	captions CaptionFetcher,
	exporters ExporterResolver,
	ttl time.Duration,
	logger *zap.Logger,
) *TranscriptService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptService{
		store:     store,
		captions:  captions,
		exporters: exporters,
		ttl:       ttl,
		logger:    logger,
	}
}

// Create opens a session and loads its transcript. A failed load still
// returns the session, now in the Failed state, together with the error.
func (s *TranscriptService) Create(ctx context.Context, req entities.TranscriptRequest) (*Session, error) {
	session := NewSession(uuid.NewString())
	session.expiresAt = session.createdAt.Add(s.ttl)

	loadErr := session.Load(ctx, LoaderFunc(func(ctx context.Context) (*entities.Transcript, error) {
		return s.captions.FetchTranscript(ctx, req)
	}))

	if err := s.store.Save(ctx, session.Snapshot(), s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if loadErr != nil {
		s.logger.Warn("transcript.load.failed",
			zap.String("session_id", session.ID()),
			zap.String("video", req.Video),
			zap.Error(loadErr),
		)
		return session, loadErr
	}

	s.logger.Info("transcript.load.ready",
		zap.String("session_id", session.ID()),
		zap.String("video_id", session.VideoID()),
	)
	return session, nil
}

// Get retrieves a session by ID
func (s *TranscriptService) Get(ctx context.Context, id string) (*Session, error) {
	snap, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if snap.IsExpired() {
		return nil, ucErrors.ErrSessionExpired
	}
	return Restore(snap), nil
}

// SetTimestamps switches the displayed variant and persists the choice
func (s *TranscriptService) SetTimestamps(ctx context.Context, id string, on bool) (*Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := session.SetTimestamps(on); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session.Snapshot(), s.remaining(session)); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Export renders the current variant of a session in the requested format.
// A second export of the same session while one is running is rejected.
func (s *TranscriptService) Export(ctx context.Context, id string, req entities.ExportRequest) (*ExportResult, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	token, acquired, err := s.store.AcquireExport(ctx, id, exportLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock session for export: %w", err)
	}
	if !acquired {
		return nil, ucErrors.ErrExportInProgress
	}
	defer func() {
		if err := s.store.ReleaseExport(context.WithoutCancel(ctx), id, token); err != nil {
			s.logger.Error("transcript.export.release_failed", zap.String("session_id", id), zap.Error(err))
		}
	}()

	started := time.Now()
	result, err := session.Export(s.exporters, req)
	if err != nil {
		s.logger.Error("transcript.export.failed",
			zap.String("session_id", id),
			zap.String("format", string(req.Format)),
			zap.Error(err),
		)
		return nil, err
	}

	if result.Warning != nil {
		s.logger.Warn("transcript.export.malformed_markup",
			zap.String("session_id", id),
			zap.Error(result.Warning),
		)
	}
	s.logger.Info("transcript.export.done",
		zap.String("session_id", id),
		zap.String("format", string(req.Format)),
		zap.String("filename", result.Artifact.Filename),
		zap.Int64("bytes", result.Artifact.Size()),
		zap.Duration("took", time.Since(started)),
	)
	return result, nil
}

// Delete discards a session
func (s *TranscriptService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// remaining keeps the original expiry when a session is saved again
func (s *TranscriptService) remaining(session *Session) time.Duration {
	if session.expiresAt.IsZero() {
		return s.ttl
	}
	if left := time.Until(session.expiresAt); left > 0 {
		return left
	}
	return time.Second
}
