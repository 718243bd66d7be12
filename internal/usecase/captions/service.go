package captions

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

const (
	DefaultTimedTextURL = "https://www.youtube.com/api/timedtext"

	maxTimedTextBytes = 16 << 20
)

// Lister finds the caption tracks published for a video
type Lister interface {
	ListTracks(ctx context.Context, videoID string) (*entities.TrackList, error)
}

// CaptionService proxies YouTube caption listing and track downloads
type CaptionService struct {
	lister       Lister
	client       *http.Client
	timedTextURL string
	logger       *zap.Logger
}

// Option customises a CaptionService
type Option func(*CaptionService)

// WithHTTPClient replaces the client used for timedtext downloads
func WithHTTPClient(c *http.Client) Option {
	return func(s *CaptionService) { s.client = c }
}

// WithTimedTextURL points track downloads at another endpoint
func WithTimedTextURL(u string) Option {
	return func(s *CaptionService) { s.timedTextURL = u }
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) Option {
	return func(s *CaptionService) { s.logger = l }
}

// NewCaptionService creates a new caption service
func NewCaptionService(lister Lister, opts ...Option) *CaptionService {
	s := &CaptionService{
		lister:       lister,
		client:       &http.Client{Timeout: 30 * time.Second},
		timedTextURL: DefaultTimedTextURL,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EncodeQuery packs a timedtext query string into the opaque token handed to clients
func EncodeQuery(rawQuery string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(rawQuery))
}

// DecodeQuery reverses EncodeQuery, tolerating padded input
func DecodeQuery(data string) (string, error) {
	data = strings.TrimRight(strings.TrimSpace(data), "=")
	raw, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ucErrors.ErrInvalidQuery, err)
	}
	if _, err := url.ParseQuery(string(raw)); err != nil {
		return "", fmt.Errorf("%w: %v", ucErrors.ErrInvalidQuery, err)
	}
	return string(raw), nil
}

// ListTracks resolves the video reference and lists its caption tracks
func (s *CaptionService) ListTracks(ctx context.Context, video string) (*entities.TrackList, error) {
	videoID, err := ExtractVideoID(video)
	if err != nil {
		return nil, err
	}

	list, err := s.lister.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if list.VideoID == "" {
		list.VideoID = videoID
	}
	return list, nil
}

// FetchTrack downloads one caption track. data is the token from a listed
// track and tlang an optional machine translation target.
func (s *CaptionService) FetchTrack(ctx context.Context, data, tlang string) ([]entities.CaptionLine, error) {
	if strings.TrimSpace(data) == "" {
		return nil, ucErrors.ErrMissingData
	}
	query, err := DecodeQuery(data)
	if err != nil {
		return nil, err
	}

	target := s.timedTextURL + "?" + query
	if tlang != "" {
		target += "&tlang=" + url.QueryEscape(tlang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Language", "en-US")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrYouTubeUnexpected, err)
	}
	defer resp.Body.Close()

	if err := StatusError(resp.StatusCode); err != nil {
		s.logger.Warn("captions.track.status",
			zap.Int("status", resp.StatusCode),
			zap.String("tlang", tlang),
		)
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTimedTextBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrYouTubeUnexpected, err)
	}

	lines, err := ParseTimedText(body)
	if err != nil {
		s.logger.Warn("captions.track.parse_failed", zap.Error(err), zap.Int("bytes", len(body)))
		return nil, ucErrors.ErrTranscriptParse
	}
	return lines, nil
}

// StatusError maps a YouTube response status onto the user facing errors
func StatusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return ucErrors.ErrYouTubeBadRequest
	case code == http.StatusForbidden:
		return ucErrors.ErrYouTubeForbidden
	case code == http.StatusNotFound:
		return ucErrors.ErrVideoNotFound
	default:
		return ucErrors.ErrYouTubeUnexpected
	}
}

// FetchTranscript resolves a request to a track, downloads it and attaches
// the video metadata needed by the exporters.
func (s *CaptionService) FetchTranscript(ctx context.Context, req entities.TranscriptRequest) (*entities.Transcript, error) {
	var videoID string
	if strings.TrimSpace(req.Video) != "" {
		id, err := ExtractVideoID(req.Video)
		if err != nil {
			return nil, err
		}
		videoID = id
	}

	query := req.Query
	title := req.Title
	language := req.Language

	if query == "" {
		if videoID == "" {
			return nil, ucErrors.ErrMissingData
		}
		list, err := s.lister.ListTracks(ctx, videoID)
		if err != nil {
			return nil, err
		}
		track, err := SelectTrack(list.Tracks, req.Language)
		if err != nil {
			return nil, err
		}
		query = track.Query
		language = track.LanguageCode
		if title == "" {
			title = list.Title
		}
	} else {
		if videoID == "" {
			videoID = videoIDFromQuery(query)
		}
		if title == "" && videoID != "" {
			title = s.lookupTitle(ctx, videoID)
		}
	}

	lines, err := s.FetchTrack(ctx, query, req.TranslateTo)
	if err != nil {
		return nil, err
	}

	if req.TranslateTo != "" {
		language = req.TranslateTo
	}
	if title == "" {
		title = videoID
	}

	return &entities.Transcript{
		VideoID:  videoID,
		Title:    title,
		Language: language,
		Lines:    lines,
	}, nil
}

// lookupTitle is best effort, a missing title only affects export headers
func (s *CaptionService) lookupTitle(ctx context.Context, videoID string) string {
	list, err := s.lister.ListTracks(ctx, videoID)
	if err != nil {
		s.logger.Debug("captions.title.lookup_failed", zap.String("video_id", videoID), zap.Error(err))
		return ""
	}
	return list.Title
}

func videoIDFromQuery(data string) string {
	raw, err := DecodeQuery(data)
	if err != nil {
		return ""
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return ""
	}
	if v := values.Get("v"); IsVideoID(v) {
		return v
	}
	return ""
}

// SelectTrack picks the track for lang, preferring authored captions over
// speech recognition. An empty lang takes the first authored track.
func SelectTrack(tracks []entities.CaptionTrack, lang string) (*entities.CaptionTrack, error) {
	if len(tracks) == 0 {
		return nil, ucErrors.ErrNoCaptionTracks
	}

	var fallback *entities.CaptionTrack
	for i := range tracks {
		t := &tracks[i]
		if lang != "" && !strings.EqualFold(t.LanguageCode, lang) {
			continue
		}
		if t.Kind != entities.TrackKindASR {
			return t, nil
		}
		if fallback == nil {
			fallback = t
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("%w: %s", ucErrors.ErrTrackNotAvailable, lang)
}
