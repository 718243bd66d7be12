package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

const DefaultDataAPIURL = "https://www.googleapis.com/youtube/v3"

// DataAPILister lists caption tracks through the YouTube Data API v3.
// The client is expected to attach OAuth credentials; the API key is sent as well when set.
type DataAPILister struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewDataAPILister creates a Data API lister. baseURL defaults to DefaultDataAPIURL.
func NewDataAPILister(client *http.Client, baseURL, apiKey string, logger *zap.Logger) *DataAPILister {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultDataAPIURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataAPILister{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
}

type captionListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			VideoID   string `json:"videoId"`
			Language  string `json:"language"`
			Name      string `json:"name"`
			TrackKind string `json:"trackKind"`
		} `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// ListTracks lists the captions of videoID and looks up the video title
func (l *DataAPILister) ListTracks(ctx context.Context, videoID string) (*entities.TrackList, error) {
	var videos videoListResponse
	if err := l.get(ctx, "videos", url.Values{"id": {videoID}, "part": {"snippet"}}, &videos); err != nil {
		return nil, err
	}
	if len(videos.Items) == 0 {
		return nil, ucErrors.ErrVideoNotFound
	}

	var caps captionListResponse
	if err := l.get(ctx, "captions", url.Values{"videoId": {videoID}, "part": {"snippet"}}, &caps); err != nil {
		return nil, err
	}

	list := &entities.TrackList{
		VideoID: videoID,
		Title:   videos.Items[0].Snippet.Title,
	}
	for _, item := range caps.Items {
		s := item.Snippet
		q := url.Values{"v": {videoID}, "lang": {s.Language}}
		kind := entities.TrackKindStandard
		if strings.EqualFold(s.TrackKind, "asr") {
			kind = entities.TrackKindASR
			q.Set("kind", "asr")
		}
		if s.Name != "" {
			q.Set("name", s.Name)
		}
		name := s.Name
		if name == "" {
			name = s.Language
		}
		list.Tracks = append(list.Tracks, entities.CaptionTrack{
			LanguageCode: s.Language,
			Name:         name,
			Kind:         kind,
			// The Data API does not expose translatability, timedtext accepts tlang for any track
			IsTranslatable: true,
			Query:          captions.EncodeQuery(q.Encode()),
		})
	}

	l.logger.Debug("youtube.dataapi.tracks",
		zap.String("video_id", videoID),
		zap.Int("count", len(list.Tracks)),
	)
	return list, nil
}

func (l *DataAPILister) get(ctx context.Context, resource string, params url.Values, out any) error {
	if l.apiKey != "" {
		params.Set("key", l.apiKey)
	}
	endpoint := l.baseURL + "/" + resource + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ucErrors.ErrYouTubeUnexpected, err)
	}
	defer resp.Body.Close()

	if err := captions.StatusError(resp.StatusCode); err != nil {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		l.logger.Warn("youtube.dataapi.error",
			zap.String("resource", resource),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}
	return nil
}
