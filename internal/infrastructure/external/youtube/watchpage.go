package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

const (
	DefaultWatchURL = "https://www.youtube.com/watch"

	playerResponseMarker = "ytInitialPlayerResponse = "
	maxWatchPageBytes    = 8 << 20
)

var (
	consentFormRegex  = regexp.MustCompile(`action="https://consent\.youtube\.com/s`)
	consentValueRegex = regexp.MustCompile(`name="v" value="(.*?)"`)
)

// WatchPageLister reads caption tracks from the player response embedded in a watch page
type WatchPageLister struct {
	client   *http.Client
	watchURL string
	logger   *zap.Logger
}

// NewWatchPageLister creates a lister. watchURL defaults to DefaultWatchURL.
func NewWatchPageLister(client *http.Client, watchURL string, logger *zap.Logger) *WatchPageLister {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if watchURL == "" {
		watchURL = DefaultWatchURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WatchPageLister{client: client, watchURL: watchURL, logger: logger}
}

type textRuns struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t textRuns) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		Renderer struct {
			CaptionTracks []struct {
				BaseURL        string   `json:"baseUrl"`
				Name           textRuns `json:"name"`
				LanguageCode   string   `json:"languageCode"`
				Kind           string   `json:"kind"`
				IsTranslatable bool     `json:"isTranslatable"`
			} `json:"captionTracks"`
			TranslationLanguages []struct {
				LanguageCode string   `json:"languageCode"`
				LanguageName textRuns `json:"languageName"`
			} `json:"translationLanguages"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails struct {
		VideoID string `json:"videoId"`
		Title   string `json:"title"`
	} `json:"videoDetails"`
}

// ListTracks fetches the watch page of videoID and lists its caption tracks
func (l *WatchPageLister) ListTracks(ctx context.Context, videoID string) (*entities.TrackList, error) {
	body, err := l.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	raw, err := extractPlayerResponse(body)
	if err != nil {
		return nil, err
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return nil, fmt.Errorf("failed to decode player response: %w", err)
	}

	if player.PlayabilityStatus.Status == "ERROR" {
		l.logger.Info("youtube.watch.unplayable",
			zap.String("video_id", videoID),
			zap.String("reason", player.PlayabilityStatus.Reason),
		)
		return nil, ucErrors.ErrVideoNotFound
	}

	list := &entities.TrackList{
		VideoID: videoID,
		Title:   player.VideoDetails.Title,
	}
	if list.Title == "" {
		list.Title = pageTitle(body)
	}

	renderer := player.Captions.Renderer
	for _, t := range renderer.CaptionTracks {
		u, err := url.Parse(t.BaseURL)
		if err != nil {
			l.logger.Warn("youtube.watch.bad_track_url", zap.String("video_id", videoID), zap.Error(err))
			continue
		}
		kind := entities.TrackKindStandard
		if t.Kind == "asr" {
			kind = entities.TrackKindASR
		}
		list.Tracks = append(list.Tracks, entities.CaptionTrack{
			LanguageCode:   t.LanguageCode,
			Name:           t.Name.String(),
			Kind:           kind,
			IsTranslatable: t.IsTranslatable,
			Query:          captions.EncodeQuery(u.RawQuery),
		})
	}
	for _, lang := range renderer.TranslationLanguages {
		list.TranslationLanguages = append(list.TranslationLanguages, entities.Language{
			Code: lang.LanguageCode,
			Name: lang.LanguageName.String(),
		})
	}

	return list, nil
}

func (l *WatchPageLister) fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	pageURL := l.watchURL + "?v=" + url.QueryEscape(videoID)

	body, err := l.fetch(ctx, pageURL, nil)
	if err != nil {
		return nil, err
	}

	if consentRequired(body) {
		l.logger.Debug("youtube.watch.consent_required", zap.String("video_id", videoID))
		cookie, err := consentCookie(body)
		if err != nil {
			return nil, err
		}
		body, err = l.fetch(ctx, pageURL, cookie)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch video page after setting consent: %w", err)
		}
	}
	return body, nil
}

func (l *WatchPageLister) fetch(ctx context.Context, pageURL string, cookie *http.Cookie) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Language", "en-US")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucErrors.ErrYouTubeUnexpected, err)
	}
	defer resp.Body.Close()

	if err := captions.StatusError(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func consentRequired(body []byte) bool {
	return consentFormRegex.Match(body)
}

func consentCookie(body []byte) (*http.Cookie, error) {
	match := consentValueRegex.FindSubmatch(body)
	if len(match) < 2 {
		return nil, errors.New("failed to find consent value in HTML")
	}
	return &http.Cookie{
		Name:   "CONSENT",
		Value:  "YES+" + string(match[1]),
		Domain: ".youtube.com",
	}, nil
}

// extractPlayerResponse cuts the JSON object assigned to ytInitialPlayerResponse
// out of the page by matching braces, skipping over string literals.
func extractPlayerResponse(body []byte) ([]byte, error) {
	idx := bytes.Index(body, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, ucErrors.ErrPlayerResponse
	}
	rest := body[idx+len(playerResponseMarker):]
	start := bytes.IndexByte(rest, '{')
	if start < 0 {
		return nil, ucErrors.ErrPlayerResponse
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(rest); i++ {
		c := rest[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return rest[start : i+1], nil
			}
		}
	}
	return nil, ucErrors.ErrPlayerResponse
}

// pageTitle falls back to the document <title>, minus the site suffix
func pageTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	return strings.TrimSpace(strings.TrimSuffix(title, "- YouTube"))
}
