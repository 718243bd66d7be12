package captions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

type fakeLister struct {
	list  *entities.TrackList
	err   error
	calls int
}

func (f *fakeLister) ListTracks(_ context.Context, videoID string) (*entities.TrackList, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := *f.list
	return &out, nil
}

const sampleTimedText = `<?xml version="1.0" encoding="utf-8" ?><transcript><text start="0" dur="1">Hi</text><text start="65" dur="1">There</text></transcript>`

func newTimedTextServer(t *testing.T, status int, body string, gotQuery *string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotQuery != nil {
			*gotQuery = r.URL.RawQuery
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestEncodeDecodeQuery(t *testing.T) {
	token := EncodeQuery("v=dQw4w9WgXcQ&lang=en")
	assert.NotContains(t, token, "=")

	raw, err := DecodeQuery(token)
	require.NoError(t, err)
	assert.Equal(t, "v=dQw4w9WgXcQ&lang=en", raw)

	_, err = DecodeQuery("***")
	assert.ErrorIs(t, err, ucErrors.ErrInvalidQuery)
}

func TestFetchTrack(t *testing.T) {
	var query string
	ts := newTimedTextServer(t, http.StatusOK, sampleTimedText, &query)
	svc := NewCaptionService(&fakeLister{}, WithTimedTextURL(ts.URL))

	lines, err := svc.FetchTrack(context.Background(), EncodeQuery("v=dQw4w9WgXcQ&lang=en"), "fr")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, "v=dQw4w9WgXcQ&lang=en&tlang=fr", query)
}

func TestFetchTrack_StatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		expected error
		message  string
	}{
		{http.StatusBadRequest, ucErrors.ErrYouTubeBadRequest, "A bad request was made to YouTube."},
		{http.StatusForbidden, ucErrors.ErrYouTubeForbidden, "Access to YouTube was denied."},
		{http.StatusNotFound, ucErrors.ErrVideoNotFound, "The YouTube video doesn't exist."},
		{http.StatusInternalServerError, ucErrors.ErrYouTubeUnexpected, "An unknown error occurred while fetching the transcript."},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			ts := newTimedTextServer(t, tt.status, "", nil)
			svc := NewCaptionService(&fakeLister{}, WithTimedTextURL(ts.URL))

			_, err := svc.FetchTrack(context.Background(), EncodeQuery("v=x"), "")
			assert.ErrorIs(t, err, tt.expected)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestFetchTrack_MissingData(t *testing.T) {
	svc := NewCaptionService(&fakeLister{})
	_, err := svc.FetchTrack(context.Background(), "", "")
	assert.ErrorIs(t, err, ucErrors.ErrMissingData)
}

func TestFetchTrack_Unparsable(t *testing.T) {
	ts := newTimedTextServer(t, http.StatusOK, "<html>captcha</html>", nil)
	svc := NewCaptionService(&fakeLister{}, WithTimedTextURL(ts.URL))

	_, err := svc.FetchTrack(context.Background(), EncodeQuery("v=x"), "")
	assert.ErrorIs(t, err, ucErrors.ErrTranscriptParse)
	assert.EqualError(t, err, "We were unable to parse the transcript.")
}

func TestListTracks(t *testing.T) {
	lister := &fakeLister{list: &entities.TrackList{Title: "Video"}}
	svc := NewCaptionService(lister)

	list, err := svc.ListTracks(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", list.VideoID)

	_, err = svc.ListTracks(context.Background(), "not a video")
	assert.ErrorIs(t, err, entities.ErrInvalidVideoID)
	assert.Equal(t, 1, lister.calls)
}

func TestSelectTrack(t *testing.T) {
	tracks := []entities.CaptionTrack{
		{LanguageCode: "en", Kind: entities.TrackKindASR, Query: "asr-en"},
		{LanguageCode: "en", Kind: entities.TrackKindStandard, Query: "std-en"},
		{LanguageCode: "de", Kind: entities.TrackKindASR, Query: "asr-de"},
	}

	track, err := SelectTrack(tracks, "en")
	require.NoError(t, err)
	assert.Equal(t, "std-en", track.Query)

	track, err = SelectTrack(tracks, "DE")
	require.NoError(t, err)
	assert.Equal(t, "asr-de", track.Query)

	track, err = SelectTrack(tracks, "")
	require.NoError(t, err)
	assert.Equal(t, "std-en", track.Query)

	_, err = SelectTrack(tracks, "ja")
	assert.ErrorIs(t, err, ucErrors.ErrTrackNotAvailable)

	_, err = SelectTrack(nil, "")
	assert.ErrorIs(t, err, ucErrors.ErrNoCaptionTracks)
}

func TestFetchTranscript_ByLanguage(t *testing.T) {
	var query string
	ts := newTimedTextServer(t, http.StatusOK, sampleTimedText, &query)
	lister := &fakeLister{list: &entities.TrackList{
		Title: "Never Gonna",
		Tracks: []entities.CaptionTrack{
			{LanguageCode: "en", Kind: entities.TrackKindStandard, Query: EncodeQuery("v=dQw4w9WgXcQ&lang=en")},
		},
	}}
	svc := NewCaptionService(lister, WithTimedTextURL(ts.URL))

	tr, err := svc.FetchTranscript(context.Background(), entities.TranscriptRequest{
		Video:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", tr.VideoID)
	assert.Equal(t, "Never Gonna", tr.Title)
	assert.Equal(t, "en", tr.Language)
	assert.Len(t, tr.Lines, 2)
	assert.Equal(t, "v=dQw4w9WgXcQ&lang=en", query)
}

func TestFetchTranscript_ByQuery(t *testing.T) {
	ts := newTimedTextServer(t, http.StatusOK, sampleTimedText, nil)
	lister := &fakeLister{err: errors.New("watch page unavailable")}
	svc := NewCaptionService(lister, WithTimedTextURL(ts.URL))

	tr, err := svc.FetchTranscript(context.Background(), entities.TranscriptRequest{
		Query:       EncodeQuery("v=dQw4w9WgXcQ&lang=en"),
		TranslateTo: "es",
	})
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", tr.VideoID)
	// Title lookup failed so the id stands in
	assert.Equal(t, "dQw4w9WgXcQ", tr.Title)
	assert.Equal(t, "es", tr.Language)
	assert.Equal(t, 1, lister.calls)
}

func TestFetchTranscript_ExplicitTitleSkipsLookup(t *testing.T) {
	ts := newTimedTextServer(t, http.StatusOK, sampleTimedText, nil)
	lister := &fakeLister{}
	svc := NewCaptionService(lister, WithTimedTextURL(ts.URL))

	tr, err := svc.FetchTranscript(context.Background(), entities.TranscriptRequest{
		Video: "dQw4w9WgXcQ",
		Query: EncodeQuery("v=dQw4w9WgXcQ&lang=en"),
		Title: "Given",
	})
	require.NoError(t, err)
	assert.Equal(t, "Given", tr.Title)
	assert.Equal(t, 0, lister.calls)
}

func TestFetchTranscript_ListerError(t *testing.T) {
	svc := NewCaptionService(&fakeLister{err: ucErrors.ErrVideoNotFound})
	_, err := svc.FetchTranscript(context.Background(), entities.TranscriptRequest{Video: "dQw4w9WgXcQ"})
	assert.ErrorIs(t, err, ucErrors.ErrVideoNotFound)
}
