package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

func TestDataAPILister_ListTracks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "snippet", r.URL.Query().Get("part"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/videos":
			_, _ = w.Write([]byte(`{"items":[{"snippet":{"title":"Data API Video"}}]}`))
		case "/captions":
			assert.Equal(t, "dQw4w9WgXcQ", r.URL.Query().Get("videoId"))
			_, _ = w.Write([]byte(`{"items":[
				{"id":"c1","snippet":{"videoId":"dQw4w9WgXcQ","language":"en","name":"","trackKind":"standard"}},
				{"id":"c2","snippet":{"videoId":"dQw4w9WgXcQ","language":"en","name":"","trackKind":"asr"}}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	lister := NewDataAPILister(ts.Client(), ts.URL, "test-key", nil)
	list, err := lister.ListTracks(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, "Data API Video", list.Title)
	require.Len(t, list.Tracks, 2)
	assert.Equal(t, entities.TrackKindStandard, list.Tracks[0].Kind)
	assert.Equal(t, "en", list.Tracks[0].Name)
	assert.Equal(t, entities.TrackKindASR, list.Tracks[1].Kind)

	raw, err := captions.DecodeQuery(list.Tracks[1].Query)
	require.NoError(t, err)
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", values.Get("v"))
	assert.Equal(t, "en", values.Get("lang"))
	assert.Equal(t, "asr", values.Get("kind"))
}

func TestDataAPILister_VideoMissing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer ts.Close()

	_, err := NewDataAPILister(ts.Client(), ts.URL, "", nil).ListTracks(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ucErrors.ErrVideoNotFound)
}

func TestDataAPILister_Forbidden(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer ts.Close()

	_, err := NewDataAPILister(ts.Client(), ts.URL, "k", nil).ListTracks(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ucErrors.ErrYouTubeForbidden)
}
