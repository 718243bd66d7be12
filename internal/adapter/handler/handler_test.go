package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/internal/infrastructure/cache"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
	"github.com/johnquangdev/transcrypt/internal/usecase/export"
	"github.com/johnquangdev/transcrypt/internal/usecase/payment"
	"github.com/johnquangdev/transcrypt/internal/usecase/transcript"
	pkgvalidator "github.com/johnquangdev/transcrypt/pkg/validator"
)

type fakeCaptions struct {
	list  *entities.TrackList
	lines []entities.CaptionLine
	err   error
	data  string
	tlang string
}

func (f *fakeCaptions) ListTracks(_ context.Context, video string) (*entities.TrackList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeCaptions) FetchTrack(_ context.Context, data, tlang string) ([]entities.CaptionLine, error) {
	f.data, f.tlang = data, tlang
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

// FetchTranscript lets the fake back a TranscriptService too
func (f *fakeCaptions) FetchTranscript(_ context.Context, req entities.TranscriptRequest) (*entities.Transcript, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entities.Transcript{
		VideoID: "dQw4w9WgXcQ",
		Title:   "Never Gonna Give You Up",
		Lines:   f.lines,
	}, nil
}

type fakeArtifacts struct {
	key      string
	artifact *entities.Artifact
}

func (f *fakeArtifacts) Publish(_ context.Context, key string, artifact *entities.Artifact) (string, error) {
	f.key, f.artifact = key, artifact
	return "https://files.example.com/" + key + "?sig=1", nil
}

type fakeCreator struct {
	err error
}

func (f *fakeCreator) CreatePaymentIntent(_ context.Context, amount int64, currency string) (*entities.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entities.PaymentIntent{ID: "pi_1", ClientSecret: "secret", Amount: amount, Currency: currency, Status: "requires_payment_method"}, nil
}

type testServer struct {
	e         *echo.Echo
	captions  *fakeCaptions
	artifacts *fakeArtifacts
	creator   *fakeCreator
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	captions := &fakeCaptions{
		list: &entities.TrackList{
			VideoID: "dQw4w9WgXcQ",
			Title:   "Never Gonna Give You Up",
			Tracks: []entities.CaptionTrack{
				{LanguageCode: "en", Name: "English", Kind: entities.TrackKindStandard, IsTranslatable: true, Query: "dj1kUXc0"},
			},
		},
		lines: []entities.CaptionLine{
			{StartSeconds: 0, Duration: 2, Text: "<b>We're</b> no strangers"},
			{StartSeconds: 65, Duration: 2, Text: "to love"},
		},
	}
	store := cache.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	logger := zap.NewNop()
	transcripts := transcript.NewTranscriptService(store, captions, export.NewDefaultRegistry(export.Site{}), time.Hour, logger)
	artifacts := &fakeArtifacts{}
	creator := &fakeCreator{}

	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(nil,
		NewCaptionHandler(captions, logger),
		NewTranscriptHandler(transcripts, artifacts, logger),
		NewPaymentHandler(payment.NewPaymentService(creator), logger),
	).Setup(e)

	return &testServer{e: e, captions: captions, artifacts: artifacts, creator: creator}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	d, ok := decode(t, rec)["data"].(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	return d
}

func (s *testServer) createTranscript(t *testing.T) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/v1/transcripts", `{"video":"https://youtu.be/dQw4w9WgXcQ"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return data(t, rec)["id"].(string)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestCaption_ListTracks(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/captions?video=https://www.youtube.com/watch?v=dQw4w9WgXcQ", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	d := data(t, rec)
	assert.Equal(t, "Never Gonna Give You Up", d["title"])
	tracks := d["tracks"].([]interface{})
	require.Len(t, tracks, 1)
	assert.Equal(t, "dj1kUXc0", tracks[0].(map[string]interface{})["data"])
}

func TestCaption_ListTracksInvalidVideo(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/v1/captions?video=https://example.com/watch", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaption_FetchTrack(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"missing data", "/v1/captions/track", nil, http.StatusBadRequest, "Missing parameter 'data'."},
		{"bad request", "/v1/captions/track?data=abc", ucErrors.ErrYouTubeBadRequest, http.StatusBadRequest, "A bad request was made to YouTube."},
		{"forbidden", "/v1/captions/track?data=abc", ucErrors.ErrYouTubeForbidden, http.StatusForbidden, "Access to YouTube was denied."},
		{"not found", "/v1/captions/track?data=abc", ucErrors.ErrVideoNotFound, http.StatusNotFound, "The YouTube video doesn't exist."},
		{"parse failure", "/v1/captions/track?data=abc", ucErrors.ErrTranscriptParse, http.StatusInternalServerError, "We were unable to parse the transcript."},
		{"unexpected", "/v1/captions/track?data=abc", ucErrors.ErrYouTubeUnexpected, http.StatusInternalServerError, "An unknown error occurred while fetching the transcript."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.captions.err = tt.err

			rec := s.do(t, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedMsg, decode(t, rec)["message"])
		})
	}
}

func TestCaption_FetchTrackSuccess(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/captions/track?data=abc&tlang=fr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", s.captions.data)
	assert.Equal(t, "fr", s.captions.tlang)
	assert.Equal(t, float64(2), data(t, rec)["count"])
}

func TestTranscript_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	id := s.createTranscript(t)

	rec := s.do(t, http.MethodGet, "/v1/transcripts/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	d := data(t, rec)
	assert.Equal(t, "ready", d["state"])
	assert.Equal(t, false, d["timestamps"])
	assert.Equal(t, "<p><b>We're</b> no strangers</p><p>to love</p>", d["html"])

	rec = s.do(t, http.MethodPut, "/v1/transcripts/"+id+"/timestamps", `{"enabled":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	d = data(t, rec)
	assert.Equal(t, true, d["timestamps"])
	assert.Equal(t, "<p><b>0:00: </b><b>We're</b> no strangers</p><p><b>1:05: </b>to love</p>", d["html"])

	rec = s.do(t, http.MethodDelete, "/v1/transcripts/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/transcripts/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTranscript_CreateValidation(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodPost, "/v1/transcripts", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscript_CreateLoadFailure(t *testing.T) {
	s := newTestServer(t)
	s.captions.err = ucErrors.ErrVideoNotFound

	rec := s.do(t, http.MethodPost, "/v1/transcripts", `{"video":"dQw4w9WgXcQ"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "The YouTube video doesn't exist.", body["message"])
	assert.NotEmpty(t, body["details"].(map[string]interface{})["session_id"])
}

func TestTranscript_SetTimestampsRequiresFlag(t *testing.T) {
	s := newTestServer(t)
	id := s.createTranscript(t)

	rec := s.do(t, http.MethodPut, "/v1/transcripts/"+id+"/timestamps", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscript_ExportDownload(t *testing.T) {
	s := newTestServer(t)
	id := s.createTranscript(t)

	rec := s.do(t, http.MethodGet, "/v1/transcripts/"+id+"/export?format=txt", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, export.MIMEText, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=transcrypt-Never-Gonna-Giv.txt", rec.Header().Get(echo.HeaderContentDisposition))
	assert.Empty(t, rec.Header().Get(HeaderMarkupWarnings))
	assert.Contains(t, rec.Body.String(), "We're no strangers\nto love")
}

func TestTranscript_ExportWithTitle(t *testing.T) {
	s := newTestServer(t)
	id := s.createTranscript(t)

	rec := s.do(t, http.MethodGet, "/v1/transcripts/"+id+"/export?format=txt&title=My%20Notes", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "attachment; filename=transcrypt-My-Notes.txt", rec.Header().Get(echo.HeaderContentDisposition))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Transcript for:\nMy Notes\n"), rec.Body.String())
}

func TestTranscript_ExportLink(t *testing.T) {
	s := newTestServer(t)
	id := s.createTranscript(t)

	rec := s.do(t, http.MethodGet, "/v1/transcripts/"+id+"/export?format=markdown&delivery=link", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	d := data(t, rec)
	assert.Equal(t, "transcrypt-Never-Gonna-Giv.md", d["filename"])
	assert.True(t, strings.HasPrefix(s.artifacts.key, "exports/"+id+"/"))
	assert.Equal(t, "https://files.example.com/"+s.artifacts.key+"?sig=1", d["url"])
}

func TestTranscript_ExportErrors(t *testing.T) {
	s := newTestServer(t)
	id := s.createTranscript(t)

	rec := s.do(t, http.MethodGet, "/v1/transcripts/"+id+"/export?format=odt", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/transcripts/"+id+"/export", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/transcripts/"+id+"/export?format=pdf&delivery=email", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/transcripts/unknown/export?format=pdf", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayment_Options(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/payments/options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	d := data(t, rec)
	assert.Equal(t, "aud", d["currency"])
	assert.Len(t, d["options"], 3)
}

func TestPayment_CreateIntent(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/payments/intents", `{"amount":500}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	d := data(t, rec)
	assert.Equal(t, "secret", d["client_secret"])
	assert.Equal(t, "aud", d["currency"])

	rec = s.do(t, http.MethodPost, "/v1/payments/intents", `{"amount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayment_ProcessorErrorStatus(t *testing.T) {
	s := newTestServer(t)
	s.creator.err = &payment.ProcessorError{StatusCode: http.StatusPaymentRequired, Message: "Your card was declined."}

	rec := s.do(t, http.MethodPost, "/v1/payments/intents", `{"amount":500}`)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "Your card was declined.", decode(t, rec)["message"])
}

func TestTranscript_RejectsMalformedID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/transcripts/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Transcript session not found", decode(t, rec)["message"])
}
