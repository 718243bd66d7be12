package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/errors"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
)

func TestToAppError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode errors.ErrorCode
		expectedHTTP int
	}{
		{"session missing", entities.ErrSessionNotFound, errors.ErrorCode_SESSION_NOT_FOUND, http.StatusNotFound},
		{"session expired", ucErrors.ErrSessionExpired, errors.ErrorCode_SESSION_NOT_FOUND, http.StatusNotFound},
		{"not ready", ucErrors.ErrNotReady, errors.ErrorCode_SESSION_NOT_READY, http.StatusConflict},
		{"export in progress", ucErrors.ErrExportInProgress, errors.ErrorCode_EXPORT_IN_PROGRESS, http.StatusConflict},
		{"wrapped format", fmt.Errorf("%w: %q", entities.ErrUnsupportedFormat, "odt"), errors.ErrorCode_EXPORT_UNSUPPORTED, http.StatusBadRequest},
		{"no tracks", ucErrors.ErrNoCaptionTracks, errors.ErrorCode_CAPTIONS_UNAVAILABLE, http.StatusNotFound},
		{"payments off", ucErrors.ErrPaymentDisabled, errors.ErrorCode_PAYMENT_FAILED, http.StatusServiceUnavailable},
		{"unknown", stdErrors.New("boom"), errors.ErrorCode_INTERNAL, http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?format=odt", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues("abc")

			var appErr errors.AppError
			require.True(t, stdErrors.As(toAppError(c, tt.err), &appErr))
			assert.Equal(t, tt.expectedCode, appErr.Code)
			assert.Equal(t, tt.expectedHTTP, appErr.HTTPCode)
		})
	}
}

func TestWarningCount(t *testing.T) {
	assert.Equal(t, 0, warningCount(nil))
	assert.Equal(t, 1, warningCount(stdErrors.New("one")))
	assert.Equal(t, 2, warningCount(stdErrors.Join(stdErrors.New("a"), stdErrors.New("b"))))
}
