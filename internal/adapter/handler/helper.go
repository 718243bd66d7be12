package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/errors"
	"github.com/johnquangdev/transcrypt/internal/adapter/dto/common"
	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	ucErrors "github.com/johnquangdev/transcrypt/internal/usecase/errors"
	"github.com/johnquangdev/transcrypt/internal/usecase/payment"
)

// getRequestID reads the request id set by the RequestID middleware, falling back to the request header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func writeSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return writeSuccess(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return writeSuccess(logger, c, http.StatusCreated, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := common.ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := common.ErrorResponse{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// toAppError translates usecase and domain errors into AppErrors.
// The route's :id and format parameters fill in the error details.
func toAppError(c echo.Context, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	var procErr *payment.ProcessorError
	if stdErrors.As(err, &procErr) {
		return errors.ErrPaymentFailed(procErr.StatusCode, procErr.Message, err)
	}

	id := c.Param("id")
	switch {
	// captions
	case stdErrors.Is(err, entities.ErrInvalidVideoID):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, ucErrors.ErrMissingData):
		return errors.ErrMissingParameter("data")
	case stdErrors.Is(err, ucErrors.ErrInvalidQuery):
		return errors.ErrInvalidArgument("Parameter 'data' is not a valid caption track.").WithRaw(err)
	case stdErrors.Is(err, ucErrors.ErrYouTubeBadRequest):
		return errors.ErrYouTubeBadRequest()
	case stdErrors.Is(err, ucErrors.ErrYouTubeForbidden):
		return errors.ErrYouTubeAccessDenied()
	case stdErrors.Is(err, ucErrors.ErrVideoNotFound):
		return errors.ErrVideoNotFound()
	case stdErrors.Is(err, ucErrors.ErrTranscriptParse):
		return errors.ErrCaptionParseFailed(err)
	case stdErrors.Is(err, ucErrors.ErrNoCaptionTracks), stdErrors.Is(err, ucErrors.ErrTrackNotAvailable):
		return errors.ErrCaptionsUnavailable(err)
	case stdErrors.Is(err, ucErrors.ErrYouTubeUnexpected), stdErrors.Is(err, ucErrors.ErrPlayerResponse):
		return errors.ErrCaptionFetchFailed(err)

	// sessions
	case stdErrors.Is(err, entities.ErrSessionNotFound), stdErrors.Is(err, ucErrors.ErrSessionExpired):
		return errors.ErrSessionNotFound(id)
	case stdErrors.Is(err, ucErrors.ErrNotReady):
		return errors.ErrSessionNotReady(id)
	case stdErrors.Is(err, ucErrors.ErrExportInProgress):
		return errors.ErrExportInProgress(id)
	case stdErrors.Is(err, entities.ErrUnsupportedFormat):
		return errors.ErrExportUnsupported(c.QueryParam("format"))

	// payments
	case stdErrors.Is(err, ucErrors.ErrInvalidAmount):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, ucErrors.ErrPaymentDisabled):
		return errors.ErrPaymentsDisabled()
	}

	return errors.ErrInternal(err)
}

// bindAndValidate binds the request into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload().WithRaw(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument("Validation failed").WithRaw(err)
	}
	return nil
}
