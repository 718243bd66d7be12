package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the raw cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithRaw attaches the underlying cause
func (e AppError) WithRaw(err error) AppError {
	e.Raw = err
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Caption Errors
func ErrMissingParameter(name string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  fmt.Sprintf("Missing parameter '%s'.", name),
	}.WithDetail("parameter", name)
}

func ErrYouTubeBadRequest() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "A bad request was made to YouTube.",
	}
}

func ErrYouTubeAccessDenied() AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_PERMISSION_DENIED,
		Message:  "Access to YouTube was denied.",
	}
}

func ErrVideoNotFound() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  "The YouTube video doesn't exist.",
	}
}

func ErrCaptionFetchFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CAPTION_FETCH_FAILED,
		Message:  "An unknown error occurred while fetching the transcript.",
	}
}

func ErrCaptionParseFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CAPTION_PARSE_FAILED,
		Message:  "We were unable to parse the transcript.",
	}
}

func ErrCaptionsUnavailable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_CAPTIONS_UNAVAILABLE,
		Message:  "This video has no captions available.",
	}
}

// Transcript Session Errors
func ErrSessionNotFound(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_SESSION_NOT_FOUND,
		Message:  "Transcript session not found",
	}.WithDetail("session_id", sessionID)
}

func ErrSessionNotReady(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_SESSION_NOT_READY,
		Message:  "Transcript is not ready",
	}.WithDetail("session_id", sessionID)
}

func ErrSessionLoadFailed(message string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_SESSION_LOAD_FAILED,
		Message:  message,
	}
}

// Export Errors
func ErrExportInProgress(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_EXPORT_IN_PROGRESS,
		Message:  "An export is already in progress",
	}.WithDetail("session_id", sessionID)
}

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export transcript",
	}.WithDetail("format", format)
}

func ErrExportUnsupported(format string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_EXPORT_UNSUPPORTED,
		Message:  "Unsupported export format",
	}.WithDetail("format", format)
}

// Payment Errors
func ErrPaymentFailed(httpCode int, message string, err error) AppError {
	if httpCode == 0 {
		httpCode = http.StatusInternalServerError
	}
	return AppError{
		Raw:      err,
		HTTPCode: httpCode,
		Code:     ErrorCode_PAYMENT_FAILED,
		Message:  message,
	}
}

func ErrPaymentsDisabled() AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_PAYMENT_FAILED,
		Message:  "Payments are not configured",
	}
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

