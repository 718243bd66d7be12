package errors

import "errors"

// Session errors
var (
	ErrSessionExpired   = errors.New("session expired")
	ErrNotReady         = errors.New("transcript is not ready")
	ErrAlreadyLoaded    = errors.New("transcript already loaded")
	ErrExportInProgress = errors.New("an export is already in progress")
)

// Caption errors
var (
	ErrMissingData       = errors.New("missing caption query data")
	ErrInvalidQuery      = errors.New("caption query is not valid base64url")
	ErrNoCaptionTracks   = errors.New("video has no caption tracks")
	ErrPlayerResponse    = errors.New("player response not found in watch page")
	ErrTrackNotAvailable = errors.New("requested caption language is not available")
)

// Payment errors
var (
	ErrInvalidAmount   = errors.New("donation amount must be positive")
	ErrPaymentDisabled = errors.New("payments are not configured")
)

// YouTube errors. The texts are shown to the user as is.
var (
	ErrYouTubeBadRequest = errors.New("A bad request was made to YouTube.")
	ErrYouTubeForbidden  = errors.New("Access to YouTube was denied.")
	ErrVideoNotFound     = errors.New("The YouTube video doesn't exist.")
	ErrYouTubeUnexpected = errors.New("An unknown error occurred while fetching the transcript.")
	ErrTranscriptParse   = errors.New("We were unable to parse the transcript.")
)
