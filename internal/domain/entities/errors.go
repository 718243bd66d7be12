package entities

import "errors"

// Domain errors
var (
	// Video errors
	ErrInvalidVideoID = errors.New("invalid video ID")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Export errors
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
