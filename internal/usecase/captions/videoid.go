package captions

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// pathPrefixes are the youtube.com paths that carry the id as their next segment
var pathPrefixes = []string{"/embed/", "/shorts/", "/live/", "/v/"}

// IsVideoID reports whether s has the shape of a YouTube video id
func IsVideoID(s string) bool {
	return videoIDPattern.MatchString(s)
}

// ExtractVideoID accepts a bare id or any common YouTube URL form
// (watch?v=, youtu.be/, /embed/, /shorts/, /live/) and returns the id.
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if IsVideoID(input) {
		return input, nil
	}

	raw := input
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", entities.ErrInvalidVideoID, input)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	var candidate string
	switch host {
	case "youtu.be":
		candidate = strings.Split(strings.TrimPrefix(u.Path, "/"), "/")[0]
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		for _, prefix := range pathPrefixes {
			if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
				candidate = strings.Split(rest, "/")[0]
				break
			}
		}
	}

	if !IsVideoID(candidate) {
		return "", fmt.Errorf("%w: %q", entities.ErrInvalidVideoID, input)
	}
	return candidate, nil
}
