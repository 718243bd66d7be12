package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type videoRequest struct {
	ID    string `validate:"omitempty,youtube_id"`
	Video string `validate:"omitempty,youtube_video"`
}

func TestCustomValidator(t *testing.T) {
	cv := New()

	tests := []struct {
		name    string
		req     videoRequest
		wantErr bool
	}{
		{"valid id", videoRequest{ID: "dQw4w9WgXcQ"}, false},
		{"short id", videoRequest{ID: "abc"}, true},
		{"watch url", videoRequest{Video: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}, false},
		{"short url", videoRequest{Video: "https://youtu.be/dQw4w9WgXcQ"}, false},
		{"not youtube", videoRequest{Video: "https://example.com/watch?v=x"}, true},
		{"empty", videoRequest{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
