package youtube

import (
	"context"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/johnquangdev/transcrypt/internal/infrastructure/external/oauth"
	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
	"github.com/johnquangdev/transcrypt/pkg/config"
)

// NewLister builds the caption lister selected by CAPTIONS_SOURCE.
// The Data API lister authorizes with the configured refresh token when one is set.
func NewLister(ctx context.Context, cfg *config.Config, client *http.Client, logger *zap.Logger) captions.Lister {
	yt := cfg.YouTube
	if yt.CaptionsSource != config.CaptionsSourceDataAPI {
		return NewWatchPageLister(client, yt.WatchURL, logger)
	}

	apiClient := client
	if cfg.HasGoogleOAuth() {
		provider := oauth.NewGoogleProvider(yt.ClientID, yt.ClientSecret, yt.RedirectURL)
		// The token source and the API calls share the timeout of client
		apiClient = provider.Client(context.WithValue(ctx, oauth2.HTTPClient, client), yt.RefreshToken)
	}
	return NewDataAPILister(apiClient, yt.DataAPIURL, yt.APIKey, logger)
}
