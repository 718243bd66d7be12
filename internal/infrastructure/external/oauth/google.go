package oauth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// YouTubeCaptionScope is the scope captions.list requires
const YouTubeCaptionScope = "https://www.googleapis.com/auth/youtube.force-ssl"

// GoogleProvider handles Google OAuth2 for the YouTube Data API
type GoogleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider creates a new Google OAuth provider
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			YouTubeCaptionScope,
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleProvider{
		config: config,
	}
}

// GetAuthURL returns the OAuth authorization URL
func (g *GoogleProvider) GetAuthURL(state string) string {
	return g.config.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// ExchangeCode exchanges the authorization code for tokens
func (g *GoogleProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// TokenSource returns a source that refreshes access tokens from a stored refresh token
func (g *GoogleProvider) TokenSource(ctx context.Context, refreshToken string) oauth2.TokenSource {
	return g.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
}

// Client returns an HTTP client that authorizes every request with a fresh access token
func (g *GoogleProvider) Client(ctx context.Context, refreshToken string) *http.Client {
	return oauth2.NewClient(ctx, g.TokenSource(ctx, refreshToken))
}
