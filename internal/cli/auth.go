package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/transcrypt/internal/infrastructure/external/oauth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Obtain a Google refresh token for the YouTube Data API",
	Long: `Run the OAuth consent flow with a local callback server and print the
refresh token to put in GOOGLE_REFRESH_TOKEN.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET. The redirect URL
(GOOGLE_REDIRECT_URL) must point at this machine and be registered
for the OAuth client.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().
		Duration("timeout", 5*time.Minute, "How long to wait for the browser callback")
}

// callbackResult is what the browser redirect delivered
type callbackResult struct {
	code string
	err  error
}

func runAuth(cmd *cobra.Command, args []string) error {
	yt := cfg.YouTube
	if yt.ClientID == "" || yt.ClientSecret == "" {
		return errors.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	redirect, err := url.Parse(yt.RedirectURL)
	if err != nil {
		return fmt.Errorf("invalid GOOGLE_REDIRECT_URL: %w", err)
	}

	provider := oauth.NewGoogleProvider(yt.ClientID, yt.ClientSecret, yt.RedirectURL)
	states := oauth.NewStateManager()
	state, err := states.GenerateState()
	if err != nil {
		return fmt.Errorf("failed to generate state: %w", err)
	}

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", redirect.Host, err)
	}

	results := make(chan callbackResult, 1)
	mux := http.NewServeMux()
	mux.Handle(redirect.Path, callbackHandler(states, results))
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() { _ = server.Serve(listener) }()
	defer server.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser and grant access:\n\n  %s\n\n", provider.GetAuthURL(state))

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var result callbackResult
	select {
	case result = <-results:
	case <-ctx.Done():
		return fmt.Errorf("no callback received: %w", ctx.Err())
	}
	if result.err != nil {
		return result.err
	}

	token, err := provider.ExchangeCode(ctx, result.code)
	if err != nil {
		return err
	}
	if token.RefreshToken == "" {
		return errors.New("google returned no refresh token, revoke the app access and try again")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "GOOGLE_REFRESH_TOKEN=%s\n", token.RefreshToken)
	return nil
}

// callbackHandler accepts one redirect carrying a valid state and reports its code
func callbackHandler(states *oauth.StateManager, results chan<- callbackResult) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var res callbackResult
		switch {
		case !states.ValidateState(q.Get("state")):
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		case q.Get("error") != "":
			res.err = fmt.Errorf("authorization denied: %s", q.Get("error"))
		case q.Get("code") == "":
			res.err = errors.New("callback carried no authorization code")
		default:
			res.code = q.Get("code")
		}

		if res.err != nil {
			http.Error(w, res.err.Error(), http.StatusBadRequest)
		} else {
			fmt.Fprintln(w, "Authorization complete. You can close this window.")
		}

		select {
		case results <- res:
		default:
		}
	})
}
