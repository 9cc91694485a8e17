// Package googleauth builds authenticated clients for Google Workspace APIs
// from an OAuth2 refresh token.
//
// The refresh token is exchanged for short-lived access tokens on demand and
// the resulting token is reused until it expires. The same Client backs the
// Drive, Slides and Gmail services, so all of them act as the account that
// granted the refresh token.
package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// Scopes granted to the refresh token.
var Scopes = []string{
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/presentations",
	"https://www.googleapis.com/auth/gmail.send",
}

var (
	ErrInvalidConfig = errors.New("googleauth.errors.invalid_config")
	ErrTokenRefresh  = errors.New("googleauth.errors.token_refresh_failed")
)

// Config holds OAuth2 client credentials and the long-lived refresh token.
type Config struct {
	ClientID     string        `env:"GOOGLE_CLIENT_ID,required"`
	ClientSecret string        `env:"GOOGLE_CLIENT_SECRET,required"`
	RefreshToken string        `env:"GOOGLE_REFRESH_TOKEN,required"`
	RedirectURL  string        `env:"GOOGLE_REDIRECT_URL" envDefault:"https://developers.google.com/oauthplayground"`
	TokenURL     string        `env:"GOOGLE_TOKEN_URL"`
	HTTPTimeout  time.Duration `env:"GOOGLE_HTTP_TIMEOUT" envDefault:"2m"`
}

func (c Config) Validate() error {
	switch {
	case c.ClientID == "":
		return fmt.Errorf("%w: GOOGLE_CLIENT_ID is required", ErrInvalidConfig)
	case c.ClientSecret == "":
		return fmt.Errorf("%w: GOOGLE_CLIENT_SECRET is required", ErrInvalidConfig)
	case c.RefreshToken == "":
		return fmt.Errorf("%w: GOOGLE_REFRESH_TOKEN is required", ErrInvalidConfig)
	}
	return nil
}

// Client is an OAuth2-authenticated HTTP client for Google APIs.
// It is safe for concurrent use.
type Client struct {
	tokens *tokenCache
	http   *http.Client
}

// New validates cfg and returns a Client.
//
// Token refreshes run on the context of the API call that needs the token,
// so a call deadline also bounds the refresh. Refresh requests use the
// *http.Client stored in ctx under oauth2.HTTPClient, or a client limited to
// cfg.HTTPTimeout when there is none.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint := google.Endpoint
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	refreshClient, ok := ctx.Value(oauth2.HTTPClient).(*http.Client)
	if !ok || refreshClient == nil {
		refreshClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	tokens := newTokenCache(&oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       Scopes,
		Endpoint:     endpoint,
	}, cfg.RefreshToken, refreshClient)

	return &Client{
		tokens: tokens,
		http: &http.Client{
			Transport: &transport{tokens: tokens, base: http.DefaultTransport},
			Timeout:   cfg.HTTPTimeout,
		},
	}, nil
}

// HTTPClient returns the authenticated client.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Options returns client options for google.golang.org/api service
// constructors.
func (c *Client) Options() []option.ClientOption {
	return []option.ClientOption{option.WithHTTPClient(c.http)}
}

// Ping obtains an access token, refreshing it if needed. It reports whether
// the credentials are currently usable and fits httpserver health checks.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.tokens.Token(ctx); err != nil {
		return errors.Join(ErrTokenRefresh, err)
	}
	return nil
}
