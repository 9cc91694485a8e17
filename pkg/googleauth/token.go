package googleauth

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"
)

// tokenCache holds the current access token and refreshes it on the
// caller's context. Only one refresh runs at a time; other callers wait for
// it or give up when their own context ends.
type tokenCache struct {
	conf   *oauth2.Config
	client *http.Client
	sem    chan struct{}

	refresh string
	token   *oauth2.Token
}

func newTokenCache(conf *oauth2.Config, refreshToken string, client *http.Client) *tokenCache {
	return &tokenCache{
		conf:    conf,
		client:  client,
		sem:     make(chan struct{}, 1),
		refresh: refreshToken,
	}
}

// Token returns a valid access token.
func (c *tokenCache) Token(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-c.sem }()

	if c.token.Valid() {
		return c.token, nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	tok, err := c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.refresh}).Token()
	if err != nil {
		return nil, err
	}
	if tok.RefreshToken != "" {
		c.refresh = tok.RefreshToken
	}
	c.token = tok
	return tok, nil
}

// transport authorizes each request with a token obtained on the request's
// context.
type transport struct {
	tokens *tokenCache
	base   http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.tokens.Token(req.Context())
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, errors.Join(ErrTokenRefresh, err)
	}

	authed := req.Clone(req.Context())
	tok.SetAuthHeader(authed)
	return t.base.RoundTrip(authed)
}
