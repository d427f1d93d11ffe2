package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	oauthspotify "golang.org/x/oauth2/spotify"
)

// maxTokenResponseSize caps how much of the token response is read.
const maxTokenResponseSize = 1 << 20

// DefaultScopes are requested on every authorization.
var DefaultScopes = []string{
	"playlist-modify-private",
	"playlist-modify-public",
	"user-read-email",
}

// Client builds authorize URLs and exchanges authorization codes.
type Client struct {
	cfg        Config
	oauth      *oauth2.Config
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient sets the client used for the token request.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithEndpoint overrides the authorize and token URLs.
func WithEndpoint(e oauth2.Endpoint) Option {
	return func(cl *Client) {
		cl.oauth.Endpoint = e
	}
}

// WithScopes replaces DefaultScopes.
func WithScopes(scopes ...string) Option {
	return func(cl *Client) {
		cl.oauth.Scopes = scopes
	}
}

// New creates a Client for cfg. Without WithHTTPClient the token request
// uses an http.Client limited by cfg.HTTPTimeout.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       DefaultScopes,
			Endpoint:     oauthspotify.Endpoint,
		},
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AuthCodeURL returns the provider consent URL carrying state. The consent
// dialog is always shown, even for users who already approved the app.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("show_dialog", "true"))
}

// Exchange trades an authorization code for tokens and returns the
// provider's JSON body unchanged.
//
// A non-2xx answer yields *RequestError. Transport failures and bodies that
// are not valid JSON wrap ErrExchangeFailed.
func (c *Client) Exchange(ctx context.Context, code string) (json.RawMessage, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {c.cfg.RedirectURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauth.Endpoint.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrExchangeFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: token response is not valid JSON", ErrExchangeFailed)
	}

	return json.RawMessage(body), nil
}
