// Package spotify talks to the Spotify accounts service for the OAuth 2.0
// authorization code flow.
//
// The authorize URL is built with golang.org/x/oauth2 against
// golang.org/x/oauth2/spotify.Endpoint and always forces the consent dialog
// (show_dialog=true). The token exchange is a direct form POST with HTTP
// Basic client authentication; the provider's JSON answer is returned as a
// json.RawMessage so callers can forward it untouched.
//
//	client := spotify.New(cfg)
//
//	state, err := spotify.GenerateState()
//	authURL := client.AuthCodeURL(state)
//
//	token, err := client.Exchange(ctx, code)
//	var rejected *spotify.RequestError
//	if errors.As(err, &rejected) {
//	    // provider answered with a non-2xx status; rejected.Body holds its text
//	}
//
// Config carries env tags for github.com/caarlos0/env; none of the
// credentials are marked required so that their absence can be reported per
// request via ValidateAuthorize and ValidateExchange.
package spotify
