package spotify

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Config holds the Spotify application credentials.
type Config struct {
	ClientID     string        `env:"SPOTIFY_CLIENT_ID"`
	ClientSecret string        `env:"SPOTIFY_CLIENT_SECRET"`
	RedirectURL  string        `env:"SPOTIFY_REDIRECT_URI"`
	HTTPTimeout  time.Duration `env:"SPOTIFY_HTTP_TIMEOUT" envDefault:"10s"`
}

// ValidateAuthorize reports whether the fields needed to build the
// authorize URL are present.
func (c Config) ValidateAuthorize() error {
	return missing(map[string]string{
		"SPOTIFY_CLIENT_ID":    c.ClientID,
		"SPOTIFY_REDIRECT_URI": c.RedirectURL,
	})
}

// ValidateExchange reports whether the fields needed for the token exchange
// are present.
func (c Config) ValidateExchange() error {
	return missing(map[string]string{
		"SPOTIFY_CLIENT_ID":     c.ClientID,
		"SPOTIFY_CLIENT_SECRET": c.ClientSecret,
		"SPOTIFY_REDIRECT_URI":  c.RedirectURL,
	})
}

func missing(fields map[string]string) error {
	var names []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	slices.Sort(names)
	return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(names, ", "))
}
