package spotify

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const (
	// StateCookieName is the cookie carrying the anti-forgery state between
	// the login redirect and the callback.
	StateCookieName = "spotify_auth_state"
	// StateMaxAge is the state cookie lifetime in seconds.
	StateMaxAge = 600

	stateBytes = 16
)

// GenerateState returns 16 random bytes, hex encoded.
func GenerateState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStateGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

// ValidState reports whether the state echoed by the provider matches the
// value stored in the cookie. Empty values never match.
func ValidState(stored, received string) bool {
	if stored == "" || received == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(received)) == 1
}
