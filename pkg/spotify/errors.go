package spotify

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("spotify: credentials missing")
	ErrExchangeFailed     = errors.New("spotify: token exchange failed")
	ErrStateGeneration    = errors.New("spotify: failed to generate state")
)

// RequestError is returned by Exchange when the token endpoint answers with
// a non-2xx status. Body holds the raw response text.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("spotify: token endpoint returned status %d: %s", e.StatusCode, e.Body)
}
