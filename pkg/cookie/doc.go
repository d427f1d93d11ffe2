// Package cookie wraps net/http cookies with a Manager that applies a shared
// set of default attributes (Path, Domain, Secure, HttpOnly, SameSite) to every
// cookie it writes or clears.
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	man.Set(w, "spotify_auth_state", state, cookie.WithMaxAge(600))
//	value, err := man.Get(r, "spotify_auth_state")
//	man.Delete(w, "spotify_auth_state") // Max-Age=0
//
// Reading relies on the net/http cookie parser rather than splitting the
// header by hand. GetUnescaped additionally percent-decodes the value.
//
// Config can be populated from the environment with pkg/config and turned
// into a Manager with NewFromConfig.
//
// Get and GetUnescaped return ErrCookieNotFound when the cookie is absent.
package cookie
