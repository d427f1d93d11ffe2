package cookie

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// Manager sets, reads and clears cookies that share a common set of
// attributes.
type Manager struct {
	defaults Options
}

// New returns a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax;
// opts override them.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a Set-Cookie header. Per-call options override the manager defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns the raw cookie value. Parsing is done by net/http, so irregular
// spacing and '=' inside values are handled.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// GetUnescaped is like Get but percent-decodes the value. A value that is
// not valid percent-encoding is returned as is.
func (m *Manager) GetUnescaped(r *http.Request, name string) (string, error) {
	value, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded, nil
	}
	return value, nil
}

// Delete expires the cookie immediately (Max-Age=0). Attributes must match
// the ones used by Set for browsers to replace the stored cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}
