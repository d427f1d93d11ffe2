package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/dmitrymomot/spotifyauth/pkg/logger"
)

// GetIP returns the client address of r, normalized, or "" if none is valid.
func GetIP(r *http.Request) string {
	for _, header := range []string{"CF-Connecting-IP", "X-Vercel-Forwarded-For", "X-Forwarded-For"} {
		for candidate := range strings.SplitSeq(r.Header.Get(header), ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware resolves the client address once per request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), GetIP(r))))
	})
}

// LoggerExtractor adds "client_ip" to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
