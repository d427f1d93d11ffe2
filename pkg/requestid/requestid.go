// Package requestid propagates an X-Request-ID value through the request
// context so every log line of a request can be correlated.
package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/spotifyauth/pkg/logger"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// Middleware reuses a well-formed inbound X-Request-ID or generates a UUID,
// echoes it in the response header and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// LoggerExtractor adds the request id to log records written with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
