package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/spotifyauth/pkg/logger"
)

// LivenessHandler always answers 200 "ALIVE".
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler answers 200 "READY" when every check passes and 503
// "NOT_READY" on the first failure, which is logged.
func ReadinessHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Error(err), logger.Component("httpserver"))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
