package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/spotifyauth/pkg/binder"
	"github.com/dmitrymomot/spotifyauth/pkg/logger"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// classifyError maps an error to the status and message sent to the client.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    ErrInternalServerError.Message,
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	case errors.Is(err, binder.ErrFailedToParseQuery):
		info.StatusCode = http.StatusBadRequest
		info.Message = "Invalid query parameters"
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}

	return info
}

// NewErrorHandler returns an ErrorHandler that logs the failure and renders
// it as a JSON ErrorDetail.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.StatusCode(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		resp := JSONError(&ErrorDetail{Error: info.Message}, WithJSONStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
