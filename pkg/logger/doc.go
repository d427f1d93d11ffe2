// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped attributes from context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler based on the format,
// attaches static attributes and wraps the result in LogHandlerDecorator,
// which runs every registered ContextExtractor before a record is written.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "spotifyauth"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "token exchange succeeded", logger.Component("spotify_auth"))
//
// Attribute helpers (Error, RequestID, Component, Event, StatusCode,
// Duration) keep key names consistent across packages.
package logger
