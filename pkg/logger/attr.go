package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
