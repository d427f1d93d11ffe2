package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

const jsonContentType = "application/json; charset=utf-8"

// ErrorDetail is the JSON body of every error response.
type ErrorDetail struct {
	Error    string `json:"error"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	data, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(j.status)
	_, err = w.Write(data)
	return err
}

type rawJSONResponse struct {
	status int
	body   json.RawMessage
}

func (j *rawJSONResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(j.status)
	_, err := w.Write(j.body)
	return err
}

// JSONOption configures JSON response
type JSONOption func(*int)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(s *int) {
		*s = status
	}
}

// JSON encodes v as the response body with status 200 unless overridden.
// Encoding happens before any header is written, so a marshal failure
// still reaches the error handler.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(&r.status)
	}
	return r
}

// RawJSON writes an already encoded JSON document unchanged.
func RawJSON(data json.RawMessage, opts ...JSONOption) Response {
	r := &rawJSONResponse{status: http.StatusOK, body: data}
	for _, opt := range opts {
		opt(&r.status)
	}
	return r
}

// JSONError renders an ErrorDetail. err may be an *ErrorDetail (status 500
// unless overridden), an HTTPError or any error wrapping one (its code and
// message are used), or any other error (500, generic message).
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body = e
	case error:
		r.body = errorToDetail(e, &r.status)
	default:
		r.body = &ErrorDetail{Error: ErrInternalServerError.Message}
	}

	for _, opt := range opts {
		opt(&r.status)
	}
	return r
}

func errorToDetail(err error, status *int) *ErrorDetail {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{Error: httpErr.Message}
	}
	return &ErrorDetail{Error: ErrInternalServerError.Message}
}
