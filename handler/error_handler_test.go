package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spotifyauth/handler"
	"github.com/dmitrymomot/spotifyauth/pkg/binder"
	"github.com/dmitrymomot/spotifyauth/pkg/logger"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{
			name:       "http error",
			err:        handler.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":"Method not allowed"}`,
			wantLevel:  "WARN",
		},
		{
			name:       "query binding error",
			err:        fmt.Errorf("%w: field Page: invalid int value", binder.ErrFailedToParseQuery),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid query parameters"}`,
			wantLevel:  "WARN",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
			wantLevel:  "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			eh := handler.NewErrorHandler(logger.New(logger.WithOutput(buf)))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/callback", nil)
			eh(handler.NewContext(rec, req), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "request error", entry["msg"])
			assert.Equal(t, "/callback", entry["path"])
			assert.Equal(t, "POST", entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status_code"])
		})
	}
}
