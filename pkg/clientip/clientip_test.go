package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/spotifyauth/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name: "cloudflare header wins",
			headers: map[string]string{
				"CF-Connecting-IP": "203.0.113.195",
				"X-Forwarded-For":  "192.168.1.1",
				"X-Real-IP":        "10.0.0.1",
			},
			remoteAddr: "172.16.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name: "vercel header before x-forwarded-for",
			headers: map[string]string{
				"X-Vercel-Forwarded-For": "198.51.100.7",
				"X-Forwarded-For":        "192.168.1.1",
			},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.7",
		},
		{
			name:       "first valid x-forwarded-for entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.178, 203.0.113.195"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name:       "x-real-ip",
			headers:    map[string]string{"X-Real-IP": "192.168.1.1"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "192.168.1.1",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "10.0.0.2",
			expected:   "10.0.0.2",
		},
		{
			name:       "ipv6 is normalized",
			headers:    map[string]string{"X-Real-IP": "2001:0db8:0000:0000:0000:0000:0000:0001"},
			remoteAddr: "[::1]:8080",
			expected:   "2001:db8::1",
		},
		{
			name:       "invalid headers fall through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "999.1.1.1"},
			remoteAddr: "[::1]:8080",
			expected:   "::1",
		},
		{
			name:       "nothing valid",
			remoteAddr: "unknown",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientip.GetIP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.9", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "10.0.0.1"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "10.0.0.1", attr.Value.String())
}
