package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/certmailer/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "cloudflare wins over forwarded",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Forwarded-For": "203.0.113.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.1",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "DO-Connecting-IP": "198.51.100.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.2",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.9 , 10.0.0.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.9",
		},
		{
			name:       "real ip",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.10 "},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.10",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv4 mapped ipv6 is unmapped",
			headers:    map[string]string{"X-Real-IP": "::ffff:192.0.2.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "192.0.2.1",
		},
		{
			name:       "nothing parses",
			headers:    map[string]string{"X-Forwarded-For": "a, b"},
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.5")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.5", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "203.0.113.5"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "203.0.113.5", attr.Value.String())
}
