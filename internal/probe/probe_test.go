package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/playlist-chat/internal/model"
)

func TestRun_LocalProxyReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/youtube-proxy", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ping", body["action"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`)) //nolint:errcheck
	}))
	defer srv.Close()

	p := New(srv.URL, "https://deployed.example.com")
	assert.Equal(t, model.ModeProxyLocal, p.Run(context.Background()))
	assert.Equal(t, srv.URL, p.ProxyURL(model.ModeProxyLocal))
}

func TestRun_LocalErrorStatusStillCountsAsReachable(t *testing.T) {
	// Any HTTP response proves something is listening; only transport
	// failures demote the mode.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := New(srv.URL, "")
	assert.Equal(t, model.ModeProxyLocal, p.Run(context.Background()))
}

func TestRun_FallsBackToRemote(t *testing.T) {
	// A closed server leaves a port with nothing listening.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	dead := srv.URL
	srv.Close()

	p := New(dead, "https://deployed.example.com")
	mode := p.Run(context.Background())
	assert.Equal(t, model.ModeProxyRemote, mode)
	assert.Equal(t, "https://deployed.example.com", p.ProxyURL(mode))
}

func TestRun_FallsBackToDirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	dead := srv.URL
	srv.Close()

	p := New(dead, "")
	mode := p.Run(context.Background())
	assert.Equal(t, model.ModeDirect, mode)
	assert.Empty(t, p.ProxyURL(mode))
}

func TestRun_EmptyLocalURL(t *testing.T) {
	p := New("", "")
	assert.Equal(t, model.ModeDirect, p.Run(context.Background()))
}
