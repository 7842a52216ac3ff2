// Package probe decides how upstream calls are routed. It tries the local
// proxy first, falls back to a configured remote proxy, and only then to
// direct calls, which exist mainly to produce an actionable diagnostic.
package probe

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/internal/model"
)

// Option configures the probe.
type Option func(*Probe)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *Probe) {
		p.http = hc
	}
}

// Probe resolves the connection mode once at session start; the result is
// passed explicitly into client construction rather than kept as ambient
// global state. Rerunning it is an explicit caller decision.
type Probe struct {
	localURL  string
	remoteURL string
	http      *http.Client
}

// New creates a probe. remoteURL may be empty when no remote proxy is
// deployed.
func New(localURL, remoteURL string, opts ...Option) *Probe {
	p := &Probe{
		localURL:  strings.TrimRight(localURL, "/"),
		remoteURL: strings.TrimRight(remoteURL, "/"),
		http: &http.Client{
			Timeout: 3 * time.Second,
		},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run performs the three-step negotiation:
//  1. ping the local proxy — any HTTP response at all means it is reachable;
//  2. otherwise assume the configured remote proxy, when one exists;
//  3. otherwise fall back to direct upstream calls.
//
// The probe itself never retries and never fails: every outcome is a mode.
func (p *Probe) Run(ctx context.Context) model.ConnectionMode {
	if p.reachable(ctx, p.localURL) {
		zap.L().Info("connection probe: local proxy reachable", zap.String("url", p.localURL))
		return model.ModeProxyLocal
	}

	if p.remoteURL != "" {
		zap.L().Info("connection probe: using remote proxy", zap.String("url", p.remoteURL))
		return model.ModeProxyRemote
	}

	zap.L().Warn("connection probe: no proxy reachable, falling back to direct upstream calls")
	return model.ModeDirect
}

// ProxyURL returns the proxy base URL for the given mode, or "" for direct.
func (p *Probe) ProxyURL(mode model.ConnectionMode) string {
	switch mode {
	case model.ModeProxyLocal:
		return p.localURL
	case model.ModeProxyRemote:
		return p.remoteURL
	default:
		return ""
	}
}

// reachable posts a ping to the proxy. Only transport-level failures count
// as unreachable; an HTTP error status still proves something is listening.
func (p *Probe) reachable(ctx context.Context, baseURL string) bool {
	if baseURL == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+"/api/youtube-proxy", bytes.NewReader([]byte(`{"action":"ping"}`)))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close() //nolint:errcheck
	return true
}
