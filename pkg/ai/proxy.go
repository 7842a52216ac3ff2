package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// ProxyRequest is the body the proxy's /api/ai endpoint accepts.
type ProxyRequest struct {
	SystemPrompt string `json:"systemPrompt"`
	UserMessage  string `json:"userMessage"`
}

// ProxyResponse is the body the proxy's /api/ai endpoint returns.
type ProxyResponse struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// ProxyOption configures the proxy client.
type ProxyOption func(*proxyClient)

// WithProxyHTTPClient overrides the default http.Client.
func WithProxyHTTPClient(hc *http.Client) ProxyOption {
	return func(c *proxyClient) {
		c.http = hc
	}
}

type proxyClient struct {
	baseURL string
	http    *http.Client
}

// NewProxy creates a Client that routes chat calls through the proxy server,
// which holds the provider credentials.
func NewProxy(baseURL string, opts ...ProxyOption) Client {
	c := &proxyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *proxyClient) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	body, err := json.Marshal(ProxyRequest{SystemPrompt: systemPrompt, UserMessage: userMessage})
	if err != nil {
		return "", eris.Wrap(err, "ai: marshal proxy request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai", bytes.NewReader(body))
	if err != nil {
		return "", eris.Wrap(err, "ai: create proxy request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "ai: send proxy request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", eris.Wrap(err, "ai: read proxy response")
	}

	var result ProxyResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", eris.Wrapf(err, "ai: unmarshal proxy response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return "", eris.Errorf("ai: proxy status %d: %s", resp.StatusCode, result.Error)
		}
		return "", eris.Errorf("ai: proxy unexpected status %d", resp.StatusCode)
	}

	return result.Text, nil
}
