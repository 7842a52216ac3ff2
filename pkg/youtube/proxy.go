package youtube

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

// ProxyRequest is the action envelope the proxy accepts.
type ProxyRequest struct {
	Action     string `json:"action"`
	PlaylistID string `json:"playlistId,omitempty"`
	PageToken  string `json:"pageToken,omitempty"`
	IDs        string `json:"ids,omitempty"`
}

// Proxy actions.
const (
	ActionPing             = "ping"
	ActionGetPlaylistInfo  = "getPlaylistInfo"
	ActionGetPlaylistItems = "getPlaylistItems"
	ActionGetVideos        = "getVideos"
)

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

// NewProxy creates a client that routes every call through the
// credential-attaching proxy at baseURL.
func NewProxy(baseURL string, opts ...ProxyOption) Client {
	c := &proxyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *proxyClient) post(ctx context.Context, preq ProxyRequest, out any) error {
	body, err := json.Marshal(preq)
	if err != nil {
		return eris.Wrap(err, "youtube: marshal proxy request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/youtube-proxy", bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "youtube: create proxy request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "youtube: send proxy request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "youtube: read proxy response")
	}

	if resp.StatusCode != http.StatusOK {
		var proxyErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &proxyErr) == nil && proxyErr.Error != "" {
			return eris.Errorf("youtube: proxy status %d: %s", resp.StatusCode, proxyErr.Error)
		}
		return eris.Errorf("youtube: proxy unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrap(err, "youtube: unmarshal proxy response")
	}

	return nil
}

func (c *proxyClient) Ping(ctx context.Context) error {
	return c.post(ctx, ProxyRequest{Action: ActionPing}, nil)
}

func (c *proxyClient) PlaylistInfo(ctx context.Context, playlistID string) (*PlaylistListResponse, error) {
	var out PlaylistListResponse
	if err := c.post(ctx, ProxyRequest{Action: ActionGetPlaylistInfo, PlaylistID: playlistID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *proxyClient) PlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemsResponse, error) {
	var out PlaylistItemsResponse
	if err := c.post(ctx, ProxyRequest{Action: ActionGetPlaylistItems, PlaylistID: playlistID, PageToken: pageToken}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *proxyClient) Videos(ctx context.Context, ids []string) (*VideoListResponse, error) {
	var out VideoListResponse
	if err := c.post(ctx, ProxyRequest{Action: ActionGetVideos, IDs: strings.Join(ids, ",")}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
