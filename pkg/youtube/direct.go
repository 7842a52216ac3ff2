package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// DirectOption configures the direct client.
type DirectOption func(*directClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) DirectOption {
	return func(c *directClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) DirectOption {
	return func(c *directClient) {
		c.http = hc
	}
}

// WithRateLimiter overrides the default request limiter.
func WithRateLimiter(lim *rate.Limiter) DirectOption {
	return func(c *directClient) {
		c.limiter = lim
	}
}

type directClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewDirect creates a client that calls the YouTube Data API directly with
// the given key. Requests are rate limited to stay inside API quota.
func NewDirect(apiKey string, opts ...DirectOption) Client {
	c := &directClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(10, 10),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *directClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return eris.New("youtube: direct mode requires youtube.key; configure an API key or run the proxy server")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "youtube: rate limiter wait")
	}

	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "youtube: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "youtube: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "youtube: read response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return eris.Errorf("youtube: status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return eris.Errorf("youtube: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "youtube: unmarshal response")
	}

	return nil
}

func (c *directClient) Ping(ctx context.Context) error {
	// No proxy to reach; direct mode reports itself unsupported for probing.
	return eris.New("youtube: direct transport has no proxy to ping")
}

func (c *directClient) PlaylistInfo(ctx context.Context, playlistID string) (*PlaylistListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", playlistID)

	var out PlaylistListResponse
	if err := c.get(ctx, "/playlists", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *directClient) PlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemsResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", "50")
	params.Set("playlistId", playlistID)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out PlaylistItemsResponse
	if err := c.get(ctx, "/playlistItems", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *directClient) Videos(ctx context.Context, ids []string) (*VideoListResponse, error) {
	params := url.Values{}
	params.Set("part", "statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var out VideoListResponse
	if err := c.get(ctx, "/videos", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
