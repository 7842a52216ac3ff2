package youtube

import "context"

// MaxBatchSize is the YouTube Data API limit on ids per videos.list call.
const MaxBatchSize = 50

// Client performs YouTube Data API operations. Implementations route either
// directly to googleapis.com or through the credential-attaching proxy.
type Client interface {
	// Ping performs a lightweight reachability check.
	Ping(ctx context.Context) error
	// PlaylistInfo fetches playlist metadata (title).
	PlaylistInfo(ctx context.Context, playlistID string) (*PlaylistListResponse, error)
	// PlaylistItems fetches one page of playlist entries.
	PlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemsResponse, error)
	// Videos fetches statistics and content details for up to MaxBatchSize ids.
	Videos(ctx context.Context, ids []string) (*VideoListResponse, error)
}

// PlaylistListResponse is the response from playlists.list.
type PlaylistListResponse struct {
	Items []PlaylistInfoItem `json:"items"`
}

// PlaylistInfoItem is one playlist metadata entry.
type PlaylistInfoItem struct {
	Snippet PlaylistInfoSnippet `json:"snippet"`
}

// PlaylistInfoSnippet holds the playlist title.
type PlaylistInfoSnippet struct {
	Title string `json:"title"`
}

// PlaylistItemsResponse is one page from playlistItems.list. An empty
// NextPageToken signals the final page.
type PlaylistItemsResponse struct {
	Items         []PlaylistItem `json:"items"`
	NextPageToken string         `json:"nextPageToken"`
}

// PlaylistItem is one playlist entry.
type PlaylistItem struct {
	Snippet PlaylistItemSnippet `json:"snippet"`
}

// PlaylistItemSnippet holds the entry's display attributes and the id of the
// video it references.
type PlaylistItemSnippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ResourceID   ResourceID `json:"resourceId"`
}

// Thumbnails holds the thumbnail variants we care about.
type Thumbnails struct {
	Medium  Thumbnail `json:"medium"`
	Default Thumbnail `json:"default"`
}

// Thumbnail is a single thumbnail reference.
type Thumbnail struct {
	URL string `json:"url"`
}

// ResourceID references the video a playlist entry points at.
type ResourceID struct {
	VideoID string `json:"videoId"`
}

// URL returns the preferred thumbnail URL (medium, then default).
func (t Thumbnails) URL() string {
	if t.Medium.URL != "" {
		return t.Medium.URL
	}
	return t.Default.URL
}

// VideoListResponse is the response from videos.list. Ids with no matching
// video are simply absent from Items.
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

// VideoItem carries the secondary attributes for one video.
type VideoItem struct {
	ID             string         `json:"id"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Statistics     Statistics     `json:"statistics"`
}

// ContentDetails holds the ISO-8601 duration.
type ContentDetails struct {
	Duration string `json:"duration"`
}

// Statistics holds the numeric counters, delivered as strings by the API.
type Statistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// apiError mirrors the error envelope googleapis returns on failures.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
