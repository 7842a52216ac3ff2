package model

import "time"

// Unavailable is the sentinel used for any secondary field that could not be
// fetched or joined. It is a representable value, not an error condition.
const Unavailable = "N/A"

// ConnectionMode describes how upstream YouTube and AI calls are routed.
type ConnectionMode string

const (
	ModeChecking    ConnectionMode = "checking"
	ModeProxyLocal  ConnectionMode = "proxy-local"
	ModeProxyRemote ConnectionMode = "proxy-remote"
	ModeDirect      ConnectionMode = "direct-unsupported"
)

// PlaylistEntry is one raw playlist-listing item before enrichment.
type PlaylistEntry struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	Thumbnail    string `json:"thumbnail"`
}

// Video is a playlist entry joined with its per-video statistics.
// Position is 1-based over the whole playlist, dense regardless of how
// individual enrichment batches fared. Secondary fields hold Unavailable
// when the batch lookup failed or returned no match for the id.
type Video struct {
	Position     int    `json:"position"`
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	Thumbnail    string `json:"thumbnail"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"view_count"`
	LikeCount    string `json:"like_count"`
	CommentCount string `json:"comment_count"`
}

// ThumbnailURL returns the snippet thumbnail, falling back to the predictable
// i.ytimg.com URL when the listing carried none.
func (v Video) ThumbnailURL() string {
	if v.Thumbnail != "" {
		return v.Thumbnail
	}
	return "https://i.ytimg.com/vi/" + v.VideoID + "/mqdefault.jpg"
}

// Playlist is one fully loaded and enriched collection.
type Playlist struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Videos   []Video   `json:"videos"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the chat transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
