package playlist

import "github.com/rotisserie/eris"

// Sentinel errors surfaced to the user. Upstream failures are wrapped with
// their raw cause instead and abort the in-progress load.
var (
	// ErrInvalidPlaylistURL means no playlist id could be extracted; no
	// upstream call is made.
	ErrInvalidPlaylistURL = eris.New("invalid YouTube playlist URL: no list parameter found")

	// ErrEmptyPlaylist means pagination completed with zero items: the
	// playlist is empty, private, or the id does not exist.
	ErrEmptyPlaylist = eris.New("no videos found in playlist: it might be private or empty")
)
