package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/sells-group/playlist-chat/internal/model"
)

// iso8601Duration matches the compact interval format the video API uses,
// e.g. PT1H2M3S. All components are optional.
var iso8601Duration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration renders an ISO-8601 duration as H:MM:SS, or M:SS when there
// is no hour component. Empty input yields the sentinel; input that doesn't
// look like a duration (including the sentinel itself) is passed through.
func FormatDuration(duration string) string {
	if duration == "" {
		return model.Unavailable
	}
	m := iso8601Duration.FindStringSubmatch(duration)
	if m == nil {
		return duration
	}
	hours := atoiDefault(m[1])
	minutes := atoiDefault(m[2])
	seconds := atoiDefault(m[3])
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount abbreviates a numeric count with one decimal: 1.5M views,
// 2.5K views, 42 views. Non-numeric input yields the sentinel.
func FormatViewCount(count string) string {
	n, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return model.Unavailable
	}
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM views", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK views", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d views", n)
	}
}

// FormatPublishDate renders an RFC 3339 timestamp as a date only.
func FormatPublishDate(published string) string {
	if published == "" {
		return model.Unavailable
	}
	t, err := time.Parse(time.RFC3339, published)
	if err != nil {
		return model.Unavailable
	}
	return t.Format("2006-01-02")
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
