package playlist

import "regexp"

// listParam matches the list= query parameter anywhere in a URL string.
// First match wins on URLs carrying the parameter more than once.
var listParam = regexp.MustCompile(`[&?]list=([^&]+)`)

// ExtractID pulls the playlist id out of a free-form URL string. The second
// return value is false when no list parameter is present.
func ExtractID(rawURL string) (string, bool) {
	m := listParam.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
