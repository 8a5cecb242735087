// Package extractor parses platform-specific media identifiers out of URLs.
package extractor

import "regexp"

var (
	youtubePattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
	tiktokPattern  = regexp.MustCompile(`tiktok\.com/.*/(\d+)`)
	spotifyPattern = regexp.MustCompile(`spotify\.com/(track|album|playlist)/([a-zA-Z0-9]+)`)
)

// SpotifyResource identifies a Spotify track, album or playlist.
type SpotifyResource struct {
	Type string
	ID   string
}

// YouTubeID returns the 11-character video id from watch, embed and youtu.be links.
func YouTubeID(url string) (string, bool) {
	m := youtubePattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// TikTokID returns the numeric video id that follows a path segment.
func TikTokID(url string) (string, bool) {
	m := tiktokPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SpotifyID returns the resource type and id of a Spotify link.
func SpotifyID(url string) (SpotifyResource, bool) {
	m := spotifyPattern.FindStringSubmatch(url)
	if m == nil {
		return SpotifyResource{}, false
	}
	return SpotifyResource{Type: m[1], ID: m[2]}, true
}

// MediaID dispatches to the extractor for platform.
func MediaID(platform, url string) (string, bool) {
	switch platform {
	case "youtube":
		return YouTubeID(url)
	case "tiktok":
		return TikTokID(url)
	case "spotify":
		res, ok := SpotifyID(url)
		if !ok {
			return "", false
		}
		return res.Type + ":" + res.ID, true
	default:
		return "", false
	}
}
