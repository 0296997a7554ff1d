package catalog

import (
	"net/url"
	"strings"
)

// EmbedMode selects the player parameter set for a synthesized embed URL.
type EmbedMode int

const (
	// EmbedViewer is the single-product media viewer: minimal parameters,
	// playback left to the user.
	EmbedViewer EmbedMode = iota
	// EmbedFeed is the scrolling video feed: muted autoplay on a loop with
	// the player chrome hidden.
	EmbedFeed
)

// YouTubeVideo is a resolved YouTube identifier with its deterministic
// maximum-resolution still.
type YouTubeVideo struct {
	ID           string
	ThumbnailURL string
}

// ResolveYouTube extracts a video id from a youtu.be or youtube.com URL.
// The short form takes the final path segment; the long form takes the "v"
// query parameter. Extraneous query parameters are ignored. Any other shape
// reports ok=false and the caller treats the video as unavailable.
func ResolveYouTube(raw string) (YouTubeVideo, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return YouTubeVideo{}, false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	var id string
	switch {
	case host == "youtu.be":
		id = lastPathSegment(u.Path)
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		id = u.Query().Get("v")
	}
	if id == "" {
		return YouTubeVideo{}, false
	}

	return YouTubeVideo{
		ID:           id,
		ThumbnailURL: "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg",
	}, true
}

// EmbedURL synthesizes the embeddable player URL for a resolved video id.
func EmbedURL(id string, mode EmbedMode) string {
	base := "https://www.youtube.com/embed/" + id
	if mode == EmbedFeed {
		// loop=1 requires the playlist parameter to repeat a single video.
		return base + "?autoplay=1&mute=1&loop=1&controls=0&playlist=" + id
	}
	return base + "?rel=0"
}

func lastPathSegment(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
