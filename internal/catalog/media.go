package catalog

// PlaceholderImageURL is served whenever upstream media is missing or
// malformed, so an empty URL never reaches the UI.
const PlaceholderImageURL = "/images/placeholder-product.svg"

// MediaKind discriminates the media union. Exactly one payload field of
// Media is non-nil, matching its kind.
type MediaKind string

const (
	KindImage         MediaKind = "image"
	KindVideo         MediaKind = "video"
	KindExternalVideo MediaKind = "external_video"
)

// Media is the normalized presentation record for one upstream media node.
type Media struct {
	Kind     MediaKind
	Image    *ImageMedia
	Video    *VideoMedia
	External *ExternalVideoMedia
}

// ImageMedia is a static product image.
type ImageMedia struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

// VideoMedia is a directly playable, upstream-hosted video.
type VideoMedia struct {
	URL       string
	MimeType  string
	Width     int
	Height    int
	PosterURL string
}

// ExternalVideoMedia is a video hosted by a third party and shown in an
// inline frame. For YouTube hosts, VideoID is resolved locally and EmbedURL
// is synthesized; for other hosts the upstream embed URL passes through
// unchanged and VideoID stays empty.
type ExternalVideoMedia struct {
	Host         string
	OriginURL    string
	VideoID      string
	EmbedURL     string
	ThumbnailURL string
}

// UpstreamMedia mirrors one node of the upstream media connection, flattened
// across the union's branches. TypeName is the GraphQL discriminator; fields
// belonging to other branches are simply left at their zero values.
type UpstreamMedia struct {
	TypeName   string
	Alt        string
	ImageURL   string
	Width      int
	Height     int
	PreviewURL string
	Sources    []UpstreamVideoSource
	Host       string
	OriginURL  string
	EmbedURL   string
}

// UpstreamVideoSource is one encoding of an upstream-hosted video.
type UpstreamVideoSource struct {
	URL      string
	MimeType string
	Width    int
	Height   int
}

// NormalizeMedia converts one upstream media node into its presentation
// record. It never fails: an unknown discriminator or missing fields degrade
// to the placeholder image rather than aborting the enclosing product.
func NormalizeMedia(n UpstreamMedia) Media {
	switch n.TypeName {
	case "MediaImage":
		return normalizeImage(n)
	case "Video":
		return normalizeVideo(n)
	case "ExternalVideo":
		return normalizeExternalVideo(n)
	default:
		return placeholderMedia(n.Alt)
	}
}

func normalizeImage(n UpstreamMedia) Media {
	url := n.ImageURL
	if url == "" {
		url = PlaceholderImageURL
	}
	return Media{
		Kind: KindImage,
		Image: &ImageMedia{
			URL:    url,
			Alt:    n.Alt,
			Width:  n.Width,
			Height: n.Height,
		},
	}
}

func normalizeVideo(n UpstreamMedia) Media {
	if len(n.Sources) == 0 {
		return placeholderMedia(n.Alt)
	}
	src := n.Sources[0]
	poster := n.PreviewURL
	if poster == "" {
		poster = PlaceholderImageURL
	}
	return Media{
		Kind: KindVideo,
		Video: &VideoMedia{
			URL:       src.URL,
			MimeType:  src.MimeType,
			Width:     src.Width,
			Height:    src.Height,
			PosterURL: poster,
		},
	}
}

func normalizeExternalVideo(n UpstreamMedia) Media {
	ext := &ExternalVideoMedia{
		Host:         n.Host,
		OriginURL:    n.OriginURL,
		EmbedURL:     n.EmbedURL,
		ThumbnailURL: n.PreviewURL,
	}
	// Only YouTube origins are resolved locally; other hosts keep the
	// upstream-provided embed URL untouched.
	if n.Host == "YOUTUBE" {
		if v, ok := ResolveYouTube(n.OriginURL); ok {
			ext.VideoID = v.ID
			ext.ThumbnailURL = v.ThumbnailURL
			ext.EmbedURL = EmbedURL(v.ID, EmbedViewer)
		}
	}
	if ext.ThumbnailURL == "" {
		ext.ThumbnailURL = PlaceholderImageURL
	}
	return Media{Kind: KindExternalVideo, External: ext}
}

func placeholderMedia(alt string) Media {
	return Media{
		Kind:  KindImage,
		Image: &ImageMedia{URL: PlaceholderImageURL, Alt: alt},
	}
}
