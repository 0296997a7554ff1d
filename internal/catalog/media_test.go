package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMedia_Image(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{
		TypeName: "MediaImage",
		Alt:      "front view",
		ImageURL: "https://cdn.example.com/p1.jpg",
		Width:    800,
		Height:   1200,
	})

	require.Equal(t, KindImage, m.Kind)
	require.NotNil(t, m.Image)
	assert.Nil(t, m.Video)
	assert.Nil(t, m.External)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", m.Image.URL)
	assert.Equal(t, "front view", m.Image.Alt)
	assert.Equal(t, 800, m.Image.Width)
}

func TestNormalizeMedia_ImageMissingURL(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{TypeName: "MediaImage", Alt: "x"})

	require.Equal(t, KindImage, m.Kind)
	assert.Equal(t, PlaceholderImageURL, m.Image.URL)
}

func TestNormalizeMedia_UnknownDiscriminator(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{TypeName: "Model3d", Alt: "spinny"})

	require.Equal(t, KindImage, m.Kind)
	require.NotNil(t, m.Image)
	assert.Equal(t, PlaceholderImageURL, m.Image.URL)
	assert.Equal(t, "spinny", m.Image.Alt)
}

func TestNormalizeMedia_VideoFirstSource(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{
		TypeName:   "Video",
		PreviewURL: "https://cdn.example.com/poster.jpg",
		Sources: []UpstreamVideoSource{
			{URL: "https://cdn.example.com/v.mp4", MimeType: "video/mp4", Width: 1080, Height: 1920},
			{URL: "https://cdn.example.com/v.webm", MimeType: "video/webm"},
		},
	})

	require.Equal(t, KindVideo, m.Kind)
	require.NotNil(t, m.Video)
	assert.Equal(t, "https://cdn.example.com/v.mp4", m.Video.URL)
	assert.Equal(t, "video/mp4", m.Video.MimeType)
	assert.Equal(t, "https://cdn.example.com/poster.jpg", m.Video.PosterURL)
}

func TestNormalizeMedia_VideoWithoutSourcesOrPoster(t *testing.T) {
	noSources := NormalizeMedia(UpstreamMedia{TypeName: "Video"})
	require.Equal(t, KindImage, noSources.Kind)
	assert.Equal(t, PlaceholderImageURL, noSources.Image.URL)

	noPoster := NormalizeMedia(UpstreamMedia{
		TypeName: "Video",
		Sources:  []UpstreamVideoSource{{URL: "https://cdn.example.com/v.mp4"}},
	})
	require.Equal(t, KindVideo, noPoster.Kind)
	assert.Equal(t, PlaceholderImageURL, noPoster.Video.PosterURL)
}

func TestNormalizeMedia_ExternalYouTube(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{
		TypeName:  "ExternalVideo",
		Host:      "YOUTUBE",
		OriginURL: "https://youtu.be/dQw4w9WgXcQ",
	})

	require.Equal(t, KindExternalVideo, m.Kind)
	require.NotNil(t, m.External)
	assert.Equal(t, "dQw4w9WgXcQ", m.External.VideoID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?rel=0", m.External.EmbedURL)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", m.External.ThumbnailURL)
}

func TestNormalizeMedia_ExternalYouTubeUnresolvable(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{
		TypeName:  "ExternalVideo",
		Host:      "YOUTUBE",
		OriginURL: "https://www.youtube.com/watch",
	})

	require.Equal(t, KindExternalVideo, m.Kind)
	assert.Empty(t, m.External.VideoID)
	assert.Empty(t, m.External.EmbedURL)
	assert.Equal(t, PlaceholderImageURL, m.External.ThumbnailURL)
}

func TestNormalizeMedia_ExternalOtherHostPassthrough(t *testing.T) {
	m := NormalizeMedia(UpstreamMedia{
		TypeName:  "ExternalVideo",
		Host:      "VIMEO",
		OriginURL: "https://vimeo.com/76979871",
		EmbedURL:  "https://player.vimeo.com/video/76979871",
	})

	require.Equal(t, KindExternalVideo, m.Kind)
	assert.Empty(t, m.External.VideoID)
	assert.Equal(t, "https://player.vimeo.com/video/76979871", m.External.EmbedURL)
}
