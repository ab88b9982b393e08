package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForStream(t *testing.T) {
	tests := []struct {
		name string
		link string
		want Embed
	}{
		{"empty", "  ", Embed{Type: EmbedTypeNone}},
		{"watch link", "https://www.youtube.com/watch?v=abc123", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc123"}},
		{"watch link with start", "https://www.youtube.com/watch?v=abc&t=10", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc?start=10"}},
		{"watch link with duration start", "https://www.youtube.com/watch?v=abc&t=1m30s", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc?start=90"}},
		{"short link", "https://youtu.be/abc123?si=xyz", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc123"}},
		{"short link with extra segments", "https://youtu.be/x/y", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/x"}},
		{"short link with start", "https://youtu.be/abc?t=42s", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc?start=42"}},
		{"bad start ignored", "https://youtu.be/abc?t=soon", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc"}},
		{"live link", "https://youtube.com/live/abc123", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc123"}},
		{"already embed", "https://www.youtube.com/embed/abc123", Embed{Type: EmbedTypeYouTube, URL: "https://www.youtube.com/embed/abc123"}},
		{"video file", "https://cdn.example.com/final.MP4", Embed{Type: EmbedTypeVideo, URL: "https://cdn.example.com/final.MP4"}},
		{"hls playlist", "https://cdn.example.com/live/index.m3u8", Embed{Type: EmbedTypeIframe, URL: "https://cdn.example.com/live/index.m3u8"}},
		{"generic", "https://example.com/embed/x", Embed{Type: EmbedTypeIframe, URL: "https://example.com/embed/x"}},
		{"no host", "embed/x", Embed{Type: EmbedTypeIframe, URL: "embed/x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForStream(tt.link))
		})
	}
}

func TestEmbedTag(t *testing.T) {
	assert.Equal(t, "", Embed{Type: EmbedTypeNone}.Tag())
	assert.Equal(t, "iframe", Embed{Type: EmbedTypeYouTube}.Tag())
	assert.Equal(t, "iframe", Embed{Type: EmbedTypeIframe}.Tag())
	assert.Equal(t, "video", Embed{Type: EmbedTypeVideo}.Tag())
}
