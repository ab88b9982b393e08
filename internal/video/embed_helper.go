package video

import (
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

type EmbedType int

const (
	EmbedTypeNone EmbedType = iota
	EmbedTypeYouTube
	EmbedTypeVideo
	EmbedTypeIframe
)

// Embed describes how a live stream link should be placed in the modal.
type Embed struct {
	Type EmbedType
	URL  string
}

// Tag is the element name used for the embed, or "" when there is nothing to show.
func (e Embed) Tag() string {
	switch e.Type {
	case EmbedTypeVideo:
		return "video"
	case EmbedTypeYouTube, EmbedTypeIframe:
		return "iframe"
	}
	return ""
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".ogg":  true,
	".mov":  true,
}

func ForStream(link string) Embed {
	link = strings.TrimSpace(link)
	if link == "" {
		return Embed{Type: EmbedTypeNone}
	}

	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		// Not something we can reason about, let the browser try
		return Embed{Type: EmbedTypeIframe, URL: link}
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if strings.HasPrefix(u.Path, "/embed/") {
			return Embed{Type: EmbedTypeYouTube, URL: link}
		}
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); id != "" {
				return youTube(id, u.Query())
			}
		}
		if strings.HasPrefix(u.Path, "/live/") {
			if id := firstSegment(strings.TrimPrefix(u.Path, "/live/")); id != "" {
				return youTube(id, u.Query())
			}
		}
	case "youtu.be":
		if id := firstSegment(u.Path); id != "" {
			return youTube(id, u.Query())
		}
	}

	if videoExtensions[strings.ToLower(path.Ext(u.Path))] {
		return Embed{Type: EmbedTypeVideo, URL: link}
	}

	return Embed{Type: EmbedTypeIframe, URL: link}
}

func youTube(id string, query url.Values) Embed {
	embed := "https://www.youtube.com/embed/" + url.PathEscape(id)
	if start := startSeconds(query.Get("t")); start > 0 {
		embed += "?start=" + strconv.Itoa(start)
	}
	return Embed{Type: EmbedTypeYouTube, URL: embed}
}

func firstSegment(p string) string {
	segment, _, _ := strings.Cut(strings.Trim(p, "/"), "/")
	return segment
}

// startSeconds reads the t parameter of a share link, either plain seconds
// or a duration like 1m30s.
func startSeconds(t string) int {
	if t == "" {
		return 0
	}
	if n, err := strconv.Atoi(t); err == nil {
		return n
	}
	d, err := time.ParseDuration(t)
	if err != nil {
		return 0
	}
	return int(d / time.Second)
}
