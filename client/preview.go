package client

import (
	"net/url"
	"path"
	"strings"
)

// Kind is the display strategy for an attached file URL.
type Kind int

const (
	KindNone Kind = iota
	KindImage
	KindYouTube
	KindVideo
	KindPDF
	KindOffice
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindYouTube:
		return "youtube"
	case KindVideo:
		return "video"
	case KindPDF:
		return "pdf"
	case KindOffice:
		return "office"
	case KindLink:
		return "link"
	default:
		return "none"
	}
}

// Strategy tells a view how to render a file URL. EmbedURL is the
// address to load (image src, player src, or iframe src); FallbackURL
// is the secondary viewer link offered for office documents.
type Strategy struct {
	Kind        Kind
	EmbedURL    string
	FallbackURL string
}

const youtubeEmbedParams = "autoplay=1&mute=1&playsinline=1&rel=0&modestbranding=1"

var (
	imageExts = map[string]bool{
		"jpg": true, "jpeg": true, "png": true, "gif": true,
		"webp": true, "avif": true, "svg": true,
	}
	videoExts  = map[string]bool{"mp4": true, "webm": true, "ogg": true}
	officeExts = map[string]bool{
		"ppt": true, "pptx": true, "doc": true,
		"docx": true, "xls": true, "xlsx": true,
	}
)

// Classify maps a file URL to its display strategy. Pure and
// side-effect-free; first match wins.
func Classify(fileURL string) Strategy {
	if fileURL == "" {
		return Strategy{Kind: KindNone}
	}

	ext := urlExt(fileURL)

	switch {
	case imageExts[ext]:
		return Strategy{Kind: KindImage, EmbedURL: fileURL}
	case isYouTube(fileURL):
		return Strategy{Kind: KindYouTube, EmbedURL: youtubeEmbedURL(fileURL)}
	case videoExts[ext]:
		return Strategy{Kind: KindVideo, EmbedURL: fileURL}
	case ext == "pdf":
		return Strategy{Kind: KindPDF, EmbedURL: fileURL}
	case officeExts[ext]:
		escaped := url.QueryEscape(fileURL)
		return Strategy{
			Kind:        KindOffice,
			EmbedURL:    "https://docs.google.com/gview?url=" + escaped + "&embedded=true",
			FallbackURL: "https://view.officeapps.live.com/op/embed.aspx?src=" + escaped,
		}
	default:
		return Strategy{Kind: KindLink, EmbedURL: fileURL}
	}
}

func urlExt(fileURL string) string {
	trimmed := fileURL
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(trimmed), "."))
}

func isYouTube(fileURL string) bool {
	host := hostOf(fileURL)
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com") || host == "youtu.be"
}

// youtubeEmbedURL rewrites a watch/short link to the embeddable player
// form with autoplay/mute/no-related flags. Unrecognized shapes pass
// through with the flags appended.
func youtubeEmbedURL(fileURL string) string {
	u, err := url.Parse(withScheme(fileURL))
	if err != nil {
		return appendParams(fileURL)
	}

	base := fileURL
	switch {
	case strings.Contains(u.Host, "youtu.be"):
		if id := strings.Trim(u.Path, "/"); id != "" {
			base = "https://www.youtube.com/embed/" + id
		}
	case strings.Contains(u.Host, "youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			base = "https://www.youtube.com/embed/" + id
		}
		// /embed/ URLs pass through unchanged.
	}

	return appendParams(base)
}

func appendParams(base string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + youtubeEmbedParams
}

func withScheme(fileURL string) string {
	if strings.Contains(fileURL, "://") {
		return fileURL
	}
	return "https://" + fileURL
}

func hostOf(fileURL string) string {
	u, err := url.Parse(withScheme(fileURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
