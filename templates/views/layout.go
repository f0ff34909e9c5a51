package views

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

const (
	siteName    = "degenNews"
	siteTagline = "Latest crypto security news, trading insights, whale watching strategies, and market analysis for degens."
)

// Meta is the per-page head metadata.
type Meta struct {
	Title       string
	Description string
	Path        string
	OGImage     string
}

// layout wraps a page body with the document shell: head metadata, the
// draggable-window header chrome, and the footer status bar.
func layout(meta Meta, categories []string, body func(h *hw)) templ.Component {
	return component(func(h *hw) {
		h.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		h.raw("<meta charset=\"utf-8\">\n")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		h.raw("<title>")
		h.text(meta.Title)
		h.raw("</title>\n")
		h.rawf("<meta name=\"description\" content=\"%s\">\n", templ.EscapeString(meta.Description))
		h.rawf("<meta property=\"og:title\" content=\"%s\">\n", templ.EscapeString(meta.Title))
		h.rawf("<meta property=\"og:description\" content=\"%s\">\n", templ.EscapeString(meta.Description))
		if meta.OGImage != "" {
			h.rawf("<meta property=\"og:image\" content=\"%s\">\n", templ.EscapeString(meta.OGImage))
		}
		h.raw("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"degenNews RSS\" href=\"/rss.xml\">\n")
		h.raw("<link rel=\"stylesheet\" href=\"/static/css/win95.css\">\n")
		h.raw("</head>\n<body class=\"win95-desktop\">\n")

		header(h, categories)

		h.raw("<main class=\"win95-main\">\n")
		body(h)
		h.raw("</main>\n")

		footer(h)

		h.raw("</body>\n</html>\n")
	})
}

func header(h *hw, categories []string) {
	h.raw("<header class=\"win95-window win95-header\">\n")
	h.raw("<div class=\"win95-titlebar\"><span class=\"win95-titlebar-text\">")
	h.text(siteName + ".exe")
	h.raw("</span><span class=\"win95-titlebar-buttons\"><span>_</span><span>□</span><span>×</span></span></div>\n")
	h.raw("<nav class=\"win95-nav\">\n")
	h.raw("<a class=\"win95-nav-item\" href=\"/\">Home</a>\n")
	for _, c := range categories {
		h.rawf("<a class=\"win95-nav-item\" href=\"/categories/%s\">", url.PathEscape(categorySlug(c)))
		h.text(c)
		h.raw("</a>\n")
	}
	h.raw("</nav>\n</header>\n")
}

func footer(h *hw) {
	h.raw("<footer class=\"win95-statusbar\">\n")
	h.raw("<span class=\"win95-statusbar-cell\">")
	h.text(siteName)
	h.raw("</span>\n<span class=\"win95-statusbar-cell\"><a href=\"/rss.xml\">RSS</a></span>\n")
	h.raw("<span class=\"win95-statusbar-cell\"><a href=\"/api/posts.json\">JSON</a></span>\n")
	h.raw("</footer>\n")
}

// categorySlug turns a display category into its URL form. Only
// whitespace becomes a dash; "&" survives the round trip back to the
// display name.
func categorySlug(category string) string {
	return whitespaceToDash(strings.ToLower(category))
}

func whitespaceToDash(s string) string {
	return strings.Join(strings.Fields(s), "-")
}
