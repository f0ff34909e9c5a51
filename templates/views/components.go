package views

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/degennews/web/articles"
)

// window draws Win95 window chrome around a block of content.
func window(h *hw, title string, extraClass string, body func(h *hw)) {
	h.rawf("<div class=\"%s\">\n", templ.EscapeString(twmerge.Merge("win95-window", extraClass)))
	h.raw("<div class=\"win95-titlebar\"><span class=\"win95-titlebar-text\">")
	h.text(title)
	h.raw("</span></div>\n<div class=\"win95-window-body\">\n")
	body(h)
	h.raw("</div>\n</div>\n")
}

func categoryBadge(h *hw, label, color string) {
	class := twmerge.Merge("win95-badge", "win95-badge-"+color)
	h.rawf("<span class=\"%s\">", templ.EscapeString(class))
	h.text(label)
	h.raw("</span>")
}

// articleCard renders one listing entry: badge, linked title, preview,
// up to three tags and the date.
func articleCard(h *hw, a articles.Article, featured bool) {
	class := "win95-card"
	if featured {
		class = twmerge.Merge(class, "win95-card-featured")
	}
	window(h, a.Title, class, func(h *hw) {
		if a.Category != "" {
			categoryBadge(h, a.Category, "blue")
			h.raw("\n")
		}
		h.rawf("<h2 class=\"win95-card-title\"><a href=\"/articles/%s\">", templ.EscapeString(a.Slug()))
		h.text(a.Title)
		h.raw("</a></h2>\n")
		h.raw("<p class=\"win95-card-preview\">")
		h.text(a.Preview)
		h.raw("</p>\n")

		tags := a.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		if len(tags) > 0 {
			h.raw("<div class=\"win95-card-tags\">")
			for _, t := range tags {
				categoryBadge(h, t, "teal")
			}
			h.raw("</div>\n")
		}

		if a.Date != "" {
			h.raw("<span class=\"win95-timestamp\">")
			h.text(a.Date)
			h.raw("</span>\n")
		}
		h.rawf("<a class=\"win95-button\" href=\"/articles/%s\">Read More</a>\n", templ.EscapeString(a.Slug()))
	})
}
