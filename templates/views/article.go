package views

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/degennews/web/articles"
)

// ArticleDetail renders a full article. The body HTML comes from the
// repository's markdown pipeline and is written unescaped.
func ArticleDetail(a articles.Article, bodyHTML string, categories []string) templ.Component {
	meta := Meta{
		Title:       a.Title,
		Description: a.Preview,
		Path:        "/articles/" + a.Slug(),
		OGImage:     "/api/og?title=" + url.QueryEscape(a.Title),
	}

	return layout(meta, categories, func(h *hw) {
		window(h, a.Title, "win95-article", func(h *hw) {
			if a.Category != "" {
				categoryBadge(h, a.Category, "blue")
				h.raw("\n")
			}
			h.raw("<h1 class=\"win95-article-title\">")
			h.text(a.Title)
			h.raw("</h1>\n")
			if a.Date != "" {
				h.raw("<span class=\"win95-timestamp\">")
				h.text(a.Date)
				h.raw("</span>\n")
			}
			h.raw("<div class=\"win95-article-body\">\n")
			h.raw(bodyHTML)
			h.raw("\n</div>\n")

			if len(a.Tags) > 0 {
				h.raw("<div class=\"win95-card-tags\">")
				for _, t := range a.Tags {
					categoryBadge(h, t, "teal")
				}
				h.raw("</div>\n")
			}
		})
	})
}
