package views

import (
	"github.com/a-h/templ"

	"github.com/degennews/web/articles"
)

// Category renders a filtered listing for one category.
func Category(name string, items []articles.Article, categories []string) templ.Component {
	meta := Meta{
		Title:       name + " - " + siteName,
		Description: "Latest " + name + " articles and news from " + siteName,
		Path:        "/categories/" + categorySlug(name),
	}

	return layout(meta, categories, func(h *hw) {
		window(h, name, "win95-category", func(h *hw) {
			h.raw("<h1 class=\"win95-article-title\">")
			h.text(name)
			h.raw("</h1>\n<p>")
			h.text("Browse the latest articles in " + name)
			h.raw("</p>\n")
		})

		h.raw("<section class=\"win95-article-list\">\n")
		for _, a := range items {
			articleCard(h, a, false)
		}
		h.raw("</section>\n")
	})
}
