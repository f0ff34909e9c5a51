package views

import (
	"github.com/a-h/templ"

	"github.com/degennews/web/articles"
)

// Home renders the landing page: a hero window, a featured grid for the
// first three articles, then the remainder as a plain list.
func Home(items []articles.Article, categories []string) templ.Component {
	meta := Meta{
		Title:       siteName + " - Crypto Security News & Trading Insights",
		Description: siteTagline,
		Path:        "/",
	}

	return layout(meta, categories, func(h *hw) {
		window(h, "welcome.txt", "win95-hero", func(h *hw) {
			h.raw("<h1 class=\"win95-hero-title\">Latest Crypto <span class=\"win95-accent\">Articles</span></h1>\n")
			h.raw("<p>")
			h.text("Latest security news, trading insights, and market analysis for degens")
			h.raw("</p>\n")
		})

		featured := items
		if len(featured) > 3 {
			featured = featured[:3]
		}
		if len(featured) > 0 {
			h.raw("<section class=\"win95-featured-grid\">\n")
			for i, a := range featured {
				articleCard(h, a, i == 0)
			}
			h.raw("</section>\n")
		}

		if len(items) > 3 {
			h.raw("<section class=\"win95-article-list\">\n")
			for _, a := range items[3:] {
				articleCard(h, a, false)
			}
			h.raw("</section>\n")
		}
	})
}
