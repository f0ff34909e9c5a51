package views

import "github.com/a-h/templ"

// NotFound renders the 404 page as a Win95 error dialog.
func NotFound(categories []string) templ.Component {
	meta := Meta{
		Title:       "Not Found - " + siteName,
		Description: siteTagline,
		Path:        "",
	}

	return layout(meta, categories, func(h *hw) {
		window(h, "Error", "win95-dialog", func(h *hw) {
			h.raw("<p class=\"win95-dialog-message\">")
			h.text("The page you are looking for does not exist.")
			h.raw("</p>\n<a class=\"win95-button\" href=\"/\">OK</a>\n")
		})
	})
}

// ErrorPage renders a 500 page when the article source is unavailable.
func ErrorPage(categories []string) templ.Component {
	meta := Meta{
		Title:       "Error - " + siteName,
		Description: siteTagline,
		Path:        "",
	}

	return layout(meta, categories, func(h *hw) {
		window(h, "Fatal Exception", "win95-dialog", func(h *hw) {
			h.raw("<p class=\"win95-dialog-message\">")
			h.text("Something went wrong fetching the latest articles. Try again shortly.")
			h.raw("</p>\n<a class=\"win95-button\" href=\"/\">Retry</a>\n")
		})
	})
}
