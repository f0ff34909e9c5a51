// Package articles is the authoritative source of normalized article data.
// It maps raw spreadsheet rows into Article records, derives previews and
// slugs, and serves results from a 24-hour in-memory cache.
package articles

import (
	"regexp"
	"strings"
)

// Article is one normalized content record derived from a spreadsheet row.
// Content holds rendered HTML; Preview is a plain-text summary.
type Article struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Preview  string   `json:"preview"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	URL      string   `json:"url"`
	Date     string   `json:"date"`
}

// Slug returns the final path segment of the article URL, which is its
// lookup key.
func (a Article) Slug() string {
	return SlugOf(a.URL)
}

var (
	nonSlugChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	repeatedDash = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a title: lowercase, punctuation stripped,
// whitespace collapsed to single hyphens, edge hyphens trimmed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "-")
	s = repeatedDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugOf extracts the final path segment from a bare slug or a path
// containing one.
func SlugOf(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
