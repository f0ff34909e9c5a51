package articles

import (
	"fmt"
	"strings"
	"time"
)

// headerLabel is the literal in the second cell of the sheet's header row.
// The read range already skips row 1, but a re-inserted header is still
// detected and dropped.
const headerLabel = "Article Name"

// Sheet columns, A through G.
const (
	colID = iota
	colTitle
	colContent
	colCategory
	colTags
	colSlug
	colDate
)

const dateLayout = "2006-01-02"

// dropHeaderRow removes the leading row when it is the sheet's column
// header rather than article data.
func dropHeaderRow(rows [][]string) [][]string {
	if len(rows) > 0 && cell(rows[0], colTitle) == headerLabel {
		return rows[1:]
	}
	return rows
}

// fromRow maps one spreadsheet row to an Article. Any column may be absent:
// the id falls back to a positional synthetic one, the slug is derived from
// the title, and the date defaults to the fetch date.
func fromRow(row []string, index int, now time.Time) Article {
	title := cell(row, colTitle)
	content := cell(row, colContent)

	id := cell(row, colID)
	if id == "" {
		id = fmt.Sprintf("article-%d", index)
	}

	slug := cell(row, colSlug)
	if slug == "" {
		slug = Slugify(title)
	}

	date := cell(row, colDate)
	if date == "" {
		date = now.Format(dateLayout)
	}

	return Article{
		ID:       id,
		Title:    title,
		Content:  RenderMarkdown(content),
		Preview:  ContentPreview(content),
		Category: cell(row, colCategory),
		Tags:     splitTags(cell(row, colTags)),
		URL:      slug,
		Date:     date,
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

// parseDate parses an article date for sorting. Unparseable dates sort as
// the fallback, per the mapping defaults.
func parseDate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
