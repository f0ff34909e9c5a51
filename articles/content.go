package articles

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Hard wraps and GFM match what the sheet's authors write against:
// single newlines become <br>, tables and autolinks are supported.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		goldmarkhtml.WithHardWraps(),
		goldmarkhtml.WithUnsafe(),
	),
)

// RenderMarkdown converts markdown text to an HTML fragment. HTML entities
// that leaked into the sheet cells are decoded before parsing.
func RenderMarkdown(text string) string {
	if text == "" {
		return ""
	}

	decoded := html.UnescapeString(text)

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(decoded), &buf); err != nil {
		// goldmark only fails on writer errors, which bytes.Buffer
		// never returns; fall back to the raw text regardless.
		return decoded
	}
	return buf.String()
}

// StripPreviewArtifact removes a leading preview fragment from the full
// content when the two overlap. Sheet rows sometimes repeat the preview at
// the top of the body; the detail view strips it to avoid doubling up.
//
// An exact trimmed-prefix match is tried first, then a comparison of
// entity-decoded, whitespace-collapsed forms.
func StripPreviewArtifact(content, preview string) string {
	if content == "" || preview == "" {
		return strings.TrimSpace(content)
	}

	trimmedContent := strings.TrimSpace(content)
	trimmedPreview := strings.TrimSpace(preview)

	if strings.HasPrefix(trimmedContent, trimmedPreview) {
		return strings.TrimSpace(trimmedContent[len(trimmedPreview):])
	}

	if strings.HasPrefix(decodedPlainText(trimmedContent), decodedPlainText(trimmedPreview)) {
		return strings.TrimSpace(trimmedContent[len(trimmedPreview):])
	}

	return trimmedContent
}

// decodedPlainText normalizes a fragment for comparison: entities decoded,
// whitespace runs collapsed.
func decodedPlainText(s string) string {
	s = html.UnescapeString(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
