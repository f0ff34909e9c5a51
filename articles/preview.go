package articles

import (
	"regexp"
	"strings"
)

const (
	// previewMaxLen is the soft length cap for previews. A preview may run
	// slightly longer to end on a sentence boundary.
	previewMaxLen = 150

	// previewBoundaryRatio is how far into the cap a trailing sentence
	// boundary must sit for truncation to use it instead of an ellipsis.
	previewBoundaryRatio = 0.7

	sentenceDelimiter = ". "
	previewSentences  = 2
)

var (
	headingTags = regexp.MustCompile(`(?is)<h[1-6][^>]*>.*?</h[1-6]>`)
	allTags     = regexp.MustCompile(`<[^>]+>`)
)

// ContentPreview derives a plain-text summary from markdown content: the
// markdown is rendered, heading elements are dropped entirely (they repeat
// the title), remaining tags are stripped, and the first two sentences are
// kept within the length cap.
func ContentPreview(md string) string {
	rendered := RenderMarkdown(md)

	plain := headingTags.ReplaceAllString(rendered, "")
	plain = allTags.ReplaceAllString(plain, "")
	plain = whitespace.ReplaceAllString(plain, " ")
	plain = strings.TrimSpace(plain)

	sentences := strings.Split(plain, sentenceDelimiter)
	if len(sentences) > previewSentences {
		sentences = sentences[:previewSentences]
	}
	preview := strings.Join(sentences, sentenceDelimiter)

	if len(preview) > previewMaxLen-20 {
		if i := strings.LastIndex(preview, "."); i > int(float64(previewMaxLen)*previewBoundaryRatio) {
			preview = preview[:i+1]
		} else {
			preview = truncate(preview, previewMaxLen) + "..."
		}
	}

	return preview
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
