package utils

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+(&\w+)?`)

// TitleCase capitalizes each word of a category name for display.
// Ampersand-joined pairs like "defi&nfts" become "Defi & Nfts".
func TitleCase(s string) string {
	return wordPattern.ReplaceAllStringFunc(s, func(word string) string {
		if strings.Contains(word, "&") {
			parts := strings.Split(word, "&")
			for i, p := range parts {
				parts[i] = capitalize(p)
			}
			return strings.Join(parts, " & ")
		}
		return capitalize(word)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
