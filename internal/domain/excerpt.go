package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ExcerptLength is the rune limit of a derived excerpt.
const ExcerptLength = 150

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// DisplayExcerpt returns the stored excerpt, or one derived from the content
// with markup stripped and truncated to ExcerptLength runes.
func DisplayExcerpt(p *Post) string {
	if p.Excerpt != nil && strings.TrimSpace(*p.Excerpt) != "" {
		return *p.Excerpt
	}

	text := tagPattern.ReplaceAllString(p.Content, " ")
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}

	runes := []rune(text)
	return strings.TrimRight(string(runes[:ExcerptLength]), " ") + "..."
}
