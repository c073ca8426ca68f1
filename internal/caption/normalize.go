package caption

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLength is the caption length, in runes, before truncation.
	MaxLength = 500
	// TruncationMarker is appended to truncated captions.
	TruncationMarker = "..."
	// MinLength is the rune count a caption must exceed to count as present.
	MinLength = 10
)

var (
	whitespacePattern = regexp.MustCompile(`(?:[\s\v\p{Z}\x{85}]|\\[nrt])+`)

	// Applied in order; each match becomes a single space.
	artifactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)©.*?\d{4}`),
		regexp.MustCompile(`(?i)midjourney`),
		regexp.MustCompile(`(?i)dall.?e`),
		regexp.MustCompile(`(?i)stable.?diffusion`),
	}
)

// Normalize turns raw OCR output into a display caption. Empty or
// whitespace-only input yields "".
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if !utf8.ValidString(raw) {
		raw = strings.ToValidUTF8(raw, "")
	}

	text := collapseWhitespace(raw)
	text = stripArtifacts(text)
	text = collapseWhitespace(text)
	return truncate(text)
}

// HasCaption reports whether a normalized caption is long enough to count.
func HasCaption(normalized string) bool {
	return utf8.RuneCountInString(normalized) > MinLength
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// stripArtifacts repeats the rule pass until nothing matches, since removing
// one artifact can join its neighbours into another.
func stripArtifacts(text string) string {
	for {
		next := text
		for _, pattern := range artifactPatterns {
			next = pattern.ReplaceAllString(next, " ")
		}
		next = collapseWhitespace(next)
		if next == text {
			return next
		}
		text = next
	}
}

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= MaxLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:MaxLength]) + TruncationMarker
}
