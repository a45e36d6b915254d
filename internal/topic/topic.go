// Package topic post-processes model-produced topic labels. The model is
// asked for a short Title Case line, but its output is never trusted: the
// constraints are enforced here deterministically.
package topic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWords is the hard cap on topic length.
const MaxWords = 6

// Normalize turns raw model output into a topic label of at most MaxWords
// title-cased words: first line only, surrounding quotes and trailing
// punctuation removed, first letter of every word capitalized. Words that
// already start with an uppercase rune (including acronyms) are left intact.
func Normalize(raw string) string {
	line := firstLine(raw)
	line = strings.Trim(line, `'"` + "“”‘’")
	line = strings.TrimRight(line, ".!?")
	line = strings.TrimSpace(line)

	words := strings.Fields(line)
	if len(words) > MaxWords {
		words = words[:MaxWords]
	}
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
