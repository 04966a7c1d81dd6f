// Package labels turns raw template keys into human readable text shared by
// the terminal and HTML renderers.
package labels

import (
	"strings"
	"unicode"
)

// Humanize converts a raw mapping key into display text: underscores become
// spaces and each word is title-cased.
func Humanize(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// TabTitle cleans a category key for display by dropping any parenthetical
// suffix, so "Frontend (JS)" shows as "Frontend".
func TabTitle(key string) string {
	name, _, _ := strings.Cut(key, "(")
	return strings.TrimSpace(name)
}
