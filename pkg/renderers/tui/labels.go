package tui

import "github.com/goliatone/go-yamlform/internal/labels"

// Label is the default labeler: underscores become spaces and each word is
// title-cased.
func Label(key string) string {
	return labels.Humanize(key)
}

// TabTitle cleans a category key for the section banner by dropping any
// parenthetical suffix, so "Frontend (JS)" shows as "Frontend".
func TabTitle(key string) string {
	return labels.TabTitle(key)
}
