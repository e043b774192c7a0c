package note

import "strings"

// Matches reports whether query occurs in the title or content, ignoring case.
// An empty query matches every note.
func (n Note) Matches(query string) bool {
	q := Fold(query)
	return strings.Contains(Fold(n.Title), q) || strings.Contains(Fold(n.Content), q)
}

// Fold lowercases s for case-insensitive comparison.
func Fold(s string) string {
	return strings.ToLower(s)
}

// SearchText is the text fuzzy matching runs against.
func (n Note) SearchText() string {
	return n.Title + " " + n.Content
}
