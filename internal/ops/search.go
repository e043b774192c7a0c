package ops

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Query string
	Fuzzy bool // match as a fuzzy subsequence instead of a substring
}

// SearchOutput contains the result of the Search operation.
type SearchOutput struct {
	Query string `json:"query"`
	Items []Item `json:"items"`
}

// Search scans the active notes for query in title or content, ignoring case.
// Matches keep their active-order position so they stay addressable by
// Peek and Delete. No match is an empty result, not an error.
func Search(store *storage.Store, input SearchInput) (*SearchOutput, error) {
	notes := store.LoadNotes()

	var matched []Item
	if input.Fuzzy && input.Query != "" {
		matched = fuzzyMatch(notes, input.Query)
	} else {
		matched = make([]Item, 0)
		for i, n := range notes {
			if n.Matches(input.Query) {
				matched = append(matched, Item{Index: i + 1, Note: n})
			}
		}
	}

	return &SearchOutput{
		Query: input.Query,
		Items: matched,
	}, nil
}

// noteSource adapts notes to fuzzy.Source.
type noteSource []note.Note

func (s noteSource) String(i int) string { return note.Fold(s[i].SearchText()) }
func (s noteSource) Len() int            { return len(s) }

// fuzzyMatch ranks by fuzzy score, then restores active order.
func fuzzyMatch(notes []note.Note, query string) []Item {
	matches := fuzzy.FindFrom(note.Fold(query), noteSource(notes))

	out := make([]Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, Item{Index: m.Index + 1, Note: notes[m.Index]})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Index < out[b].Index })
	return out
}
