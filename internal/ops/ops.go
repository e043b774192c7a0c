package ops

import (
	"time"

	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Item pairs a note with its 1-based position in the collection it was read from.
type Item struct {
	Index int `json:"index"`
	note.Note
}

// ListOutput contains the result of List and Trash.
type ListOutput struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// ResolveIndex maps a 1-based ordinal to a slice position in a collection of
// length n. Every index-addressed operation goes through here, so a stable-ID
// scheme only has to replace this function.
func ResolveIndex(collection string, index, n int) (int, error) {
	if index < 1 || index > n {
		return 0, errors.NewNotFound(collection, index)
	}
	return index - 1, nil
}

// removeAt returns notes without position i and the removed note.
// Later notes shift down by one.
func removeAt(notes []note.Note, i int) ([]note.Note, note.Note) {
	removed := notes[i]
	out := make([]note.Note, 0, len(notes)-1)
	out = append(out, notes[:i]...)
	out = append(out, notes[i+1:]...)
	return out, removed
}

// items numbers notes from 1 in stored order.
func items(notes []note.Note) []Item {
	out := make([]Item, len(notes))
	for i, n := range notes {
		out[i] = Item{Index: i + 1, Note: n}
	}
	return out
}
