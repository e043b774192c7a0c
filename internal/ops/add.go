package ops

import (
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Title    string
	Content  string
	Category string // optional, default: "General"
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	Index int       `json:"index"`
	Note  note.Note `json:"note"`
}

// Add stamps a new note with the current time and appends it to the active notes.
func Add(store *storage.Store, input AddInput) (*AddOutput, error) {
	notes := store.LoadNotes()

	n := note.New(input.Title, input.Content, input.Category, timeNow())
	notes = append(notes, n)

	if err := store.SaveNotes(notes); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &AddOutput{
		Index: len(notes),
		Note:  n,
	}, nil
}
