package ops

import (
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// PeekInput contains parameters for the Peek operation.
type PeekInput struct {
	Index int // 1-based position in the active notes
}

// PeekOutput contains the result of the Peek operation.
type PeekOutput struct {
	Index int       `json:"index"`
	Note  note.Note `json:"note"`
}

// Peek returns a single active note by position.
func Peek(store *storage.Store, input PeekInput) (*PeekOutput, error) {
	notes := store.LoadNotes()

	i, err := ResolveIndex(errors.CollectionActive, input.Index, len(notes))
	if err != nil {
		return nil, err
	}

	return &PeekOutput{
		Index: input.Index,
		Note:  notes[i],
	}, nil
}
