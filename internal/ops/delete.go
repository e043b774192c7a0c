package ops

import (
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Index int // 1-based position in the active notes
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Index      int       `json:"index"`       // former active position
	TrashIndex int       `json:"trash_index"` // new position in the trash
	Note       note.Note `json:"note"`
}

// Delete moves an active note to the end of the trash.
// An out-of-range index leaves both files untouched.
func Delete(store *storage.Store, input DeleteInput) (*DeleteOutput, error) {
	notes := store.LoadNotes()
	trash := store.LoadTrash()

	i, err := ResolveIndex(errors.CollectionActive, input.Index, len(notes))
	if err != nil {
		return nil, err
	}

	notes, removed := removeAt(notes, i)
	trash = append(trash, removed)

	if err := store.SaveNotes(notes); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := store.SaveTrash(trash); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &DeleteOutput{
		Index:      input.Index,
		TrashIndex: len(trash),
		Note:       removed,
	}, nil
}
