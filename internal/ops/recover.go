package ops

import (
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// RecoverInput contains parameters for the Recover operation.
type RecoverInput struct {
	Index int // 1-based position in the trash
}

// RecoverOutput contains the result of the Recover operation.
type RecoverOutput struct {
	TrashIndex int       `json:"trash_index"` // former trash position
	Index      int       `json:"index"`       // new active position (always last)
	Note       note.Note `json:"note"`
}

// Recover moves a trashed note to the end of the active notes.
// Its original active position is not restored.
func Recover(store *storage.Store, input RecoverInput) (*RecoverOutput, error) {
	trash := store.LoadTrash()
	notes := store.LoadNotes()

	i, err := ResolveIndex(errors.CollectionTrash, input.Index, len(trash))
	if err != nil {
		return nil, err
	}

	trash, recovered := removeAt(trash, i)
	notes = append(notes, recovered)

	if err := store.SaveNotes(notes); err != nil {
		return nil, errors.NewInternal(err)
	}
	if err := store.SaveTrash(trash); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &RecoverOutput{
		TrashIndex: input.Index,
		Index:      len(notes),
		Note:       recovered,
	}, nil
}
