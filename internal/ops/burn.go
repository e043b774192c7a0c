package ops

import (
	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// BurnInput contains parameters for the Burn operation.
type BurnInput struct {
	Index int // 1-based position in the trash
}

// BurnOutput contains the result of the Burn operation.
type BurnOutput struct {
	TrashIndex int       `json:"trash_index"`
	Note       note.Note `json:"note"`
}

// Burn permanently destroys a single trashed note. The active notes are never read or written.
func Burn(store *storage.Store, input BurnInput) (*BurnOutput, error) {
	trash := store.LoadTrash()

	i, err := ResolveIndex(errors.CollectionTrash, input.Index, len(trash))
	if err != nil {
		return nil, err
	}

	trash, removed := removeAt(trash, i)

	if err := store.SaveTrash(trash); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &BurnOutput{
		TrashIndex: input.Index,
		Note:       removed,
	}, nil
}
