package ops

import "github.com/hpungsan/zotter/internal/storage"

// List returns the active notes in stored order.
func List(store *storage.Store) (*ListOutput, error) {
	notes := store.LoadNotes()
	return &ListOutput{
		Items: items(notes),
		Total: len(notes),
	}, nil
}

// Trash returns the trashed notes in the order they were deleted.
func Trash(store *storage.Store) (*ListOutput, error) {
	trash := store.LoadTrash()
	return &ListOutput{
		Items: items(trash),
		Total: len(trash),
	}, nil
}
