package ops

import (
	"fmt"

	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// IncinerateOutcome is the result kind of Incinerate. None of them are errors.
type IncinerateOutcome string

const (
	OutcomeCleared      IncinerateOutcome = "cleared"
	OutcomeAlreadyEmpty IncinerateOutcome = "already_empty"
	OutcomeAborted      IncinerateOutcome = "aborted"
)

// IncinerateInput contains parameters for the Incinerate operation.
type IncinerateInput struct {
	// Confirm is asked only when the trash holds something.
	// A nil Confirm counts as declined.
	Confirm func() (bool, error)
}

// IncinerateOutput contains the result of the Incinerate operation.
type IncinerateOutput struct {
	Outcome IncinerateOutcome `json:"outcome"`
	Burned  int               `json:"burned"`
	Message string            `json:"message"`
}

// Incinerate permanently empties the trash after confirmation.
func Incinerate(store *storage.Store, input IncinerateInput) (*IncinerateOutput, error) {
	trash := store.LoadTrash()

	if len(trash) == 0 {
		return &IncinerateOutput{
			Outcome: OutcomeAlreadyEmpty,
			Message: "Trash is already empty",
		}, nil
	}

	confirmed := false
	if input.Confirm != nil {
		var err error
		confirmed, err = input.Confirm()
		if err != nil {
			return nil, errors.NewInternal(fmt.Errorf("confirmation failed: %w", err))
		}
	}
	if !confirmed {
		return &IncinerateOutput{
			Outcome: OutcomeAborted,
			Message: "Aborted",
		}, nil
	}

	if err := store.SaveTrash([]note.Note{}); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &IncinerateOutput{
		Outcome: OutcomeCleared,
		Burned:  len(trash),
		Message: formatIncinerateMessage(len(trash)),
	}, nil
}

// formatIncinerateMessage creates a human-readable message for a cleared trash.
func formatIncinerateMessage(count int) string {
	noteWord := "note"
	if count > 1 {
		noteWord = "notes"
	}
	return fmt.Sprintf("Permanently destroyed %d %s", count, noteWord)
}
