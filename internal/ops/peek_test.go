package ops

import (
	"testing"

	"github.com/hpungsan/zotter/internal/errors"
)

func TestPeek(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "alpha body", "X")
	mustAdd(t, store, "b", "beta body", "Y")

	output, err := Peek(store, PeekInput{Index: 2})
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if output.Index != 2 {
		t.Errorf("Index = %d, want 2", output.Index)
	}
	if output.Note.Title != "b" || output.Note.Content != "beta body" || output.Note.Category != "Y" {
		t.Errorf("Note = %#v", output.Note)
	}
}

func TestPeek_NotFound(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "only", "", "")
	before := snapshot(t, store)

	for _, index := range []int{0, -3, 2, 100} {
		_, err := Peek(store, PeekInput{Index: index})
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("Peek(%d) err = %v, want NOT_FOUND", index, err)
		}
	}

	if after := snapshot(t, store); after != before {
		t.Error("storage files changed after out-of-range Peek")
	}
}

func TestPeek_EmptyNotebook(t *testing.T) {
	store := newTestStore(t)

	_, err := Peek(store, PeekInput{Index: 1})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}
