package ops

import (
	"testing"

	"github.com/hpungsan/zotter/internal/errors"
)

func TestRecover_AppendsToEnd(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "", "")
	mustAdd(t, store, "b", "", "")
	mustAdd(t, store, "c", "", "")

	// a was first; after recover it comes back last
	if _, err := Delete(store, DeleteInput{Index: 1}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	output, err := Recover(store, RecoverInput{Index: 1})
	if err != nil {
		t.Fatalf("Recover failed: %v", err)
	}
	if output.Note.Title != "a" {
		t.Errorf("Note.Title = %q, want %q", output.Note.Title, "a")
	}
	if output.TrashIndex != 1 {
		t.Errorf("TrashIndex = %d, want 1", output.TrashIndex)
	}
	if output.Index != 3 {
		t.Errorf("Index = %d, want 3", output.Index)
	}

	assertTitles(t, "active", store.LoadNotes(), "b", "c", "a")
	assertTitles(t, "trash", store.LoadTrash())
}

func TestRecover_ShiftsTrash(t *testing.T) {
	store := newTestStore(t)
	for _, title := range []string{"a", "b", "c", "d"} {
		mustAdd(t, store, title, "", "")
	}
	for range 3 {
		if _, err := Delete(store, DeleteInput{Index: 1}); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
	}
	assertTitles(t, "trash", store.LoadTrash(), "a", "b", "c")

	if _, err := Recover(store, RecoverInput{Index: 2}); err != nil {
		t.Fatalf("Recover failed: %v", err)
	}

	assertTitles(t, "trash", store.LoadTrash(), "a", "c")
	assertTitles(t, "active", store.LoadNotes(), "d", "b")
}

func TestRecover_NotFound(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "", "")
	mustAdd(t, store, "b", "", "")
	if _, err := Delete(store, DeleteInput{Index: 1}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	before := snapshot(t, store)

	for _, index := range []int{0, -4, 2} {
		_, err := Recover(store, RecoverInput{Index: index})
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("Recover(%d) err = %v, want NOT_FOUND", index, err)
		}
	}

	if after := snapshot(t, store); after != before {
		t.Error("storage files changed after out-of-range Recover")
	}
}
