package ops

import (
	"testing"

	"github.com/hpungsan/zotter/internal/errors"
)

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "", "")
	mustAdd(t, store, "b", "", "")
	mustAdd(t, store, "c", "", "")
	mustAdd(t, store, "d", "", "")

	output, err := Delete(store, DeleteInput{Index: 2})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if output.Index != 2 {
		t.Errorf("Index = %d, want 2", output.Index)
	}
	if output.TrashIndex != 1 {
		t.Errorf("TrashIndex = %d, want 1", output.TrashIndex)
	}
	if output.Note.Title != "b" {
		t.Errorf("Note.Title = %q, want %q", output.Note.Title, "b")
	}

	// Later notes shift down by one
	assertTitles(t, "active", store.LoadNotes(), "a", "c", "d")
	assertTitles(t, "trash", store.LoadTrash(), "b")
}

func TestDelete_AppendsToExistingTrash(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "", "")
	mustAdd(t, store, "b", "", "")
	mustAdd(t, store, "c", "", "")

	if _, err := Delete(store, DeleteInput{Index: 1}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	output, err := Delete(store, DeleteInput{Index: 1})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if output.TrashIndex != 2 {
		t.Errorf("TrashIndex = %d, want 2", output.TrashIndex)
	}

	assertTitles(t, "active", store.LoadNotes(), "c")
	assertTitles(t, "trash", store.LoadTrash(), "a", "b")
}

func TestDelete_KeepsDate(t *testing.T) {
	store := newTestStore(t)
	writeRaw(t, store.Paths().Notes, `[{"title": "old", "content": "c", "category": "K", "date": "1999-12-31 23:59"}]`)

	if _, err := Delete(store, DeleteInput{Index: 1}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	trash := store.LoadTrash()
	if len(trash) != 1 || trash[0].Date != "1999-12-31 23:59" || trash[0].Category != "K" {
		t.Errorf("trash = %#v", trash)
	}
}

func TestDelete_NotFound(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "", "")
	mustAdd(t, store, "b", "", "")
	if _, err := Delete(store, DeleteInput{Index: 2}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	before := snapshot(t, store)

	for _, index := range []int{0, -1, 2, 5} {
		_, err := Delete(store, DeleteInput{Index: index})
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("Delete(%d) err = %v, want NOT_FOUND", index, err)
		}
	}

	if after := snapshot(t, store); after != before {
		t.Errorf("storage files changed after out-of-range Delete:\nbefore %q\nafter  %q", before, after)
	}
}

func TestDelete_NotFoundDoesNotCreateFiles(t *testing.T) {
	store := newTestStore(t)

	_, err := Delete(store, DeleteInput{Index: 1})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}

	if s := snapshot(t, store); s != [2]string{"", ""} {
		t.Errorf("files written on failed Delete: %q", s)
	}
}
