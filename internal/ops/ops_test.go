package ops

import (
	"os"
	"testing"
	"time"

	"github.com/hpungsan/zotter/internal/errors"
	"github.com/hpungsan/zotter/internal/note"
	"github.com/hpungsan/zotter/internal/storage"
)

// newTestStore creates a store over a temporary home directory.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(storage.DefaultPaths(t.TempDir()), nil)
}

// setClock pins timeNow for the duration of the test.
func setClock(t *testing.T, now time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = old })
}

// mustAdd adds a note or fails the test.
func mustAdd(t *testing.T, store *storage.Store, title, content, category string) {
	t.Helper()
	if _, err := Add(store, AddInput{Title: title, Content: content, Category: category}); err != nil {
		t.Fatalf("Add(%q) failed: %v", title, err)
	}
}

// titles extracts titles in order.
func titles(notes []note.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func assertTitles(t *testing.T, what string, notes []note.Note, want ...string) {
	t.Helper()
	got := titles(notes)
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", what, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s = %v, want %v", what, got, want)
		}
	}
}

// snapshot returns the raw bytes of both storage files ("" when missing).
func snapshot(t *testing.T, store *storage.Store) [2]string {
	t.Helper()
	var out [2]string
	for i, p := range []string{store.Paths().Notes, store.Paths().Trash} {
		data, err := os.ReadFile(p)
		if err != nil && !os.IsNotExist(err) {
			t.Fatalf("ReadFile(%s) failed: %v", p, err)
		}
		out[i] = string(data)
	}
	return out
}

func TestResolveIndex(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		n       int
		want    int
		wantErr bool
	}{
		{"first", 1, 3, 0, false},
		{"last", 3, 3, 2, false},
		{"zero", 0, 3, 0, true},
		{"negative", -1, 3, 0, true},
		{"past end", 4, 3, 0, true},
		{"empty collection", 1, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveIndex(errors.CollectionActive, tt.index, tt.n)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrNotFound) {
					t.Fatalf("err = %v, want NOT_FOUND", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveIndex_ReportsIndex(t *testing.T) {
	_, err := ResolveIndex(errors.CollectionTrash, 7, 2)

	zErr, ok := err.(*errors.ZotterError)
	if !ok {
		t.Fatalf("err = %T, want *errors.ZotterError", err)
	}
	if zErr.Message != "trash item 7 not found" {
		t.Errorf("Message = %q", zErr.Message)
	}
	if zErr.Details["index"] != 7 {
		t.Errorf("Details[index] = %v, want 7", zErr.Details["index"])
	}
}

func TestRemoveAt_DoesNotAliasInput(t *testing.T) {
	in := []note.Note{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	out, removed := removeAt(in, 1)

	if removed.Title != "b" {
		t.Errorf("removed = %q, want %q", removed.Title, "b")
	}
	assertTitles(t, "out", out, "a", "c")
	assertTitles(t, "in", in, "a", "b", "c")
}
