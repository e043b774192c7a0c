package ops

import (
	"os"
	"testing"
)

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestList_Empty(t *testing.T) {
	store := newTestStore(t)

	output, err := List(store)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Total != 0 {
		t.Errorf("Total = %d, want 0", output.Total)
	}
	if output.Items == nil || len(output.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", output.Items)
	}
}

func TestList_Order(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "1", "")
	mustAdd(t, store, "b", "2", "")
	mustAdd(t, store, "c", "3", "")

	output, err := List(store)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Total != 3 {
		t.Fatalf("Total = %d, want 3", output.Total)
	}
	for i, want := range []string{"a", "b", "c"} {
		if output.Items[i].Title != want {
			t.Errorf("Items[%d].Title = %q, want %q", i, output.Items[i].Title, want)
		}
		if output.Items[i].Index != i+1 {
			t.Errorf("Items[%d].Index = %d, want %d", i, output.Items[i].Index, i+1)
		}
	}
}

func TestList_CorruptFileIsEmpty(t *testing.T) {
	store := newTestStore(t)
	writeRaw(t, store.Paths().Notes, `[{"title": `)

	output, err := List(store)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Total != 0 {
		t.Errorf("Total = %d, want 0", output.Total)
	}
}

func TestList_ReadsExistingFile(t *testing.T) {
	store := newTestStore(t)
	writeRaw(t, store.Paths().Notes, `[
    {"title": "legacy", "content": "from disk", "category": "Old", "date": "2020-01-01 00:00"}
]`)

	output, err := List(store)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if output.Total != 1 || output.Items[0].Category != "Old" || output.Items[0].Date != "2020-01-01 00:00" {
		t.Errorf("Items = %#v", output.Items)
	}
}

func TestTrash_Empty(t *testing.T) {
	store := newTestStore(t)

	output, err := Trash(store)
	if err != nil {
		t.Fatalf("Trash failed: %v", err)
	}
	if output.Total != 0 || len(output.Items) != 0 {
		t.Errorf("output = %#v, want empty", output)
	}
}

func TestTrash_DeleteTimeOrder(t *testing.T) {
	store := newTestStore(t)
	mustAdd(t, store, "a", "", "")
	mustAdd(t, store, "b", "", "")
	mustAdd(t, store, "c", "", "")

	// Delete c first, then a: trash follows delete order, not creation order
	if _, err := Delete(store, DeleteInput{Index: 3}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := Delete(store, DeleteInput{Index: 1}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	output, err := Trash(store)
	if err != nil {
		t.Fatalf("Trash failed: %v", err)
	}
	if output.Total != 2 {
		t.Fatalf("Total = %d, want 2", output.Total)
	}
	if output.Items[0].Title != "c" || output.Items[1].Title != "a" {
		t.Errorf("trash = [%q %q], want [c a]", output.Items[0].Title, output.Items[1].Title)
	}
	if output.Items[1].Index != 2 {
		t.Errorf("Items[1].Index = %d, want 2", output.Items[1].Index)
	}
}
