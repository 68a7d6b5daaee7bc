package store

import (
	"errors"
	"testing"

	"kidreel/types"
)

func TestMemoryCreateAssignsIncrementingIDs(t *testing.T) {
	m := NewMemory()

	first, err := m.Create(types.Content{Title: "Volcanoes", Subject: "science"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	second, err := m.Create(types.Content{Title: "Fractions", Subject: "math"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
	if first.Status != types.StatusDraft {
		t.Fatalf("default status = %q; want %q", first.Status, types.StatusDraft)
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}
}

func TestMemoryCRUD(t *testing.T) {
	m := NewMemory()
	created, _ := m.Create(types.Content{Title: "Oceans", Subject: "geography"})

	got, err := m.Get(created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != "Oceans" {
		t.Fatalf("Get title = %q", got.Title)
	}

	got.Status = types.StatusCompleted
	got.VideoURL = "/videos/oceans.mp4"
	if err := m.Update(got); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	updated, _ := m.Get(created.ID)
	if updated.Status != types.StatusCompleted || updated.VideoURL != "/videos/oceans.mp4" {
		t.Fatalf("update not persisted: %+v", updated)
	}

	if err := m.Delete(created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := m.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v; want ErrNotFound", err)
	}
}

func TestMemoryNotFound(t *testing.T) {
	m := NewMemory()
	if _, err := m.Get(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v; want ErrNotFound", err)
	}
	if err := m.Update(types.Content{ID: 99}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update missing = %v; want ErrNotFound", err)
	}
	if err := m.Delete(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete missing = %v; want ErrNotFound", err)
	}
}

func TestMemoryListSortedByID(t *testing.T) {
	m := NewMemory()
	for _, title := range []string{"a", "b", "c"} {
		if _, err := m.Create(types.Content{Title: title}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	// Deleting the middle record must not disturb ordering
	if err := m.Delete(2); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	list, err := m.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 3 {
		t.Fatalf("list = %+v; want ids 1, 3", list)
	}
}
