package task

import (
	"sort"
	"sync"
	"testing"
)

func TestStore_SaveAssignsSequentialIDs(t *testing.T) {
	store := NewStore()

	first := store.Save(Task{Title: "first"})
	if first.ID != 1 {
		t.Errorf("expected first id 1, got %d", first.ID)
	}

	second := store.Save(Task{Title: "second"})
	if second.ID != 2 {
		t.Errorf("expected second id 2, got %d", second.ID)
	}

	if store.Count() != 2 {
		t.Errorf("expected count 2, got %d", store.Count())
	}
}

func TestStore_SaveExistingIDReplaces(t *testing.T) {
	store := NewStore()

	saved := store.Save(Task{Title: "original"})
	saved.Title = "replaced"
	replaced := store.Save(saved)

	if replaced.ID != saved.ID {
		t.Errorf("expected id %d preserved, got %d", saved.ID, replaced.ID)
	}
	if store.Count() != 1 {
		t.Errorf("expected count 1 after replace, got %d", store.Count())
	}

	found, ok := store.FindByID(saved.ID)
	if !ok {
		t.Fatal("expected task to be found after replace")
	}
	if found.Title != "replaced" {
		t.Errorf("expected title %q, got %q", "replaced", found.Title)
	}
}

func TestStore_FindByID(t *testing.T) {
	store := NewStore()
	saved := store.Save(Task{Title: "lookup", Description: "by id"})

	t.Run("existing task", func(t *testing.T) {
		found, ok := store.FindByID(saved.ID)
		if !ok {
			t.Fatal("expected task to be found")
		}
		if found.ID != saved.ID {
			t.Errorf("expected id %d, got %d", saved.ID, found.ID)
		}
		if found.Title != "lookup" || found.Description != "by id" {
			t.Errorf("unexpected field values: %+v", found)
		}
	})

	t.Run("non-existent task", func(t *testing.T) {
		_, ok := store.FindByID(999)
		if ok {
			t.Error("expected absence for unknown id")
		}
	})
}

func TestStore_FindAll(t *testing.T) {
	store := NewStore()

	t.Run("empty store", func(t *testing.T) {
		tasks := store.FindAll()
		if len(tasks) != 0 {
			t.Errorf("expected 0 tasks, got %d", len(tasks))
		}
	})

	t.Run("snapshot does not expose internals", func(t *testing.T) {
		saved := store.Save(Task{Title: "immutable"})

		tasks := store.FindAll()
		if len(tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(tasks))
		}

		// Mutating the snapshot must not affect the stored record.
		tasks[0].Title = "mutated"

		found, _ := store.FindByID(saved.ID)
		if found.Title != "immutable" {
			t.Errorf("snapshot mutation leaked into store: %q", found.Title)
		}
	})
}

func TestStore_DeleteByID(t *testing.T) {
	store := NewStore()
	saved := store.Save(Task{Title: "doomed"})

	if !store.DeleteByID(saved.ID) {
		t.Error("expected delete of existing task to return true")
	}
	if store.ExistsByID(saved.ID) {
		t.Error("expected task to be gone after delete")
	}

	t.Run("idempotent on repeat", func(t *testing.T) {
		if store.DeleteByID(saved.ID) {
			t.Error("expected repeated delete to return false")
		}
		if store.Count() != 0 {
			t.Errorf("expected count unaffected, got %d", store.Count())
		}
	})

	t.Run("never-existing id", func(t *testing.T) {
		if store.DeleteByID(12345) {
			t.Error("expected delete of unknown id to return false")
		}
	})
}

func TestStore_IDsNotReusedAfterDelete(t *testing.T) {
	store := NewStore()

	first := store.Save(Task{Title: "first"})
	store.DeleteByID(first.ID)

	second := store.Save(Task{Title: "second"})
	if second.ID <= first.ID {
		t.Errorf("expected id beyond %d after delete, got %d", first.ID, second.ID)
	}
}

func TestStore_ExistsByID(t *testing.T) {
	store := NewStore()
	saved := store.Save(Task{Title: "exists"})

	if !store.ExistsByID(saved.ID) {
		t.Error("expected ExistsByID true for stored task")
	}
	if store.ExistsByID(saved.ID + 1) {
		t.Error("expected ExistsByID false for unknown id")
	}
}

func TestStore_DeleteAll(t *testing.T) {
	store := NewStore()
	store.Save(Task{Title: "a"})
	store.Save(Task{Title: "b"})

	store.DeleteAll()

	if store.Count() != 0 {
		t.Errorf("expected empty store, got count %d", store.Count())
	}

	// Counter keeps going; cleared ids are not handed out again.
	next := store.Save(Task{Title: "c"})
	if next.ID != 3 {
		t.Errorf("expected id 3 after clearing two tasks, got %d", next.ID)
	}
}

func TestStore_ConcurrentSaves(t *testing.T) {
	const (
		writers        = 50
		savesPerWriter = 20
	)

	store := NewStore()

	var wg sync.WaitGroup
	ids := make(chan int64, writers*savesPerWriter)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < savesPerWriter; i++ {
				saved := store.Save(Task{Title: "concurrent"})
				ids <- saved.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	total := writers * savesPerWriter
	if store.Count() != total {
		t.Errorf("expected %d stored tasks, got %d", total, store.Count())
	}

	seen := make([]int64, 0, total)
	for id := range ids {
		seen = append(seen, id)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })

	// Ids must be pairwise distinct and form the dense sequence
	// 1..total: the counter never skips and never double-allocates.
	for i, id := range seen {
		if id != int64(i+1) {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, id)
		}
	}
}

func TestStore_ConcurrentSaveAndDelete(t *testing.T) {
	store := NewStore()

	// Pre-populate records for the deleters.
	const pre = 100
	for i := 0; i < pre; i++ {
		store.Save(Task{Title: "seed"})
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				store.Save(Task{Title: "new"})
			}
		}()
	}
	for id := int64(1); id <= pre; id++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.DeleteByID(id)
			store.FindByID(id)
		}(id)
	}
	wg.Wait()

	// All seeds deleted, all new saves retained.
	if store.Count() != 100 {
		t.Errorf("expected 100 surviving tasks, got %d", store.Count())
	}
}
