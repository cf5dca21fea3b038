package task

import (
	"sync"
)

// Store provides in-memory keyed storage for tasks and owns identifier
// allocation. It is safe for concurrent use; records are stored and
// returned by value so the internal map can never be mutated through an
// escaped reference.
type Store struct {
	mu     sync.RWMutex
	tasks  map[int64]Task
	nextID int64
}

// NewStore creates an empty task store. Each store owns its own record
// set and counter, so independent stores (one per test, for example)
// never interfere.
func NewStore() *Store {
	return &Store{
		tasks: make(map[int64]Task),
	}
}

// FindAll returns a snapshot of all current records. Iteration order is
// not meaningful.
func (s *Store) FindAll() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result = append(result, t)
	}
	return result
}

// FindByID looks up a task by id. Absence is reported via the boolean,
// never as an error.
func (s *Store) FindByID(id int64) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, found := s.tasks[id]
	return t, found
}

// Save inserts or replaces a record. A task with a zero ID receives the
// next identifier; ids start at 1, only ever increase, and are never
// reused even after deletion. Allocation and insert happen under one
// lock, so racing saves can neither duplicate ids nor lose writes.
func (s *Store) Save(t Task) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		s.nextID++
		t.ID = s.nextID
	}
	s.tasks[t.ID] = t
	return t
}

// DeleteByID removes the record if present and reports whether a
// removal occurred. Deleting an absent id is not an error.
func (s *Store) DeleteByID(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.tasks[id]; !found {
		return false
	}
	delete(s.tasks, id)
	return true
}

// ExistsByID reports whether a record with the given id is stored.
func (s *Store) ExistsByID(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.tasks[id]
	return found
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

// DeleteAll clears all records. The id counter is left untouched, so
// ids are not reused across a clear.
func (s *Store) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.tasks)
}
