package task

import "time"

// Service is the policy layer over the Store. It owns timestamp
// bookkeeping and the completion transition; it holds no state of its
// own beyond the store reference.
//
// Read-modify-write operations (UpdateTask, CompleteTask) are not
// atomic across the lookup and the save: two racing writers to the
// same id resolve as last write wins.
type Service struct {
	store *Store
}

// NewService creates a service backed by the given store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// GetAllTasks returns a snapshot of all tasks.
func (s *Service) GetAllTasks() []Task {
	return s.store.FindAll()
}

// GetTaskByID returns the task with the given id, or false if absent.
func (s *Service) GetTaskByID(id int64) (Task, bool) {
	return s.store.FindByID(id)
}

// CreateTask stores a new task. Any caller-supplied id is discarded so
// the store allocates one; CreatedAt and UpdatedAt are set to the same
// instant.
func (s *Service) CreateTask(t Task) Task {
	now := time.Now()
	t.ID = 0
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.store.Save(t)
}

// UpdateTask overwrites Title, Description and Completed from patch
// onto the existing record, preserving its id and CreatedAt, and
// refreshes UpdatedAt. Returns false without side effects when no
// record exists for id.
func (s *Service) UpdateTask(id int64, patch Task) (Task, bool) {
	existing, found := s.store.FindByID(id)
	if !found {
		return Task{}, false
	}

	existing.Title = patch.Title
	existing.Description = patch.Description
	existing.Completed = patch.Completed
	existing.UpdatedAt = time.Now()
	return s.store.Save(existing), true
}

// DeleteTask removes the task and reports whether a removal occurred.
func (s *Service) DeleteTask(id int64) bool {
	return s.store.DeleteByID(id)
}

// CompleteTask marks the task completed and refreshes UpdatedAt.
// Completing an already-completed task is valid and still bumps
// UpdatedAt: complete sets state, it does not guard a transition.
// Returns false when no record exists for id.
func (s *Service) CompleteTask(id int64) (Task, bool) {
	t, found := s.store.FindByID(id)
	if !found {
		return Task{}, false
	}

	t.Completed = true
	t.UpdatedAt = time.Now()
	return s.store.Save(t), true
}

// TaskCount returns the number of stored tasks.
func (s *Service) TaskCount() int {
	return s.store.Count()
}
