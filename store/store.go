package store

import (
	"errors"
	"sync"
	"time"

	"github.com/acpboloka/apiresttodolist/models"
)

// ErrNotFound is returned when no task matches the requested id.
var ErrNotFound = errors.New("task not found")

// Store owns the in-memory task collection and the counter used to mint new
// ids. Tasks are kept in a slice because insertion order defines list order.
// The HTTP server handles requests concurrently, so every operation takes
// the mutex for the duration of its single mutation.
type Store struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int
}

// New returns a store seeded with one example task, so the next allocated
// id is 2.
func New() *Store {
	return &Store{
		tasks: []models.Task{
			{
				ID:          1,
				Title:       "Learn Go",
				Description: "Work through the basics of building HTTP services",
				Completed:   false,
				CreatedAt:   time.Now(),
			},
		},
		nextID: 2,
	}
}

// List returns a copy of all tasks in insertion order.
func (s *Store) List() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id, or ErrNotFound.
func (s *Store) Get(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}

// Create appends a new task with the next sequential id and returns it.
// Ids are never reused, even after deletes.
func (s *Store) Create(title, description string, completed bool) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Update merges the non-nil fields into the task with the given id and sets
// updatedAt. Id and createdAt are never touched. The merge is
// present-vs-absent, not truthy-vs-falsy: an explicit false or empty string
// is still applied.
func (s *Store) Update(id int, title, description *string, completed *bool) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if title != nil {
			s.tasks[i].Title = *title
		}
		if description != nil {
			s.tasks[i].Description = *description
		}
		if completed != nil {
			s.tasks[i].Completed = *completed
		}
		now := time.Now()
		s.tasks[i].UpdatedAt = &now
		return s.tasks[i], nil
	}
	return models.Task{}, ErrNotFound
}

// Delete removes the task with the given id, preserving the order of the
// remaining tasks, and returns the removed record.
func (s *Store) Delete(id int) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}
