// Package tasksmemstore implements tasksrepo.Storer with an in-memory slice.
package tasksmemstore

import (
	"context"
	"sync"

	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Store holds the task collection behind a mutex.
type Store struct {
	log *logger.Logger

	mu    sync.Mutex
	tasks []tasksrepo.Task
}

// NewStore creates an empty in-memory store.
func NewStore(log *logger.Logger) *Store {
	return &Store{log: log}
}

// NewStoreWithTasks creates a store pre-populated with fixture rows.
func NewStoreWithTasks(log *logger.Logger, tasks []tasksrepo.Task) *Store {
	s := NewStore(log)
	s.tasks = append(s.tasks, tasks...)
	return s
}

// List returns all tasks in insertion order. It never fails.
func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]tasksrepo.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Create assigns the next id (max existing + 1, or 1 when empty), appends
// with completed=false, and returns the stored task.
func (s *Store) Create(ctx context.Context, nt tasksrepo.NewTask) (tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := tasksrepo.Task{
		ID:          s.nextID(),
		Title:       nt.Title,
		Description: nt.Description,
		Completed:   false,
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Delete removes the task with the given id and returns it, or
// tasksrepo.ErrNotFound when the id is absent.
func (s *Store) Delete(ctx context.Context, id int) (tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return task, nil
		}
	}

	return tasksrepo.Task{}, tasksrepo.ErrNotFound
}

// Toggle flips the completed flag and returns the refreshed task.
func (s *Store) Toggle(ctx context.Context, id int) (tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.tasks[i], nil
		}
	}

	return tasksrepo.Task{}, tasksrepo.ErrNotFound
}

func (s *Store) nextID() int {
	max := 0
	for _, task := range s.tasks {
		if task.ID > max {
			max = task.ID
		}
	}
	return max + 1
}
