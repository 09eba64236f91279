// Package tasksrepo provides access to task storage.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// ErrNotFound is returned when no task carries the requested id.
var ErrNotFound = errors.New("task not found")

// Storer defines the data storage interface for Task.
type Storer interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, nt NewTask) (Task, error)
	Delete(ctx context.Context, id int) (Task, error)
	Toggle(ctx context.Context, id int) (Task, error)
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns all tasks in insertion order.
func (r *Repository) List(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create stores the draft with completed=false and returns the task
// including its assigned id.
func (r *Repository) Create(ctx context.Context, nt NewTask) (Task, error) {
	task, err := r.storer.Create(ctx, nt)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "id", task.ID)
	return task, nil
}

// Delete removes the task with the given id and returns it.
func (r *Repository) Delete(ctx context.Context, id int) (Task, error) {
	task, err := r.storer.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("delete task %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "task deleted", "id", task.ID)
	return task, nil
}

// Toggle flips the completed flag exactly once and returns the refreshed
// task.
func (r *Repository) Toggle(ctx context.Context, id int) (Task, error) {
	task, err := r.storer.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("toggle task %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "task toggled", "id", task.ID, "completed", task.Completed)
	return task, nil
}
