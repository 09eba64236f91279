package restclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
)

// TasksService is the gateway for the tasks resource.
type TasksService struct {
	client *Client
}

// List fetches all tasks.
func (s *TasksService) List(ctx context.Context) ([]tasksrepo.Task, error) {
	var tasks []tasksrepo.Task
	if err := s.client.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create submits the draft and returns the stored task with its assigned id.
func (s *TasksService) Create(ctx context.Context, nt tasksrepo.NewTask) (tasksrepo.Task, error) {
	var task tasksrepo.Task
	if err := s.client.do(ctx, http.MethodPost, "/api/tasks", nt, &task); err != nil {
		return tasksrepo.Task{}, err
	}
	return task, nil
}

// Toggle flips the completed flag of the task with the given id.
func (s *TasksService) Toggle(ctx context.Context, id int) (tasksrepo.Task, error) {
	var task tasksrepo.Task
	path := fmt.Sprintf("/api/tasks/%d", id)
	if err := s.client.do(ctx, http.MethodPatch, path, nil, &task); err != nil {
		return tasksrepo.Task{}, err
	}
	return task, nil
}

// Delete removes the task by id and returns the removed entity.
func (s *TasksService) Delete(ctx context.Context, id int) (tasksrepo.Task, error) {
	var task tasksrepo.Task
	path := fmt.Sprintf("/api/tasks/%d", id)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, &task); err != nil {
		return tasksrepo.Task{}, err
	}
	return task, nil
}
