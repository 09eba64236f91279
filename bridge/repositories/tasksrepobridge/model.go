package tasksrepobridge

import (
	"fmt"

	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
)

// CreateTaskInput is the request body for creating a task. Completed always
// starts false; a client-supplied value is ignored.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks the presence constraints.
func (c CreateTaskInput) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func (c CreateTaskInput) toNewTask() tasksrepo.NewTask {
	return tasksrepo.NewTask{
		Title:       c.Title,
		Description: c.Description,
	}
}
