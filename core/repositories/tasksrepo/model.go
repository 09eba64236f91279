package tasksrepo

// Task is the main entity type. The store assigns the id and owns the
// completed flag transitions.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewTask contains the fields for creating a task. Completed always starts
// false.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
