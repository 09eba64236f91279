// Package taskspgxstore implements tasksrepo.Storer against the tasks table.
package taskspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/sdk/logger"
	"github.com/OreBoia/my-rest-app/sdk/validation"
)

// Store issues task statements against the pgx pool.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a pgx-backed task store.
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// dbTask mirrors the tasks row; description is nullable in the schema.
type dbTask struct {
	ID          int
	Title       string
	Description *string
	Completed   bool
}

func toTask(db dbTask) tasksrepo.Task {
	return tasksrepo.Task{
		ID:          db.ID,
		Title:       db.Title,
		Description: validation.GetStringOrEmpty(db.Description),
		Completed:   db.Completed,
	}
}

// List returns all tasks ordered by id.
func (s *Store) List(ctx context.Context) ([]tasksrepo.Task, error) {
	const q = `
	SELECT
		id, title, description, completed
	FROM
		tasks
	ORDER BY
		id`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", postgresdb.HandlePgError(err))
	}
	defer rows.Close()

	var tasks []tasksrepo.Task
	for rows.Next() {
		var db dbTask
		if err := rows.Scan(&db.ID, &db.Title, &db.Description, &db.Completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, toTask(db))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", postgresdb.HandlePgError(err))
	}

	return tasks, nil
}

// Create inserts the draft with completed defaulting to false and returns
// the row with the database-assigned id.
func (s *Store) Create(ctx context.Context, nt tasksrepo.NewTask) (tasksrepo.Task, error) {
	const q = `
	INSERT INTO tasks
		(title, description)
	VALUES
		($1, $2)
	RETURNING
		id, title, description, completed`

	var db dbTask
	err := s.pool.QueryRow(ctx, q, nt.Title, validation.StringPtrIfNotEmpty(nt.Description)).
		Scan(&db.ID, &db.Title, &db.Description, &db.Completed)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("insert task: %w", postgresdb.HandlePgError(err))
	}

	return toTask(db), nil
}

// Delete removes the row and returns it, mapping the empty result to
// tasksrepo.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int) (tasksrepo.Task, error) {
	const q = `
	DELETE FROM tasks
	WHERE
		id = $1
	RETURNING
		id, title, description, completed`

	var db dbTask
	err := s.pool.QueryRow(ctx, q, id).Scan(&db.ID, &db.Title, &db.Description, &db.Completed)
	if err != nil {
		err = postgresdb.HandlePgError(err)
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, fmt.Errorf("delete task: %w", err)
	}

	return toTask(db), nil
}

// Toggle flips the completed flag in a single statement, so two toggles on
// the same row cannot lose an update.
func (s *Store) Toggle(ctx context.Context, id int) (tasksrepo.Task, error) {
	const q = `
	UPDATE tasks
	SET
		completed = NOT completed
	WHERE
		id = $1
	RETURNING
		id, title, description, completed`

	var db dbTask
	err := s.pool.QueryRow(ctx, q, id).Scan(&db.ID, &db.Title, &db.Description, &db.Completed)
	if err != nil {
		err = postgresdb.HandlePgError(err)
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, fmt.Errorf("toggle task: %w", err)
	}

	return toTask(db), nil
}
