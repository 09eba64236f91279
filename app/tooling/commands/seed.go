// Package commands contains the implementations of the tooling subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Starter fixtures the app ships with.
var seedUsers = []usersrepo.NewUser{
	{Name: "Mario Rossi", Email: "mario@example.com"},
	{Name: "Luigi Verdi", Email: "luigi@example.com"},
}

var seedTasks = []tasksrepo.NewTask{
	{Title: "Imparare Go", Description: "Partire dal tour e scrivere un servizio"},
	{Title: "Preparare la demo", Description: "Slides e applicazione d'esempio"},
}

// Seed inserts the starter fixture rows through the pgx stores. Running it
// twice inserts the fixtures twice; it is meant for fresh databases.
func Seed(ctx context.Context, log *logger.Logger, pool *postgresdb.Pool) error {
	users := userspgxstore.NewStore(log, pool)
	for _, nu := range seedUsers {
		user, err := users.Create(ctx, nu)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", nu.Name, err)
		}
		log.InfoContext(ctx, "seeded user", "id", user.ID, "name", user.Name)
	}

	tasks := taskspgxstore.NewStore(log, pool)
	for _, nt := range seedTasks {
		task, err := tasks.Create(ctx, nt)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", nt.Title, err)
		}
		log.InfoContext(ctx, "seeded task", "id", task.ID, "title", task.Title)
	}

	return nil
}
