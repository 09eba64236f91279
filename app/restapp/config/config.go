// Package config holds the site wide configuration for the restapp binary.
package config

import (
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/sdk/logger"
	"github.com/OreBoia/my-rest-app/sdk/telemetry"
)

// Site wide globals.
const (
	ApiRoute = "/api"
)

// Store backends the app can run against.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Repositories represents the repositories this instance of the app serves.
type Repositories struct {
	Users *usersrepo.Repository
	Tasks *tasksrepo.Repository
}

// RestApp is the overall configuration for the application.
type RestApp struct {
	Build     string
	Logger    *logger.Logger
	Telemetry telemetry.Telemetry

	Repositories Repositories

	// DB is nil when running against the in-memory backend; readiness
	// reports accordingly.
	DB *postgresdb.Pool
}
