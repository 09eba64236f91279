// Package api registers the REST surface of the application.
package api

import (
	"github.com/OreBoia/my-rest-app/app/restapp/config"
	"github.com/OreBoia/my-rest-app/bridge/repositories/tasksrepobridge"
	"github.com/OreBoia/my-rest-app/bridge/repositories/usersrepobridge"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
)

// AddHandlers wires the resource bridges and health probes under the /api
// route group.
func AddHandlers(wh *web.WebHandler, cfg config.RestApp) {
	group := wh.Group(config.ApiRoute)

	usersrepobridge.AddHttpRoutes(group, usersrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Users,
	})

	tasksrepobridge.AddHttpRoutes(group, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	addHealthRoutes(group, cfg)
	addPreflightRoute(wh)
}
