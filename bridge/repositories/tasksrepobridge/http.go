// Package tasksrepobridge contains the HTTP handlers and route registration
// for the tasks resource.
package tasksrepobridge

import (
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Config holds configuration for the Task bridge.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.PATCH("/tasks/{task_id}", b.httpToggle, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}
