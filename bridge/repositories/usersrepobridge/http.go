// Package usersrepobridge contains the HTTP handlers and route registration
// for the users resource.
package usersrepobridge

import (
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Config holds configuration for the User bridge.
type Config struct {
	Log        *logger.Logger
	Repository *usersrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for User.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	group.GET("/users", b.httpList, cfg.Middleware...)
	group.POST("/users", b.httpCreate, cfg.Middleware...)
	group.DELETE("/users/{user_id}", b.httpDelete, cfg.Middleware...)
}
