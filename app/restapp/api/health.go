package api

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/OreBoia/my-rest-app/app/restapp/config"
	"github.com/OreBoia/my-rest-app/bridge/scaffolding/errs"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
)

type livenessInfo struct {
	Status     string `json:"status"`
	Build      string `json:"build"`
	Host       string `json:"host"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

type readinessInfo struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

func addHealthRoutes(group *web.RouteGroup, cfg config.RestApp) {
	liveness := func(ctx context.Context, r *http.Request) web.Encoder {
		host, err := os.Hostname()
		if err != nil {
			host = "unavailable"
		}

		return web.NewJSONResponse(livenessInfo{
			Status:     "up",
			Build:      cfg.Build,
			Host:       host,
			GOMAXPROCS: runtime.GOMAXPROCS(0),
		})
	}

	readiness := func(ctx context.Context, r *http.Request) web.Encoder {
		info := readinessInfo{Status: "ready", Backend: config.BackendMemory}

		if cfg.DB != nil {
			info.Backend = config.BackendPostgres
			if err := postgresdb.StatusCheck(ctx, cfg.DB); err != nil {
				cfg.Logger.ErrorContext(ctx, "readiness", "err", err)
				return errs.Newf(errs.Unavailable, "database not ready")
			}
		}

		return web.NewJSONResponse(info)
	}

	group.GET("/liveness", liveness)
	group.GET("/readiness", readiness)
}

// addPreflightRoute answers CORS preflight for the whole API subtree. The
// CORS middleware writes the headers and swallows the OPTIONS request.
func addPreflightRoute(wh *web.WebHandler) {
	preflight := func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewNoResponse()
	}

	wh.Handle("OPTIONS", config.ApiRoute+"/", preflight)
}
