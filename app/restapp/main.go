package main

import (
	"context"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/OreBoia/my-rest-app/app/restapp/api"
	"github.com/OreBoia/my-rest-app/app/restapp/config"
	"github.com/OreBoia/my-rest-app/bridge/scaffolding/mid"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/OreBoia/my-rest-app/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo/stores/usersmemstore"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/infrastructure/web"
	"github.com/OreBoia/my-rest-app/sdk/environment"
	"github.com/OreBoia/my-rest-app/sdk/logger"
	"github.com/OreBoia/my-rest-app/sdk/telemetry"
)

var build = "develop"
var appName = "RESTAPP"

// storeConfig selects which Storer implementations back the repositories.
type storeConfig struct {
	Backend string `env:"STORE_BACKEND" default:"memory"`
}

func main() {
	environment.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// -------------------------------------------------------------------------
	// Stores

	var storeCfg storeConfig
	if err := environment.ParseEnvTags(appName, &storeCfg); err != nil {
		return fmt.Errorf("parsing store config: %w", err)
	}

	var (
		usersStorer usersrepo.Storer
		tasksStorer tasksrepo.Storer
		pg          *postgresdb.Pool
	)

	switch storeCfg.Backend {
	case config.BackendPostgres:
		var err error
		pg, err = postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
		if err != nil {
			return fmt.Errorf("configuring postgres support: %w", err)
		}
		defer func() {
			log.InfoContext(ctx, "shutdown", "status", "closing database connection")
			pg.Close()
		}()

		usersStorer = userspgxstore.NewStore(log, pg)
		tasksStorer = taskspgxstore.NewStore(log, pg)

	case config.BackendMemory:
		usersStorer = usersmemstore.NewStore(log)
		tasksStorer = tasksmemstore.NewStore(log)

	default:
		return fmt.Errorf("unknown store backend %q", storeCfg.Backend)
	}

	log.InfoContext(ctx, "startup", "status", "initializing repository support", "backend", storeCfg.Backend)

	siteCfg := config.RestApp{
		Build:     build,
		Logger:    log,
		Telemetry: telemetry.NewTelemetry(),
		Repositories: config.Repositories{
			Users: usersrepo.NewRepository(log, usersStorer),
			Tasks: tasksrepo.NewRepository(log, tasksStorer),
		},
		DB: pg,
	}

	// -------------------------------------------------------------------------
	// Web server

	webCfg, err := web.LoadServerConfig(appName)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	server := web.NewWebServer(webCfg, webHandler(siteCfg, webCfg), logger.NewStdLogger(log, slog.LevelError))

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, webCfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.RestApp, webCfg web.ServerConfig) http.Handler {
	wh := web.NewWebHandler(cfg.Logger,
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.CORS(webCfg.CORSOrigins...),
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	api.AddHandlers(wh, cfg)

	if webCfg.EnableDebug {
		wh.HandleRaw("GET /debug/vars", expvar.Handler())
	}

	return wh
}
