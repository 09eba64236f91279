package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OreBoia/my-rest-app/app/tooling/commands"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/sdk/environment"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

var appName = "TOOLING"

func processCommands(ctx context.Context, log *logger.Logger, command string, pg *pgxpool.Pool) error {
	switch command {
	case "migrate":
		log.InfoContext(ctx, "running migration")
		if err := postgresdb.Migrate(ctx, pg); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.InfoContext(ctx, "migration completed successfully")
		return nil

	case "seed":
		log.InfoContext(ctx, "running seed")
		if err := commands.Seed(ctx, log, pg); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		log.InfoContext(ctx, "seed completed successfully")
		return nil

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate - create the schema in the database")
	fmt.Println("  seed    - insert the starter fixture rows")
}

func run(ctx context.Context, log *logger.Logger) error {
	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- processCommands(ctx, log, command, pg)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}
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
		log.ErrorContext(ctx, "tooling", "err", err)
		os.Exit(1)
	}
}
