package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-message-keeper/internal/adapter"
	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/crypto"
	"github.com/MKhiriev/go-message-keeper/internal/handler"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/internal/server"
	"github.com/MKhiriev/go-message-keeper/internal/service"
	"github.com/MKhiriev/go-message-keeper/internal/store"
	"github.com/MKhiriev/go-message-keeper/internal/validators"
	"github.com/MKhiriev/go-message-keeper/internal/workers"
	"github.com/MKhiriev/go-message-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("message-keeper")
	if err := run(context.Background(), os.Args[1:], log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, args []string, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	queue := workers.NewDeletionQueue(cfg.Workers, log)
	storages, err := store.NewStorages(ctx, db, queue, cfg.Storage.Files, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}

	var auth adapter.AuthAdapter
	if cfg.Adapter.AuthMode == config.AuthModeRemote {
		if auth, err = adapter.NewHTTPAuthAdapter(cfg.Adapter, log); err != nil {
			return fmt.Errorf("error creating auth adapter: %w", err)
		}
	}

	hasher := crypto.NewPasswordHasher(cfg.App.HashConcurrency)
	services, err := service.NewServices(storages, queue, hasher, auth, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(), *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(queue), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
