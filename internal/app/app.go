package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"CiteScanner/internal/config"
	"CiteScanner/internal/docquery"
	"CiteScanner/internal/domain"
	"CiteScanner/internal/infrastructure/confirm"
	"CiteScanner/internal/infrastructure/storage"
	"CiteScanner/internal/infrastructure/transport"
	"CiteScanner/internal/logging"
	"CiteScanner/internal/ports"
	"CiteScanner/internal/publisher"
	"CiteScanner/internal/publisher/profiles"
	"CiteScanner/internal/usecase"
)

// Application wires configuration to the workflow and its collaborators.
type Application struct {
	cfg      config.Config
	db       *sql.DB
	settings ports.SettingsStore
	fetcher  ports.DocumentSource
	workflow *usecase.Workflow
}

// New builds a runnable application instance. Publisher plugins are
// registered here, once, before any document is processed; their order
// fixes classification precedence.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := publisher.NewRegistry()
	if err := profiles.RegisterAll(registry); err != nil {
		return nil, fmt.Errorf("register publishers: %w", err)
	}

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	settings := storage.NewSettingsStore(db)
	pipeline := usecase.NewPipeline(registry, baseLogger.With("component", "pipeline"))

	workflow := usecase.NewWorkflow(usecase.WorkflowDeps{
		Pipeline:  pipeline,
		Dedup:     storage.NewDedupStore(db),
		Settings:  settings,
		Confirmer: confirm.NewTerminal(os.Stdin, os.Stdout),
		Transport: transport.NewClient(cfg.Collector.EndpointURL, nil),
		Source:    cfg.Collector.SourceTag,
		Logger:    baseLogger.With("component", "workflow"),
	})

	return &Application{
		cfg:      cfg,
		db:       db,
		settings: settings,
		fetcher:  docquery.NewFetcher(nil),
		workflow: workflow,
	}, nil
}

// ScanURL fetches one article page and drives it through the submission
// workflow.
func (a *Application) ScanURL(ctx context.Context, url string) (domain.Outcome, error) {
	doc, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	return a.workflow.Run(ctx, doc)
}

// Settings exposes the persistent settings store (mode flag management).
func (a *Application) Settings() ports.SettingsStore {
	return a.settings
}

// Close releases the underlying store.
func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
