// Package app wires configuration, logging, the file store client, the
// ingestion pipeline and the optional question sink into one runnable unit.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quizdrill/quizdrill-backend/internal/adapter/postgres"
	"github.com/quizdrill/quizdrill-backend/internal/adapter/postgres/question"
	"github.com/quizdrill/quizdrill-backend/internal/config"
	"github.com/quizdrill/quizdrill-backend/internal/drive"
	"github.com/quizdrill/quizdrill-backend/internal/ingest"
)

// App is the composition root for one ingestion process.
type App struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates the App and its logger.
func New(cfg *config.Config) *App {
	return &App{
		cfg: cfg,
		log: NewLogger(cfg.Log),
	}
}

// Log returns the application logger.
func (a *App) Log() *slog.Logger { return a.log }

// RunIngestion executes one ingestion run. When a database DSN is configured
// and dryRun is false, the run summary and accepted questions are persisted
// in a single transaction. The Result is returned even when persistence
// fails, so the caller can still report what was ingested.
func (a *App) RunIngestion(ctx context.Context, dryRun bool, onProgress ingest.ProgressFunc) (ingest.Result, error) {
	client, err := drive.NewClient(a.cfg.Drive, a.log)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("create file store client: %w", err)
	}

	pipeline := ingest.NewPipeline(a.log, client, a.cfg.Drive, a.cfg.Ingest)
	res := pipeline.Run(ctx, onProgress)

	if dryRun || a.cfg.Database.DSN == "" {
		a.log.Info("persistence skipped",
			slog.Bool("dry_run", dryRun),
			slog.Bool("dsn_configured", a.cfg.Database.DSN != ""),
		)
		return res, nil
	}

	if err := a.persist(ctx, res); err != nil {
		return res, fmt.Errorf("persist run %s: %w", res.RunID, err)
	}

	return res, nil
}

// persist writes the run summary plus its questions atomically. Failed runs
// are recorded too; they just carry no questions.
func (a *App) persist(ctx context.Context, res ingest.Result) error {
	pool, err := postgres.NewPool(ctx, a.cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := question.New(pool)
	tm := postgres.NewTxManager(pool)

	return tm.RunInTx(ctx, func(ctx context.Context) error {
		run := question.RunSummary{
			ID:             res.RunID,
			Success:        res.Success,
			Message:        res.Message,
			TotalProcessed: res.TotalProcessed,
			TotalFailed:    res.TotalFailed,
			ProcessingTime: res.ProcessingTime,
		}
		if err := repo.RecordRun(ctx, run); err != nil {
			return err
		}

		n, err := repo.InsertBatch(ctx, res.RunID, res.Questions)
		if err != nil {
			return err
		}

		a.log.Info("run persisted", slog.String("run_id", res.RunID.String()), slog.Int("questions", n))
		return nil
	})
}
