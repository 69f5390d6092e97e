// Command ingest discovers practice question files in the configured remote
// folder, parses and validates them, and optionally persists the accepted
// questions to PostgreSQL. It is intended to be run offline, on demand or
// from a scheduler.
//
// Flags:
//
//	--folder    remote folder id (overrides DRIVE_FOLDER_ID)
//	--dry-run   parse and validate without writing to DB
//	--strict    surface per-row rejection reasons as warnings
//	--quiet     suppress the progress output
//
// Exit codes: 0 = success, 1 = error or no valid questions found.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quizdrill/quizdrill-backend/internal/app"
	"github.com/quizdrill/quizdrill-backend/internal/config"
	"github.com/quizdrill/quizdrill-backend/internal/ingest"
)

func main() {
	folderFlag := flag.String("folder", "", "remote folder id (overrides configured folder)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	strictFlag := flag.Bool("strict", false, "surface per-row rejection reasons as warnings")
	quietFlag := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *folderFlag != "" {
		cfg.Drive.FolderID = *folderFlag
	}
	if *strictFlag {
		cfg.Ingest.StrictRejects = true
	}

	a := app.New(cfg)
	logger := a.Log()
	logger.Info("starting ingestion", slog.String("version", app.BuildVersion()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Minute)
	defer cancelTimeout()

	var onProgress ingest.ProgressFunc
	if !*quietFlag {
		onProgress = func(percent int) {
			fmt.Fprintf(os.Stderr, "progress: %d%%\n", percent)
		}
	}

	res, err := a.RunIngestion(ctx, *dryRunFlag, onProgress)
	if err != nil {
		logger.Error("ingestion run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, w := range res.Warnings {
		logger.Warn(w)
	}
	for _, e := range res.Errors {
		logger.Error(e)
	}

	if !res.Success {
		logger.Error("ingestion finished without valid questions", slog.String("message", res.Message))
		os.Exit(1)
	}

	logger.Info(res.Message,
		slog.Int("processed", res.TotalProcessed),
		slog.Int("failed_rows", res.TotalFailed),
		slog.Duration("elapsed", res.ProcessingTime),
	)
}
