package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizdrill/quizdrill-backend/internal/config"
	"github.com/quizdrill/quizdrill-backend/internal/domain"
	"github.com/quizdrill/quizdrill-backend/internal/drive"
	"github.com/quizdrill/quizdrill-backend/internal/ingest/tabular"
)

// Store is the remote file store capability the pipeline depends on.
// *drive.Client satisfies it.
type Store interface {
	Lister
	Download(ctx context.Context, fileID string) (string, error)
}

// ProgressFunc receives coarse progress estimates in the range 0-100.
// Values are monotonically non-decreasing, not wall-clock-accurate.
type ProgressFunc func(percent int)

// Pipeline drives one ingestion run: discovery, sequential per-file
// download and parse, aggregation into a Result. Construct one per run;
// there is no shared state between instances.
type Pipeline struct {
	log      *slog.Logger
	store    Store
	driveCfg config.DriveConfig
	cfg      config.IngestConfig
}

// NewPipeline creates a Pipeline.
func NewPipeline(log *slog.Logger, store Store, driveCfg config.DriveConfig, cfg config.IngestConfig) *Pipeline {
	return &Pipeline{
		log:      log,
		store:    store,
		driveCfg: driveCfg,
		cfg:      cfg,
	}
}

// Run executes the ingestion and always returns a finalized Result, never
// an error: fatal conditions are reported through Success=false and
// Message. Files are processed strictly sequentially; one bad file is
// recorded in Errors and does not abort the run. Cancelling ctx stops the
// loop before the next file and returns the partial Result.
func (p *Pipeline) Run(ctx context.Context, onProgress ProgressFunc) Result {
	start := time.Now()
	res := Result{RunID: uuid.New()}

	report := func(pct int) {
		if onProgress != nil {
			onProgress(pct)
		}
	}
	fail := func(msg string, err error) Result {
		p.log.Error("ingestion failed", slog.String("error", err.Error()))
		res.Success = false
		res.Message = msg
		res.Errors = append(res.Errors, err.Error())
		res.ProcessingTime = time.Since(start)
		report(100)
		return res
	}

	// Credentials gate. Refuse to run without the file store identity.
	if !p.driveCfg.HasCredentials() {
		return fail("file store credentials are not configured",
			fmt.Errorf("%w: missing service account email or private key", domain.ErrConfig))
	}
	report(10)

	folderDesc := p.driveCfg.FolderID
	if folderDesc == "" {
		folderDesc = "(entire store)"
	}

	discovery := NewDiscovery(p.store, p.cfg, p.driveCfg.FolderID, p.log)
	files, err := discovery.Resolve(ctx)
	if err != nil {
		return fail(fmt.Sprintf("could not list source files in folder %s", folderDesc), err)
	}
	if len(files) == 0 {
		return fail(fmt.Sprintf("no source files found in folder %s", folderDesc),
			fmt.Errorf("%w: searched folder %s", domain.ErrNoFiles, folderDesc))
	}

	p.log.Info("discovery resolved", slog.Int("files", len(files)))

	seenCategories := make(map[string]bool)
	total := len(files)

	for i, f := range files {
		if ctx.Err() != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("run cancelled after %d of %d files", i, total))
			break
		}
		report(10 + i*70/total)

		content, err := p.store.Download(ctx, f.ID)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: download failed: %v", f.Name, err))
			p.log.Warn("file skipped", slog.String("name", f.Name), slog.String("error", err.Error()))
			continue
		}

		p.processFile(f, content, &res, seenCategories)
	}
	report(80)

	res.ProcessingTime = time.Since(start)

	if len(res.Questions) == 0 {
		res.Success = false
		res.Message = "no valid questions found"
		res.Errors = append(res.Errors, domain.ErrNoQuestions.Error())
		report(100)
		return res
	}

	res.Success = true
	res.Message = summaryMessage(res.TotalProcessed, res.CategoriesFound)
	p.log.Info("ingestion finished",
		slog.String("run_id", res.RunID.String()),
		slog.Int("processed", res.TotalProcessed),
		slog.Int("failed_rows", res.TotalFailed),
		slog.Int("file_errors", len(res.Errors)),
		slog.Duration("elapsed", res.ProcessingTime),
	)
	report(100)

	return res
}

// processFile parses one downloaded file and accumulates its questions
// into the result. Schema problems fail the file, not the run.
func (p *Pipeline) processFile(f drive.File, content string, res *Result, seenCategories map[string]bool) {
	lines := splitContentLines(content)
	if len(lines) == 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: file is empty", f.Name))
		return
	}

	header := tabular.SplitLine(lines[0])
	mapping, err := tabular.MapHeader(header)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", f.Name, err))
		return
	}

	accepted := 0
	for n, line := range lines[1:] {
		fields := tabular.SplitLine(line)

		q, err := tabular.BuildQuestion(fields, mapping)
		switch {
		case err == nil:
			res.Questions = append(res.Questions, q)
			res.TotalProcessed++
			accepted++
			if !seenCategories[q.Category] {
				seenCategories[q.Category] = true
				res.CategoriesFound = append(res.CategoriesFound, q.Category)
			}
		case errors.Is(err, tabular.ErrEmptyRow):
			// Blank rows carry no signal; skip without counting.
		default:
			res.TotalFailed++
			if p.cfg.StrictRejects {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s line %d: %v", f.Name, n+2, err))
			} else {
				p.log.Debug("row rejected",
					slog.String("file", f.Name),
					slog.Int("line", n+2),
					slog.String("reason", err.Error()),
				)
			}
		}
	}

	p.log.Info("file processed", slog.String("name", f.Name), slog.Int("accepted", accepted))
}

// splitContentLines normalizes line endings and drops blank lines.
func splitContentLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	var lines []string
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
