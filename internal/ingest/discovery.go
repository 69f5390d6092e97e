package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/quizdrill/quizdrill-backend/internal/config"
	"github.com/quizdrill/quizdrill-backend/internal/domain"
	"github.com/quizdrill/quizdrill-backend/internal/drive"
)

// Lister is the remote listing capability used by discovery.
type Lister interface {
	List(ctx context.Context, q *drive.Query) ([]drive.File, error)
}

// Discovery resolves the set of source files to ingest. It runs a primary
// filtered search, applies the precise local naming filter, and, when the
// result comes back thin, falls back to a broad diagnostic listing plus
// concurrent exact-name probes. Results are deduplicated by file id.
type Discovery struct {
	lister   Lister
	cfg      config.IngestConfig
	folderID string
	log      *slog.Logger

	convention *regexp.Regexp
}

// NewDiscovery creates a Discovery scoped to one folder (empty = whole store).
func NewDiscovery(lister Lister, cfg config.IngestConfig, folderID string, log *slog.Logger) *Discovery {
	// Precise contract: name starts with the expected token followed by an
	// index, e.g. class7_practice.csv.
	convention := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(cfg.FilePrefix) + `\d+`)

	return &Discovery{
		lister:     lister,
		cfg:        cfg,
		folderID:   folderID,
		log:        log,
		convention: convention,
	}
}

// minPrimaryMatches is the threshold below which the probe fallback kicks in.
const minPrimaryMatches = 2

// Resolve returns the deduplicated file set, sorted by name. A transport
// failure of any listing call is fatal and wraps domain.ErrDiscovery;
// zero matches is an empty slice, not an error.
func (d *Discovery) Resolve(ctx context.Context) ([]drive.File, error) {
	primary, err := d.primarySearch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: primary search: %w", domain.ErrDiscovery, err)
	}

	byID := make(map[string]drive.File, len(primary))
	for _, f := range primary {
		byID[f.ID] = f
	}

	d.log.Info("primary search done",
		slog.Int("remote_matches", len(primary)),
		slog.Int("after_local_filter", len(byID)),
	)

	if len(byID) < minPrimaryMatches {
		d.broadDiagnosticListing(ctx)

		probed, err := d.probeByConvention(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: name probes: %w", domain.ErrDiscovery, err)
		}
		for _, f := range probed {
			if _, seen := byID[f.ID]; !seen {
				byID[f.ID] = f
			}
		}
	}

	files := make([]drive.File, 0, len(byID))
	for _, f := range byID {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].ID < files[j].ID
	})

	return files, nil
}

// primarySearch runs the filtered remote query and applies the local
// naming filter. The remote query is a superset filter; the local
// convention check is the precise contract.
func (d *Discovery) primarySearch(ctx context.Context) ([]drive.File, error) {
	q := drive.NewQuery()
	if d.folderID != "" {
		q.InFolder(d.folderID)
	}
	q.AnyNameContains(d.cfg.FilePrefix, d.cfg.FileSuffix).
		MimeType(drive.MimeTypeCSV).
		NotTrashed()
	q.PageSize = d.cfg.PageSize
	q.OrderBy = "name"

	files, err := d.lister.List(ctx, q)
	if err != nil {
		return nil, err
	}

	var matched []drive.File
	for _, f := range files {
		if d.convention.MatchString(f.Name) {
			matched = append(matched, f)
		} else {
			d.log.Debug("dropped by naming convention", slog.String("name", f.Name))
		}
	}

	return matched, nil
}

// broadDiagnosticListing lists every tabular file under the folder for
// operational visibility. Its outcome never affects the run.
func (d *Discovery) broadDiagnosticListing(ctx context.Context) {
	q := drive.NewQuery()
	if d.folderID != "" {
		q.InFolder(d.folderID)
	}
	q.MimeType(drive.MimeTypeCSV).NotTrashed()
	q.PageSize = d.cfg.PageSize

	files, err := d.lister.List(ctx, q)
	if err != nil {
		d.log.Warn("broad diagnostic listing failed", slog.String("error", err.Error()))
		return
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	d.log.Info("broad diagnostic listing",
		slog.Int("total_tabular_files", len(files)),
		slog.Any("names", names),
	)
}

// probeByConvention issues one exact-name query per candidate index,
// concurrently. The listing service may index new files lazily; probing by
// exact name finds files the substring search has not caught up with yet.
func (d *Discovery) probeByConvention(ctx context.Context) ([]drive.File, error) {
	var (
		mu    sync.Mutex
		found []drive.File
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := 1; i <= d.cfg.MaxProbes; i++ {
		name := fmt.Sprintf("%s%d_%s.csv", d.cfg.FilePrefix, i, d.cfg.FileSuffix)
		g.Go(func() error {
			q := drive.NewQuery().NameEquals(name).NotTrashed()
			if d.folderID != "" {
				q.InFolder(d.folderID)
			}

			files, err := d.lister.List(ctx, q)
			if err != nil {
				return fmt.Errorf("probe %s: %w", name, err)
			}

			mu.Lock()
			found = append(found, files...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return found, nil
}
