package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/logger"
)

const filePattern = "*_values.csv"

// ErrDataDirMissing is returned when the configured data directory does
// not exist at startup. The service must not come up serving an empty
// store silently, so callers treat this as fatal.
var ErrDataDirMissing = errors.New("data directory not found")

// Loader yields price records grouped by symbol. It abstracts the
// filesystem away from app wiring so tests can load from memory.
type Loader interface {
	Load(ctx context.Context) (map[string][]models.PriceRecord, error)
}

// DirectoryLoader loads per-symbol CSV files from a single directory.
//
// Each file is named SYMBOL_values.csv; the symbol is the filename
// segment before the first underscore, upper-cased, and applied to every
// record in that file.
type DirectoryLoader struct {
	dir string
}

// NewDirectoryLoader builds a loader over the given directory.
func NewDirectoryLoader(dir string) *DirectoryLoader {
	return &DirectoryLoader{dir: dir}
}

// Load discovers and parses all *_values.csv files under the directory.
//
// Behavior:
//   - Missing directory → ErrDataDirMissing (wrapped with the path).
//   - Directory with no matching files → error; an empty dataset is a
//     startup misconfiguration, not a valid state.
//   - Files are parsed concurrently, bounded by CPU count. A malformed
//     record fails that file, which cancels the remaining files and fails
//     the whole load: partial symbol coverage would silently change query
//     results.
//
// Returns:
//   - map from uppercase symbol to its records in file order (unsorted;
//     the store sorts on build).
//   - error: first error encountered, if any.
func (l *DirectoryLoader) Load(ctx context.Context) (map[string][]models.PriceRecord, error) {
	if _, err := os.Stat(l.dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirMissing, l.dir)
		}
		return nil, fmt.Errorf("stat %s: %w", l.dir, err)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", l.dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files in %s", filePattern, l.dir)
	}

	log := logger.C("ingestion")
	log.Info().Int("files", len(files)).Str("dir", l.dir).Msg("load start")

	maxParallel := runtime.NumCPU()
	if len(files) < maxParallel {
		maxParallel = len(files)
	}

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	var mu sync.Mutex
	out := make(map[string][]models.PriceRecord, len(files))

	for _, file := range files {
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)

			symbol, records, err := parseFile(gctx, f)
			if err != nil {
				log.Error().Str("file", base).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}

			mu.Lock()
			out[symbol] = append(out[symbol], records...)
			mu.Unlock()

			log.Info().
				Str("file", base).
				Str("symbol", symbol).
				Int("records", len(records)).
				Dur("elapsed", time.Since(start)).
				Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
