// Package pipeline discovers read-file pairs, assigns each a unique tag,
// rewrites both files into the result directory, and reports batch totals.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/pairtag/internal/check"
	"github.com/backmassage/pairtag/internal/config"
	"github.com/backmassage/pairtag/internal/display"
	"github.com/backmassage/pairtag/internal/logging"
	"github.com/backmassage/pairtag/internal/naming"
	"github.com/backmassage/pairtag/internal/tagpool"
)

// ErrResultExists is returned when an output file is already present and
// overwriting was not requested.
var ErrResultExists = errors.New("result file already exists")

// Run is the top-level batch entry point. It builds the tag pool, discovers
// pairs in dirs.Source, plans every assignment, and then converts pairs in
// order. The first error aborts the run; with cfg.Cleanup every file written
// so far is removed.
func Run(ctx context.Context, cfg *config.Config, dirs check.Paths, log *logging.Logger) (stats RunStats, err error) {
	start := time.Now()
	defer func() { stats.Elapsed = time.Since(start) }()

	log.Info("generating unique %d-symbol tag pool...", cfg.TagLength)
	pool, err := tagpool.New(cfg.Alphabet, cfg.TagLength)
	if err != nil {
		return stats, err
	}
	log.Info("generation complete: %s", describePool(pool))
	log.Rule()

	markers := naming.Markers{Primary: cfg.PrimaryMarker, Secondary: cfg.SecondaryMarker}
	disc, err := Discover(dirs.Source, markers, cfg.SortPairs)
	stats.Total = len(disc.Pairs)
	stats.Unpaired = len(disc.Unpaired)
	stats.Orphans = len(disc.Orphans)
	for _, n := range disc.Unpaired {
		log.Warn("Skip (no %s or %s marker): %s", markers.Primary, markers.Secondary, n)
	}
	for _, n := range disc.Orphans {
		log.Warn("Skip (no %s mate): %s", markers.Primary, n)
	}
	if err != nil {
		return stats, err
	}
	log.Info("Found %d pairs in %s", stats.Total, dirs.Source)
	if stats.Total == 0 {
		log.Warn("Nothing to convert")
		return stats, nil
	}

	alloc := tagpool.NewAllocator(pool)
	jobs, err := Plan(disc.Pairs, alloc)
	if err != nil {
		return stats, err
	}
	if !cfg.Force && !cfg.DryRun {
		if err := checkExisting(dirs.Result, jobs); err != nil {
			return stats, err
		}
	}

	if cfg.DryRun {
		for _, j := range jobs {
			log.Success("[DRY] %s >> %s", j.Pair.Primary, j.PrimaryOut)
			log.Success("[DRY] %s >> %s", j.Pair.Secondary, j.SecondaryOut)
		}
		return stats, nil
	}

	log.Info("beginning conversion...")
	log.Rule()

	written := &writtenFiles{}
	env := pairEnv{
		sourceDir:  dirs.Source,
		resultDir:  dirs.Result,
		instrument: cfg.Instrument,
		interval:   cfg.HeaderInterval,
		overwrite:  cfg.Force,
		written:    written,
	}
	if err := execute(ctx, cfg.Workers, env, jobs, log, &stats); err != nil {
		stats.Failed++
		if cfg.Cleanup {
			removeWritten(written.list(), log)
		}
		return stats, err
	}

	log.Success("all conversions complete!")
	logSummary(log, &stats, pool, alloc, time.Since(start))
	return stats, nil
}

// execute converts jobs, one at a time or on a bounded worker pool. Tags
// were fixed by Plan, so the pair-to-tag mapping does not depend on workers.
func execute(ctx context.Context, workers int, env pairEnv, jobs []Job, log *logging.Logger, stats *RunStats) error {
	var mu sync.Mutex
	run := func(j Job) error {
		log.Info("[%d/%d] conversion for source files: %s and %s (tag %s)",
			j.Pair.Index+1, len(jobs), j.Pair.Primary, j.Pair.Secondary, j.Tag)
		pairStart := time.Now()
		st, err := processPair(j, env)
		if err != nil {
			return err
		}
		mu.Lock()
		stats.add(st)
		mu.Unlock()
		log.Success("new pair conversion complete for file: %s >> %s", j.Pair.Primary, j.PrimaryOut)
		log.Success("new pair conversion complete for file: %s >> %s", j.Pair.Secondary, j.SecondaryOut)
		log.Debug("  %d headers, %s in %s", st.Headers, display.FormatBytes(st.BytesOut), display.FormatElapsed(time.Since(pairStart)))
		return nil
	}

	if workers <= 1 {
		for _, j := range jobs {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("interrupted before %s: %w", j.Pair.Primary, err)
			}
			if err := run(j); err != nil {
				return err
			}
			log.Rule()
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return run(j)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	return nil
}

// checkExisting reports every planned output that is already on disk.
func checkExisting(dir string, jobs []Job) error {
	var errs []error
	for _, j := range jobs {
		for _, out := range []string{j.PrimaryOut, j.SecondaryOut} {
			path := filepath.Join(dir, out)
			if _, err := os.Stat(path); err == nil {
				errs = append(errs, fmt.Errorf("%w: %s", ErrResultExists, path))
			}
		}
	}
	return errors.Join(errs...)
}

// removeWritten deletes partial results after a failed run.
func removeWritten(paths []string, log *logging.Logger) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn("Cannot remove partial result %s: %v", p, err)
			continue
		}
		log.Warn("Removed partial result: %s", filepath.Base(p))
	}
}

func describePool(p *tagpool.Pool) string {
	n, ok := p.Size()
	if !ok {
		return fmt.Sprintf("unbounded pool (%d^%d tags)", len(p.Alphabet()), p.Length())
	}
	return fmt.Sprintf("%d tags (%d^%d)", n, len(p.Alphabet()), p.Length())
}

func logSummary(log *logging.Logger, stats *RunStats, pool *tagpool.Pool, alloc *tagpool.Allocator, elapsed time.Duration) {
	log.Rule()
	log.Info("Pairs:   %d converted, %d failed", stats.Converted, stats.Failed)
	if stats.Unpaired > 0 || stats.Orphans > 0 {
		log.Info("Skipped: %d unpaired, %d orphaned", stats.Unpaired, stats.Orphans)
	}
	log.Info("Records: %d headers rewritten over %d lines", stats.Headers, stats.Lines)
	log.Info("Data:    %s read, %s written", display.FormatBytes(stats.BytesIn), display.FormatBytes(stats.BytesOut))
	log.Info("Tags:    %d used of %s", alloc.Used(), describePool(pool))
	log.Info("Time:    %s", display.FormatElapsed(elapsed))
}
