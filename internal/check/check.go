// Package check validates the source and result directories before the
// pipeline touches any file. Neither directory is created: a missing one is
// a configuration error.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/pairtag/internal/config"
)

// Sentinel errors returned by Preflight.
var (
	ErrSourceMissing     = errors.New("source directory not found")
	ErrResultMissing     = errors.New("result directory not found (it is not created automatically)")
	ErrNotDirectory      = errors.New("not a directory")
	ErrResultNotWritable = errors.New("result directory is not writable")
)

// Paths are the resolved, absolute directories for a run.
type Paths struct {
	Source string
	Result string
}

// Preflight resolves cfg's source and result paths and verifies that both
// exist as directories, that the result directory accepts new files, and
// that the two are distinct.
func Preflight(cfg *config.Config) (Paths, error) {
	src, err := resolveDir(cfg.SourcePath(), ErrSourceMissing)
	if err != nil {
		return Paths{}, err
	}
	res, err := resolveDir(cfg.ResultPath(), ErrResultMissing)
	if err != nil {
		return Paths{}, err
	}
	if err := cfg.ValidatePaths(src, res); err != nil {
		return Paths{}, err
	}
	if !cfg.DryRun {
		if err := probeWritable(res); err != nil {
			return Paths{}, err
		}
	}
	return Paths{Source: src, Result: res}, nil
}

// resolveDir returns the absolute, symlink-resolved form of dir.
func resolveDir(dir string, missing error) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", missing, dir, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", missing, dir)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", missing, dir)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	return abs, nil
}

// probeWritable creates and removes a temp file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".pairtag-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrResultNotWritable, dir, err)
	}
	name := f.Name()
	_ = f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrResultNotWritable, dir, err)
	}
	return nil
}
