package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/backmassage/pairtag/internal/naming"
)

// ErrMissingMate is returned when a primary file has no secondary on disk.
var ErrMissingMate = errors.New("counterpart file not found")

// Pair is one primary/secondary file couple, by base name.
type Pair struct {
	Index     int // Position in discovery order; selects the tag.
	Primary   string
	Secondary string
}

// Discovery is the result of scanning a source directory.
type Discovery struct {
	Pairs    []Pair
	Unpaired []string // Regular files carrying neither role marker.
	Orphans  []string // Secondary files whose primary is absent.
}

// Discover lists the regular files directly inside dir and groups them into
// pairs. Every file without the secondary marker that carries the primary
// marker starts a pair; its mate is derived by marker substitution and must
// exist. All missing mates are reported together. With sorted, primaries
// are ordered by name; otherwise the directory's own listing order is kept.
func Discover(dir string, m naming.Markers, sorted bool) (Discovery, error) {
	names, err := listRegular(dir)
	if err != nil {
		return Discovery{}, err
	}
	if sorted {
		sort.Strings(names)
	}

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}

	var (
		d       Discovery
		missing []error
	)
	for _, n := range names {
		switch m.Classify(n) {
		case naming.RoleSecondary:
			if !present[m.PrimaryOf(n)] {
				d.Orphans = append(d.Orphans, n)
			}
		case naming.RoleNone:
			d.Unpaired = append(d.Unpaired, n)
		case naming.RolePrimary:
			mate := m.Counterpart(n)
			if !present[mate] {
				missing = append(missing, fmt.Errorf("%w: %s (for %s)", ErrMissingMate, mate, n))
				continue
			}
			d.Pairs = append(d.Pairs, Pair{Index: len(d.Pairs), Primary: n, Secondary: mate})
		}
	}
	if len(missing) > 0 {
		return d, errors.Join(missing...)
	}
	return d, nil
}

// listRegular returns the names of regular files in dir, following
// symlinks, in the order the directory reports them.
func listRegular(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			mode = fi.Mode()
		}
		if mode.IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
