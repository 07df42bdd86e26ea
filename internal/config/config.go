// Package config holds runtime configuration: defaults, CLI flag parsing,
// dotenv/environment overrides, and validation. Defaults match the legacy
// atcg script (6-symbol ATCG tags, _R1_/_R2_ pairs, @MISEQ instrument).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// symbolDelimiters are the characters a tag symbol may not contain: the
// header field separator, the file-name token separator, and path separators.
const symbolDelimiters = ":_/" + string(os.PathSeparator)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [LoadEnv], then [ParseFlags], before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Paths (set from positional args). BasePath is prepended verbatim to
	// both directories, so "project_1/" + "source" is "project_1/source".
	SourceDir string
	ResultDir string
	BasePath  string

	// Tag pool.
	Alphabet  []string // Default: A, T, C, G.
	TagLength int      // Default: 6.

	// Pairing and record layout.
	PrimaryMarker   string // Default: "_R1_".
	SecondaryMarker string // Default: "_R2_".
	Instrument      string // Default: "@MISEQ". Written to header field 0.
	HeaderInterval  int    // Default: 4. Lines 0, N, 2N, ... are headers.

	// Behavior flags.
	SortPairs bool // Default: true. Cleared by --no-sort.
	Workers   int  // Default: 1 (sequential).
	Force     bool // Overwrite existing result files.
	Cleanup   bool // Default: true. Cleared by --keep-partial.
	DryRun    bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	EnvFile   string    // Default: ".env". Missing file is ignored.
}

// DefaultConfig returns a Config whose defaults reproduce the legacy script.
func DefaultConfig() Config {
	return Config{
		Alphabet:        []string{"A", "T", "C", "G"},
		TagLength:       6,
		PrimaryMarker:   "_R1_",
		SecondaryMarker: "_R2_",
		Instrument:      "@MISEQ",
		HeaderInterval:  4,
		SortPairs:       true,
		Workers:         1,
		Cleanup:         true,
		ColorMode:       ColorAuto,
		EnvFile:         ".env",
	}
}

// SourcePath is BasePath joined to SourceDir by plain concatenation.
func (c *Config) SourcePath() string { return c.BasePath + c.SourceDir }

// ResultPath is BasePath joined to ResultDir by plain concatenation.
func (c *Config) ResultPath() string { return c.BasePath + c.ResultDir }

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the tag pool, pairing, and layout settings and requires
// both directory arguments.
func (c *Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return errors.New("alphabet must not be empty")
	}
	for _, sym := range c.Alphabet {
		if strings.ContainsAny(sym, symbolDelimiters) {
			return fmt.Errorf("alphabet symbol %q must not contain any of %q", sym, symbolDelimiters)
		}
	}
	if c.TagLength < 1 {
		return fmt.Errorf("tag length must be at least 1 (got %d)", c.TagLength)
	}
	if c.PrimaryMarker == "" || c.SecondaryMarker == "" {
		return errors.New("role markers must not be empty")
	}
	if c.PrimaryMarker == c.SecondaryMarker {
		return fmt.Errorf("primary and secondary markers are identical (%q)", c.PrimaryMarker)
	}
	if strings.Contains(c.PrimaryMarker, c.SecondaryMarker) {
		return fmt.Errorf("primary marker %q contains secondary marker %q", c.PrimaryMarker, c.SecondaryMarker)
	}
	if c.HeaderInterval < 1 {
		return fmt.Errorf("header interval must be at least 1 (got %d)", c.HeaderInterval)
	}
	if strings.Contains(c.Instrument, ":") {
		return fmt.Errorf("instrument %q must not contain ':'", c.Instrument)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Workers)
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.SourceDir == "" || c.ResultDir == "" {
		return errors.New("need source_subdir and result_subdir")
	}
	return nil
}

// ValidatePaths ensures the resolved result directory is not the source
// directory itself. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, resultAbs string) error {
	if filepath.Clean(sourceAbs) == filepath.Clean(resultAbs) {
		return errors.New("result directory must differ from source directory")
	}
	return nil
}
