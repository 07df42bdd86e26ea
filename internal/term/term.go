// Package term resolves ANSI color support for the console.
//
// A [Palette] is computed once at startup by [Resolve] and handed to the
// logger and the banner. When colors are disabled every field is the empty
// string, so concatenation is a no-op.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/pairtag/internal/config"
)

// Palette holds the escape sequences used for leveled output.
type Palette struct {
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	NC      string // Reset sequence.
}

// Enabled reports whether the palette emits escape sequences.
func (p Palette) Enabled() bool { return p.NC != "" }

// Colors returns the full ANSI palette.
func Colors() Palette {
	return Palette{
		Red:     "\033[1;91m",
		Green:   "\033[1;92m",
		Yellow:  "\033[1;93m",
		Blue:    "\033[1;94m",
		Cyan:    "\033[1;96m",
		Magenta: "\033[1;95m",
		NC:      "\033[0m",
	}
}

// Resolve returns the palette for mode, checking f for a TTY in auto mode.
func Resolve(mode config.ColorMode, f *os.File) Palette {
	if enabled(mode, f) {
		return Colors()
	}
	return Palette{}
}

// enabled honors the NO_COLOR env var (https://no-color.org) and TERM=dumb.
func enabled(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
