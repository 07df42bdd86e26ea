// Package logging provides the timestamped, leveled console logger used for
// progress output. Lines go to stdout (errors to stderr) and, optionally, to
// an append-only log file without color codes.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/backmassage/pairtag/internal/config"
	"github.com/backmassage/pairtag/internal/term"
)

const ruleWidth = 93

// Logger provides leveled, optionally colored logging with optional file sink.
// All methods are goroutine-safe.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	palette term.Palette
	verbose bool
	file    *os.File
	now     func() time.Time
}

// NewLogger resolves colors from cfg and optionally opens cfg.LogFile.
// Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := New(os.Stdout, os.Stderr, term.Resolve(cfg.ColorMode, os.Stdout), cfg.Verbose)

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// New returns a logger writing to out and errOut with no file sink.
func New(out, errOut io.Writer, palette term.Palette, verbose bool) *Logger {
	return &Logger{
		out:     out,
		errOut:  errOut,
		palette: palette,
		verbose: verbose,
		now:     time.Now,
	}
}

// Palette returns the colors in use, for callers printing their own output.
func (l *Logger) Palette() term.Palette { return l.palette }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+l.palette.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", l.palette.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", l.palette.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", l.palette.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", l.palette.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", l.palette.Cyan, fmt.Sprintf(format, args...))
}

// Rule logs a separator line between batch sections.
func (l *Logger) Rule() {
	l.line("INFO", l.palette.Blue, strings.Repeat("=", ruleWidth))
}
