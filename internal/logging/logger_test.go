package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/pairtag/internal/config"
	"github.com/backmassage/pairtag/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "logs", "pairtag.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[INFO] to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Contains(b, []byte("\033[")) {
		t.Errorf("log file should not contain color codes: %q", string(b))
	}
}

func TestLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, term.Palette{}, false)
	l.now = func() time.Time { return time.Date(2018, 6, 26, 9, 30, 0, 0, time.UTC) }

	l.Info("generating %d tags", 4096)
	l.Warn("stray file")
	l.Error("boom")
	l.Debug("hidden")
	l.Rule()

	got := out.String()
	if !strings.Contains(got, "2018-06-26 09:30:00 [INFO] generating 4096 tags\n") {
		t.Errorf("stdout = %q", got)
	}
	if !strings.Contains(got, "[WARN] stray file") {
		t.Errorf("missing warn line: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Error("debug line should be suppressed when not verbose")
	}
	if !strings.Contains(got, strings.Repeat("=", ruleWidth)) {
		t.Error("missing rule line")
	}
	if !strings.Contains(errOut.String(), "[ERROR] boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestLogger_VerboseColored(t *testing.T) {
	var out bytes.Buffer
	p := term.Colors()
	l := New(&out, &out, p, true)
	l.Debug("shown")
	if !strings.Contains(out.String(), p.Cyan+"[DEBUG]"+p.NC+" shown") {
		t.Errorf("colored debug line missing: %q", out.String())
	}
}
