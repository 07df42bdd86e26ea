package check

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/pairtag/internal/config"
)

func newConfig(base, src, res string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.BasePath = base
	cfg.SourceDir = src
	cfg.ResultDir = res
	return &cfg
}

func TestPreflight_OK(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "source"))
	mustMkdir(t, filepath.Join(base, "result"))

	p, err := Preflight(newConfig(base+"/", "source", "result"))
	if err != nil {
		t.Fatalf("Preflight: %v", err)
	}
	if filepath.Base(p.Source) != "source" || filepath.Base(p.Result) != "result" {
		t.Errorf("paths = %+v", p)
	}
	entries, _ := os.ReadDir(p.Result)
	if len(entries) != 0 {
		t.Errorf("write probe left files behind: %v", entries)
	}
}

func TestPreflight_Errors(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "source"))
	if err := os.WriteFile(filepath.Join(base, "file"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  string
		res  string
		want error
	}{
		{"missing source", "nope", "source", ErrSourceMissing},
		{"missing result", "source", "nope", ErrResultMissing},
		{"result is a file", "source", "file", ErrNotDirectory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preflight(newConfig(base+"/", tt.src, tt.res))
			if !errors.Is(err, tt.want) {
				t.Errorf("Preflight error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPreflight_SameDirectory(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "run"))
	if _, err := Preflight(newConfig(base+"/", "run", "run")); err == nil {
		t.Error("Preflight should reject identical source and result")
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
}
