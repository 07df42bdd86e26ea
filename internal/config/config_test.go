package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/runs", "/data/runs"},
		{"single trailing slash", "/data/runs/", "/data/runs"},
		{"multiple trailing slashes", "/data/runs///", "/data/runs"},
		{"root path", "/", "/"},
		{"relative path", "result", "result"},
		{"relative with slash", "result/", "result"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with paths", func(c *Config) {}, false},
		{"empty alphabet", func(c *Config) { c.Alphabet = nil }, true},
		{"zero length", func(c *Config) { c.TagLength = 0 }, true},
		{"multi-char symbols", func(c *Config) { c.Alphabet = []string{"AA", "TT"} }, false},
		{"symbol with colon", func(c *Config) { c.Alphabet = []string{"A:", "T"} }, true},
		{"symbol with underscore", func(c *Config) { c.Alphabet = []string{"A", "_T"} }, true},
		{"symbol with slash", func(c *Config) { c.Alphabet = []string{"../", "T"} }, true},
		{"same markers", func(c *Config) { c.SecondaryMarker = c.PrimaryMarker }, true},
		{"empty marker", func(c *Config) { c.PrimaryMarker = "" }, true},
		{"primary contains secondary", func(c *Config) { c.PrimaryMarker = "_R2_x" }, true},
		{"zero header interval", func(c *Config) { c.HeaderInterval = 0 }, true},
		{"instrument with colon", func(c *Config) { c.Instrument = "@A:B" }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"bad color", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"missing source", func(c *Config) { c.SourceDir = "" }, true},
		{"missing result", func(c *Config) { c.ResultDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SourceDir = "source"
			cfg.ResultDir = "result"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		result  string
		wantErr bool
	}{
		{"separate directories", "/data/source", "/data/result", false},
		{"result equals source", "/data/run", "/data/run", true},
		{"trailing slash still equal", "/data/run/", "/data/run", true},
		{"result inside source", "/data/run", "/data/run/out", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.source, tt.result)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.source, tt.result, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if diff := cmp.Diff([]string{"A", "T", "C", "G"}, cfg.Alphabet); diff != "" {
		t.Errorf("default Alphabet mismatch (-want +got):\n%s", diff)
	}
	if cfg.TagLength != 6 {
		t.Errorf("default TagLength = %d, want 6", cfg.TagLength)
	}
	if cfg.PrimaryMarker != "_R1_" || cfg.SecondaryMarker != "_R2_" {
		t.Errorf("default markers = %q/%q", cfg.PrimaryMarker, cfg.SecondaryMarker)
	}
	if cfg.Instrument != "@MISEQ" {
		t.Errorf("default Instrument = %q", cfg.Instrument)
	}
	if cfg.HeaderInterval != 4 {
		t.Errorf("default HeaderInterval = %d, want 4", cfg.HeaderInterval)
	}
	if !cfg.SortPairs || !cfg.Cleanup {
		t.Error("SortPairs and Cleanup should default to true")
	}
	if cfg.Workers != 1 {
		t.Errorf("default Workers = %d, want 1", cfg.Workers)
	}
	if cfg.DryRun || cfg.Force {
		t.Error("DryRun and Force should default to false")
	}
}

func TestPaths_BasePathPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = "source"
	cfg.ResultDir = "result"
	cfg.BasePath = "project_1/"
	if got := cfg.SourcePath(); got != "project_1/source" {
		t.Errorf("SourcePath() = %q", got)
	}
	if got := cfg.ResultPath(); got != "project_1/result" {
		t.Errorf("ResultPath() = %q", got)
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{
		"--alphabet", "ACGT", "--length", "3", "--no-sort", "--keep-partial",
		"--workers", "4", "-d", "--no-color", "src/", "out", "base/",
	}
	if err := ParseFlags(&cfg, "test", args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if diff := cmp.Diff([]string{"A", "C", "G", "T"}, cfg.Alphabet); diff != "" {
		t.Errorf("Alphabet mismatch (-want +got):\n%s", diff)
	}
	if cfg.TagLength != 3 || cfg.Workers != 4 {
		t.Errorf("TagLength=%d Workers=%d", cfg.TagLength, cfg.Workers)
	}
	if cfg.SortPairs || cfg.Cleanup || !cfg.DryRun {
		t.Errorf("SortPairs=%v Cleanup=%v DryRun=%v", cfg.SortPairs, cfg.Cleanup, cfg.DryRun)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
	if cfg.SourceDir != "src" || cfg.ResultDir != "out" || cfg.BasePath != "base/" {
		t.Errorf("paths = %q %q %q", cfg.SourceDir, cfg.ResultDir, cfg.BasePath)
	}
}

func TestParseFlags_PositionalCount(t *testing.T) {
	for _, args := range [][]string{{}, {"only"}, {"a", "b", "c", "d"}} {
		cfg := DefaultConfig()
		if err := ParseFlags(&cfg, "test", args); err == nil {
			t.Errorf("ParseFlags(%v) should fail", args)
		}
	}
}

func TestParseAlphabet(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"ATCG", []string{"A", "T", "C", "G"}, false},
		{"A,T,C,G", []string{"A", "T", "C", "G"}, false},
		{" AA, TT ", []string{"AA", "TT"}, false},
		{"", nil, true},
		{"A,,T", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlphabet(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlphabet(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAlphabet(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestScanEnvFileFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"src", "out"}, ".env"},
		{[]string{"--env", "run.env", "src", "out"}, "run.env"},
		{[]string{"-env=other.env", "src"}, "other.env"},
		{[]string{"--", "--env", "x"}, ".env"},
	}
	for _, tt := range tests {
		if got := ScanEnvFileFlag(tt.args, ".env"); got != tt.want {
			t.Errorf("ScanEnvFileFlag(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestLoadEnv_FileAndProcessEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.env")
	content := "PAIRTAG_LENGTH=4\nPAIRTAG_INSTRUMENT=@NOVASEQ\nPAIRTAG_SORT=false\nOTHER=1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PAIRTAG_LENGTH", "5")

	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.TagLength != 5 {
		t.Errorf("TagLength = %d, want 5 (process env wins)", cfg.TagLength)
	}
	if cfg.Instrument != "@NOVASEQ" {
		t.Errorf("Instrument = %q", cfg.Instrument)
	}
	if cfg.SortPairs {
		t.Error("SortPairs should be false from env file")
	}
}

func TestLoadEnv_MissingFileIgnored(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("LoadEnv with missing file: %v", err)
	}
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := map[string]string{
		"PAIRTAG_LENGTH":  "six",
		"PAIRTAG_WORKERS": "",
		"PAIRTAG_BOGUS":   "1",
		"PAIRTAG_FORCE":   "maybe",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ApplyEnv(&cfg, map[string]string{k: v}); err == nil {
				t.Errorf("ApplyEnv(%s=%q) should fail", k, v)
			}
		})
	}
}
