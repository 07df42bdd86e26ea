package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into tag pool, pairing/layout, behavior, display, and utility.
// Negated flags (e.g. --no-sort) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, missing positional args).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("pairtag", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var negated negatedFlags

	definePoolFlags(fs, cfg)
	defineLayoutFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "pairtag v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	noSort      bool
	keepPartial bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePoolFlags registers --alphabet and --length.
func definePoolFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&alphabetValue{&cfg.Alphabet}, "alphabet", "Tag symbols, comma separated or one per character")
	fs.IntVar(&cfg.TagLength, "length", cfg.TagLength, "Tag length in symbols")
}

// defineLayoutFlags registers role markers, instrument, and header interval.
func defineLayoutFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.PrimaryMarker, "primary", cfg.PrimaryMarker, "Primary role marker")
	fs.StringVar(&cfg.SecondaryMarker, "secondary", cfg.SecondaryMarker, "Secondary role marker")
	fs.StringVar(&cfg.Instrument, "instrument", cfg.Instrument, "Instrument literal for header field 0")
	fs.IntVar(&cfg.HeaderInterval, "header-every", cfg.HeaderInterval, "Header line interval")
}

// defineBehaviorFlags registers sort, workers, force, keep-partial, dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noSort, "no-sort", false, "Keep directory listing order")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Pairs processed concurrently")
	fs.BoolVar(&cfg.Force, "force", cfg.Force, "Overwrite existing result files")
	fs.BoolVar(&cfg.Force, "f", cfg.Force, "Same as --force")
	fs.BoolVar(&n.keepPartial, "keep-partial", false, "Keep result files written before a failure")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Preview only; do not write files")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log, --env.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.StringVar(&cfg.EnvFile, "env", cfg.EnvFile, "Dotenv file with PAIRTAG_* settings")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noSort {
		cfg.SortPairs = false
	}
	if n.keepPartial {
		cfg.Cleanup = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets SourceDir, ResultDir and the optional BasePath.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("need source_subdir and result_subdir, plus optional base_path (got %d args)", len(args))
	}
	cfg.SourceDir = NormalizeDirArg(args[0])
	cfg.ResultDir = NormalizeDirArg(args[1])
	if len(args) == 3 {
		cfg.BasePath = args[2]
	}
	return nil
}

// ScanEnvFileFlag returns the --env value from args without parsing the
// rest, so the dotenv layer can load before flags override it.
func ScanEnvFileFlag(args []string, def string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		if v, ok := strings.CutPrefix(name, "env="); ok {
			return v
		}
		if name == "env" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return def
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "pairtag v" + version + " - unique ATCG tags for paired read files"},
		{"", ""},
		{"  pairtag [OPTIONS] <source_subdir> <result_subdir> [base_path]", ""},
		{"", ""},
		{"Tag pool", ""},
		{"  --alphabet <A,T,C,G>", "Tag symbols (default: A,T,C,G)"},
		{"  --length <n>", "Tag length (default: 6)"},
		{"", ""},
		{"Pairs & records", ""},
		{"  --primary <marker>", "Primary role marker (default: _R1_)"},
		{"  --secondary <marker>", "Secondary role marker (default: _R2_)"},
		{"  --instrument <id>", "Header field 0 literal (default: @MISEQ)"},
		{"  --header-every <n>", "Header line interval (default: 4)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  --no-sort", "Keep directory listing order"},
		{"  --workers <n>", "Pairs processed concurrently (default: 1)"},
		{"  -f, --force", "Overwrite existing result files"},
		{"  --keep-partial", "Keep result files written before a failure"},
		{"  -d, --dry-run", "Preview only; do not write files"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --env <path>", "Dotenv file with PAIRTAG_* settings (default: .env)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// alphabetValue adapts a symbol list to flag.Value.
type alphabetValue struct{ p *[]string }

func (a *alphabetValue) String() string {
	if a.p == nil {
		return ""
	}
	return strings.Join(*a.p, ",")
}

func (a *alphabetValue) Set(s string) error {
	syms, err := ParseAlphabet(s)
	if err != nil {
		return err
	}
	*a.p = syms
	return nil
}

// ParseAlphabet splits s on commas; without commas each rune is a symbol
// ("ATCG" and "A,T,C,G" are equivalent).
func ParseAlphabet(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("alphabet must not be empty")
	}
	var syms []string
	if strings.Contains(s, ",") {
		for _, f := range strings.Split(s, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				return nil, fmt.Errorf("invalid alphabet %q (empty symbol)", s)
			}
			syms = append(syms, f)
		}
		return syms, nil
	}
	for _, r := range s {
		syms = append(syms, string(r))
	}
	return syms, nil
}
