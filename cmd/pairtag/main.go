// Command pairtag stamps a unique ATCG tag onto every read-file pair in a
// source directory, writing renamed and header-rewritten copies to a result
// directory.
//
//	pairtag [OPTIONS] <source_subdir> <result_subdir> [base_path]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/backmassage/pairtag/internal/check"
	"github.com/backmassage/pairtag/internal/config"
	"github.com/backmassage/pairtag/internal/display"
	"github.com/backmassage/pairtag/internal/logging"
	"github.com/backmassage/pairtag/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: no logger yet, errors go straight to stderr.
	args := os.Args[1:]
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(&cfg, config.ScanEnvFileFlag(args, cfg.EnvFile)); err != nil {
		fmt.Fprintf(os.Stderr, "pairtag: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version, args); err != nil {
		fmt.Fprintf(os.Stderr, "pairtag: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pairtag: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pairtag: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout, log.Palette())

	dirs, err := check.Preflight(&cfg)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== pairtag v%s (%s) ===", version, commit)
	log.Info("Source: %s", dirs.Source)
	log.Info("Result: %s", dirs.Result)
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}

	// Cancel on SIGINT/SIGTERM; the pipeline stops before the next pair.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current pair...")
		cancel()
	}()

	if _, err := pipeline.Run(ctx, &cfg, dirs, log); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			log.Error("%s", line)
		}
		return 1
	}
	return 0
}
