// Command vmerger merges multiple video files into one by driving ffmpeg's
// concat demuxer. It parses flags, validates config, and either runs system
// diagnostics (--check) or the merge pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/natsuki221/vmerger/internal/check"
	"github.com/natsuki221/vmerger/internal/config"
	"github.com/natsuki221/vmerger/internal/display"
	"github.com/natsuki221/vmerger/internal/logging"
	"github.com/natsuki221/vmerger/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	// 1. Load config from defaults and CLI flags; exit on parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vmerger: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "vmerger: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vmerger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()
	log.Debug(cfg.Verbose, "vmerger v%s (%s)", version, commit)

	// 2. If user asked for system check, run it and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(log)
		os.Exit(0)
	}

	// 3. Run the merge pipeline. A hung ffmpeg hangs the invocation: there
	// is deliberately no timeout or cancellation here.
	if err := pipeline.Run(context.Background(), &cfg, log); err != nil {
		reportFailure(log, err)
		log.Close()
		os.Exit(1)
	}
}

// reportFailure prints the top-level error plus its full chain of underlying
// causes, one per line, to stderr.
func reportFailure(log *logging.Logger, err error) {
	log.Error("%v", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(os.Stderr, "  caused by: %v\n", cause)
	}
}
