package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natsuki221/vmerger/internal/check"
	"github.com/natsuki221/vmerger/internal/config"
	"github.com/natsuki221/vmerger/internal/display"
	"github.com/natsuki221/vmerger/internal/ffmpeg"
	"github.com/natsuki221/vmerger/internal/logging"
	"github.com/natsuki221/vmerger/internal/manifest"
)

// ErrOutputNotCreated is returned when ffmpeg reports success but the
// resolved output path does not exist afterwards. Distinct from an
// execution failure: it guards against silent no-op tool behavior.
var ErrOutputNotCreated = errors.New("output file was not created")

// Run executes the merge workflow: validate → check ffmpeg → resolve output
// → build manifest → build command → execute → verify → report. The first
// failing step aborts; the manifest is deleted regardless of outcome.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	// --- Validate inputs ---
	if err := ValidateInputs(cfg.InputFiles); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}

	// --- Check ffmpeg availability ---
	if err := check.CheckDeps(); err != nil {
		return fmt.Errorf("ffmpeg availability check failed: %w", err)
	}
	log.Debug(cfg.Verbose, "ffmpeg is available")

	// --- Resolve output path ---
	outputPath, err := cfg.ResolvedOutputPath()
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	log.Info("Merging %d files -> %s", len(cfg.InputFiles), outputPath)
	log.Debug(cfg.Verbose, "Video codec: %s", cfg.ResolveVideoCodec())
	log.Debug(cfg.Verbose, "Audio codec: %s", cfg.ResolveAudioCodec())

	// --- Build manifest (scoped: deleted on every exit path below) ---
	m, err := manifest.Create(cfg.InputFiles)
	if err != nil {
		return fmt.Errorf("build concat manifest: %w", err)
	}
	defer m.Close()
	log.Debug(cfg.Verbose, "Concat manifest: %s", m.Path())

	// --- Build command ---
	args := ffmpeg.Build(cfg, m.Path(), outputPath)
	log.Debug(cfg.Verbose, "Command: %s", strings.Join(args, " "))

	if cfg.DryRun {
		log.Success("[DRY] Would run: %s", strings.Join(args, " "))
		return nil
	}

	// --- Execute ---
	start := time.Now()
	res, err := ffmpeg.Execute(ctx, args, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	if res.Stdout != "" {
		log.Debug(cfg.Verbose, "ffmpeg stdout:\n%s", res.Stdout)
	}

	// --- Verify output ---
	fi, err := os.Stat(outputPath)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrOutputNotCreated, outputPath)
	}

	// --- Report ---
	log.Success("Merge completed in %ds", int(time.Since(start).Seconds()))
	log.Info("Output: %s (%s)", outputPath, display.FormatBytes(fi.Size()))
	return nil
}
