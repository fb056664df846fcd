package ffmpeg

import (
	"github.com/natsuki221/vmerger/internal/config"
)

// Build constructs the complete ffmpeg argument slice for one merge. The
// concat grammar is fixed and order-sensitive:
//
//	-f concat -safe 0 -i <manifest> -c:v <v> -c:a <a> [-b:v <quality>] -y <output>
//
// -safe 0 is required because manifest entries are absolute paths. -b:v is
// emitted only when a quality was supplied. -y unconditionally overwrites
// an existing output.
func Build(cfg *config.Config, manifestPath, outputPath string) []string {
	args := make([]string, 0, 20)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin")

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Concat input ---
	args = append(args, "-f", "concat", "-safe", "0", "-i", manifestPath)

	// --- Codecs ---
	args = append(args, "-c:v", cfg.ResolveVideoCodec())
	args = append(args, "-c:a", cfg.ResolveAudioCodec())

	// --- Optional video bitrate ---
	if cfg.Quality != "" {
		args = append(args, "-b:v", cfg.Quality)
	}

	// --- Output ---
	args = append(args, "-y", outputPath)

	return args
}
