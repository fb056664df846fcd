// Package config holds runtime configuration: defaults, CLI flag parsing,
// validation, and the derivations built on top of it (output path and codec
// resolution). The Config is constructed once at startup and passed (by
// pointer) to packages that need it; it is never mutated after ParseFlags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultFormat is the output container used when neither --format nor an
// explicit output path is given.
const DefaultFormat = "mp4"

// Sentinel errors for output path derivation and input validation.
var (
	ErrNoInputFiles    = errors.New("no input files provided")
	ErrInvalidFilename = errors.New("input filename has no usable stem")
)

// Config holds all runtime settings for one merge invocation.
type Config struct {
	// Merge request (set from positional args and flags).
	InputFiles   []string // One or more video paths, in concat order.
	OutputFormat string   // Container format, e.g. "mp4". Empty means DefaultFormat.
	OutputPath   string   // Explicit output path; overrides derivation.
	VideoCodec   string   // Explicit video codec; overrides the format table.
	AudioCodec   string   // Explicit audio codec; overrides the format table.
	Quality      string   // Video bitrate for -b:v, e.g. "1M". Empty means omit.

	// Behavior flags.
	DryRun bool   // Build everything, execute nothing.
	Preset string // Name of the preset applied from the preset file, if any.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// Validate checks that enum fields hold valid values and, unless running in
// CheckOnly mode, that at least one input file was supplied.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.InputFiles) == 0 {
		return ErrNoInputFiles
	}
	return nil
}

// codecDefaults maps a lowercase output format to the codecs used when the
// user supplies no explicit override. Formats not listed here resolve to
// stream copy.
var codecDefaults = map[string]struct{ video, audio string }{
	"mp4": {"libx264", "aac"},
	"mkv": {"libx264", "aac"},
	"avi": {"libxvid", "mp3"},
	"mov": {"libx264", "aac"},
}

// ResolveVideoCodec returns the video codec for the output: the explicit
// --video-codec value when given, else the format table entry, else "copy".
func (c *Config) ResolveVideoCodec() string {
	if c.VideoCodec != "" {
		return c.VideoCodec
	}
	if d, ok := codecDefaults[strings.ToLower(c.OutputFormat)]; ok {
		return d.video
	}
	return "copy"
}

// ResolveAudioCodec returns the audio codec for the output, with the same
// precedence as [Config.ResolveVideoCodec].
func (c *Config) ResolveAudioCodec() string {
	if c.AudioCodec != "" {
		return c.AudioCodec
	}
	if d, ok := codecDefaults[strings.ToLower(c.OutputFormat)]; ok {
		return d.audio
	}
	return "copy"
}

// ResolvedOutputPath returns the output file path. An explicit --output value
// is used verbatim; otherwise the path is derived from the first input's
// filename stem as "<stem>_merged.<format>".
func (c *Config) ResolvedOutputPath() (string, error) {
	if c.OutputPath != "" {
		return c.OutputPath, nil
	}
	if len(c.InputFiles) == 0 {
		return "", ErrNoInputFiles
	}

	base := filepath.Base(c.InputFiles[0])
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, base)
	}

	format := c.OutputFormat
	if format == "" {
		format = DefaultFormat
	}
	return stem + "_merged." + format, nil
}
