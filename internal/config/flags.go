package config

// This file implements CLI flag parsing and help text.
// A --preset named in args is applied before the FlagSet parses, so explicit
// flags always override preset values.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X ...config.version=...".
var version = "0.1.0"

// ParseFlags parses args (os.Args[1:]) into cfg. On --help or --version it
// prints and exits. On error it returns non-nil (e.g. unknown flag, unknown
// preset). Remaining positional arguments become cfg.InputFiles.
func ParseFlags(cfg *Config, args []string) error {
	// Presets are resolved first so that any flag passed alongside --preset
	// still wins over the preset's values.
	if name := presetArg(args); name != "" {
		if err := ApplyPreset(cfg, name); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("vmerger", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var aux auxFlags
	defineOutputFlags(fs, cfg)
	defineCodecFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &aux)
	defineDisplayFlags(fs, cfg, &aux)
	defineUtilityFlags(fs, &aux)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyAuxFlags(cfg, &aux)

	if aux.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if aux.showVersion {
		fmt.Fprintln(os.Stdout, "vmerger v"+version)
		os.Exit(0)
	}

	cfg.InputFiles = fs.Args()
	return nil
}

// auxFlags holds boolean flags that are applied after Parse. These either
// invert a default (noColor -> ColorNever) or trigger exit (showHelp, showVersion).
type auxFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
	presetName  string
}

// defineOutputFlags registers -F/--format and -O/--output.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputFormat, "format", cfg.OutputFormat, "Output format (e.g. mp4, avi, mov, mkv)")
	fs.StringVar(&cfg.OutputFormat, "F", cfg.OutputFormat, "Same as --format")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Output file path")
	fs.StringVar(&cfg.OutputPath, "O", cfg.OutputPath, "Same as --output")
}

// defineCodecFlags registers --video-codec, --audio-codec and -q/--quality.
func defineCodecFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.VideoCodec, "video-codec", cfg.VideoCodec, "Video codec (e.g. libx264, libx265, copy)")
	fs.StringVar(&cfg.AudioCodec, "audio-codec", cfg.AudioCodec, "Audio codec (e.g. aac, mp3, copy)")
	fs.StringVar(&cfg.Quality, "quality", cfg.Quality, "Video bitrate (e.g. 1M, 2000k)")
	fs.StringVar(&cfg.Quality, "q", cfg.Quality, "Same as --quality")
}

// defineBehaviorFlags registers -d/--dry-run and --preset.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, a *auxFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Build the command but do not run ffmpeg")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	// Already consumed by presetArg; registered so Parse accepts it.
	fs.StringVar(&a.presetName, "preset", "", "Apply a named preset from the preset file")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, a *auxFlags) {
	fs.BoolVar(&a.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&a.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, a *auxFlags) {
	fs.BoolVar(&a.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&a.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&a.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&a.showHelp, "h", false, "Same as --help")
}

// applyAuxFlags copies post-Parse flag values into cfg.
func applyAuxFlags(cfg *Config, a *auxFlags) {
	if a.noColor {
		cfg.ColorMode = ColorNever
	} else if a.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// presetArg scans raw args for a --preset value before flag parsing, so the
// preset can seed defaults that later flags override.
func presetArg(args []string) string {
	for i, a := range args {
		switch {
		case a == "--preset" || a == "-preset":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--preset="):
			return strings.TrimPrefix(a, "--preset=")
		case strings.HasPrefix(a, "-preset="):
			return strings.TrimPrefix(a, "-preset=")
		}
	}
	return ""
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "vmerger v" + version + " — merge video files with ffmpeg's concat demuxer"},
		{"", ""},
		{"  vmerger [OPTIONS] <input>...", ""},
		{"", ""},
		{"Output", ""},
		{"  -F, --format <fmt>", "Output format (mp4, avi, mov, mkv; default: mp4)"},
		{"  -O, --output <path>", "Output file path (default: <first-stem>_merged.<fmt>)"},
		{"", ""},
		{"Codecs", ""},
		{"  --video-codec <codec>", "Video codec override (e.g. libx264, copy)"},
		{"  --audio-codec <codec>", "Audio codec override (e.g. aac, copy)"},
		{"  -q, --quality <bitrate>", "Video bitrate (e.g. 1M, 2000k)"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Build the ffmpeg command but do not run it"},
		{"  --preset <name>", "Apply a named preset from ~/.vmerger.yaml"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, concat demuxer, codecs)"},
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
