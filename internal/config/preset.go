package config

// Preset support: a YAML file can define named bundles of format, codec and
// quality settings. Presets only seed values; explicit CLI flags override.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// presetFileName is looked up in the user's home directory and then the
// current directory; the first file found wins.
const presetFileName = ".vmerger.yaml"

// Preset is one named settings bundle from the preset file.
type Preset struct {
	Format     string `yaml:"format"`
	VideoCodec string `yaml:"video_codec"`
	AudioCodec string `yaml:"audio_codec"`
	Quality    string `yaml:"quality"`
	Output     string `yaml:"output"`
}

// presetFile is the on-disk shape of ~/.vmerger.yaml:
//
//	presets:
//	  small:
//	    format: mp4
//	    quality: 1M
type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// ApplyPreset finds the preset file, looks up name, and copies its non-empty
// fields into cfg. Returns an error when no preset file exists or the name
// is not defined.
func ApplyPreset(cfg *Config, name string) error {
	paths := presetSearchPaths()
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return applyPresetFromFile(cfg, path, name)
	}
	return fmt.Errorf("preset %q requested but no preset file found (looked for %s)",
		name, strings.Join(paths, ", "))
}

// presetSearchPaths returns the candidate preset file locations in lookup order.
func presetSearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, presetFileName))
	}
	return append(paths, filepath.Join(".", presetFileName))
}

// applyPresetFromFile parses path and applies the named preset to cfg.
func applyPresetFromFile(cfg *Config, path, name string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read preset file %s: %w", path, err)
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parse preset file %s: %w", path, err)
	}

	p, ok := pf.Presets[name]
	if !ok {
		return fmt.Errorf("preset %q not defined in %s", name, path)
	}

	if p.Format != "" {
		cfg.OutputFormat = p.Format
	}
	if p.VideoCodec != "" {
		cfg.VideoCodec = p.VideoCodec
	}
	if p.AudioCodec != "" {
		cfg.AudioCodec = p.AudioCodec
	}
	if p.Quality != "" {
		cfg.Quality = p.Quality
	}
	if p.Output != "" {
		cfg.OutputPath = p.Output
	}
	cfg.Preset = name
	return nil
}
