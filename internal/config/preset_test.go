package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetYAML = `presets:
  small:
    format: mp4
    video_codec: libx264
    quality: 1M
  archive:
    format: mkv
    audio_codec: flac
`

// chdir stands in for t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// writePresetFile puts a preset file in a fresh HOME so the lookup is
// hermetic regardless of the developer's real ~/.vmerger.yaml.
func writePresetFile(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, presetFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestApplyPreset(t *testing.T) {
	writePresetFile(t, presetYAML)

	cfg := DefaultConfig()
	require.NoError(t, ApplyPreset(&cfg, "small"))

	assert.Equal(t, "mp4", cfg.OutputFormat)
	assert.Equal(t, "libx264", cfg.VideoCodec)
	assert.Equal(t, "1M", cfg.Quality)
	assert.Empty(t, cfg.AudioCodec, "preset must not touch fields it does not set")
	assert.Equal(t, "small", cfg.Preset)
}

func TestApplyPreset_UnknownName(t *testing.T) {
	writePresetFile(t, presetYAML)

	cfg := DefaultConfig()
	err := ApplyPreset(&cfg, "huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "huge")
}

func TestApplyPreset_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg := DefaultConfig()
	err := ApplyPreset(&cfg, "small")
	assert.Error(t, err)
}

func TestApplyPreset_MalformedYAML(t *testing.T) {
	writePresetFile(t, "presets: [not, a, map")

	cfg := DefaultConfig()
	err := ApplyPreset(&cfg, "small")
	assert.Error(t, err)
}

func TestParseFlags_FlagsOverridePreset(t *testing.T) {
	writePresetFile(t, presetYAML)

	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"--preset", "small", "-F", "avi", "a.mp4"})
	require.NoError(t, err)

	assert.Equal(t, "avi", cfg.OutputFormat, "explicit flag must beat the preset")
	assert.Equal(t, "1M", cfg.Quality, "untouched preset values must survive")
	assert.Equal(t, "libx264", cfg.VideoCodec)
}
