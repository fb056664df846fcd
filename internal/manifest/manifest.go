// Package manifest writes the temporary list file consumed by ffmpeg's
// concat demuxer: one line per input, `file '<absolute-path>'`, in input
// order. The file lives for a single merge invocation; the returned handle's
// Close deletes it, so callers defer Close immediately after Create.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the handle to a concat list file on disk.
type Manifest struct {
	path string
}

// Create writes a concat manifest for inputs into a uniquely-named temp file.
// Each path is canonicalized (absolute, symlinks resolved) before being
// recorded; a path that cannot be resolved (e.g. removed since validation)
// fails the whole build. On any error the temp file is removed before
// returning.
func Create(inputs []string) (*Manifest, error) {
	f, err := os.CreateTemp("", "vmerger-concat-*.txt")
	if err != nil {
		return nil, fmt.Errorf("create concat manifest: %w", err)
	}
	m := &Manifest{path: f.Name()}

	if err := writeEntries(f, inputs); err != nil {
		f.Close()
		os.Remove(m.path)
		return nil, err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(m.path)
		return nil, fmt.Errorf("flush concat manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(m.path)
		return nil, fmt.Errorf("close concat manifest: %w", err)
	}
	return m, nil
}

// Path returns the manifest file's location, for use as the ffmpeg -i argument.
func (m *Manifest) Path() string {
	return m.path
}

// Close deletes the manifest file. Safe to call after a failed Create stage
// higher up; the first call wins.
func (m *Manifest) Close() error {
	if m.path == "" {
		return nil
	}
	err := os.Remove(m.path)
	m.path = ""
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// writeEntries writes one `file '<abs>'` line per input, preserving order.
// Line order determines concatenation order in the output.
func writeEntries(f *os.File, inputs []string) error {
	for _, in := range inputs {
		abs, err := canonicalize(in)
		if err != nil {
			return fmt.Errorf("resolve input path %s: %w", in, err)
		}
		if _, err := fmt.Fprintf(f, "file '%s'\n", abs); err != nil {
			return fmt.Errorf("write concat manifest: %w", err)
		}
	}
	return nil
}

// canonicalize returns the absolute path with symlinks resolved. Absolute
// paths require ffmpeg's -safe 0.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
