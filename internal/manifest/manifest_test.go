package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir stands in for t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestCreate_LinesMatchInputOrder(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.mp4")
	b := touch(t, dir, "b.mp4")

	m, err := Create([]string{a, b})
	require.NoError(t, err)
	defer m.Close()

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	absA, err := canonicalize(a)
	require.NoError(t, err)
	absB, err := canonicalize(b)
	require.NoError(t, err)

	assert.Equal(t, "file '"+absA+"'", lines[0])
	assert.Equal(t, "file '"+absB+"'", lines[1])
}

func TestCreate_CanonicalizesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.mp4")
	chdir(t, dir)

	m, err := Create([]string{"clip.mp4"})
	require.NoError(t, err)
	defer m.Close()

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "file '"), "line = %q", line)
	assert.True(t, filepath.IsAbs(extractPath(line)), "manifest must record absolute paths, got %q", line)
}

func TestCreate_ResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	real := touch(t, dir, "real.mp4")
	link := filepath.Join(dir, "link.mp4")
	require.NoError(t, os.Symlink(real, link))

	m, err := Create([]string{link})
	require.NoError(t, err)
	defer m.Close()

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)

	absReal, err := canonicalize(real)
	require.NoError(t, err)
	assert.Equal(t, "file '"+absReal+"'", strings.TrimSpace(string(data)))
}

func TestCreate_MissingInputFails(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.mp4")
	gone := filepath.Join(dir, "vanished.mp4")

	m, err := Create([]string{a, gone})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), gone)
}

func TestClose_RemovesFile(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.mp4")

	m, err := Create([]string{a})
	require.NoError(t, err)

	path := m.Path()
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Second Close is a no-op.
	assert.NoError(t, m.Close())
}

// extractPath pulls the quoted path out of a `file '<path>'` line.
func extractPath(line string) string {
	line = strings.TrimPrefix(line, "file '")
	return strings.TrimSuffix(line, "'")
}
