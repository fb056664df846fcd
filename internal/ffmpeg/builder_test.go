package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natsuki221/vmerger/internal/config"
)

func TestBuild_ConcatGrammar(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputFormat = "mp4"

	args := Build(&cfg, "/tmp/list.txt", "out.mp4")

	require.Equal(t, "ffmpeg", args[0])
	assertSubsequence(t, args, []string{"-f", "concat", "-safe", "0", "-i", "/tmp/list.txt"})
	assertSubsequence(t, args, []string{"-c:v", "libx264", "-c:a", "aac"})

	// Output is last, forced overwrite right before it.
	require.GreaterOrEqual(t, len(args), 2)
	assert.Equal(t, "-y", args[len(args)-2])
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

func TestBuild_QualityFlag(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Quality = "1M"

	args := Build(&cfg, "list.txt", "out.mp4")
	assertSubsequence(t, args, []string{"-b:v", "1M"})
}

func TestBuild_NoQualityOmitsBitrate(t *testing.T) {
	cfg := config.DefaultConfig()

	args := Build(&cfg, "list.txt", "out.mp4")
	assert.NotContains(t, args, "-b:v")
}

func TestBuild_CodecOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputFormat = "avi"
	cfg.VideoCodec = "libx265"
	cfg.AudioCodec = "copy"

	args := Build(&cfg, "list.txt", "out.avi")
	assertSubsequence(t, args, []string{"-c:v", "libx265"})
	assertSubsequence(t, args, []string{"-c:a", "copy"})
	assert.NotContains(t, args, "libxvid")
}

func TestBuild_Loglevel(t *testing.T) {
	cfg := config.DefaultConfig()

	args := Build(&cfg, "list.txt", "out.mp4")
	assertSubsequence(t, args, []string{"-loglevel", "error"})

	cfg.Verbose = true
	args = Build(&cfg, "list.txt", "out.mp4")
	assertSubsequence(t, args, []string{"-loglevel", "info"})
}

// assertSubsequence checks that want appears contiguously within args.
func assertSubsequence(t *testing.T, args, want []string) {
	t.Helper()
	for i := 0; i+len(want) <= len(args); i++ {
		match := true
		for j := range want {
			if args[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	t.Errorf("args %v do not contain contiguous subsequence %v", args, want)
}
