// Package check provides system diagnostics (--check mode) and the
// pre-merge availability probe for ffmpeg.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrFfmpegNotFound is returned when ffmpeg is absent from PATH or present
// but unable to run. Both cases are reported uniformly: the tool is unusable.
var ErrFfmpegNotFound = errors.New("ffmpeg not found (install FFmpeg and ensure it is on your PATH)")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckDeps is the pre-merge validation: ffmpeg must be on PATH and its
// version probe must exit zero. Returns ErrFfmpegNotFound otherwise.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if !runSilent("ffmpeg", "-version") {
		return ErrFfmpegNotFound
	}
	return nil
}

// RunCheck runs the interactive --check flow: ffmpeg version, concat demuxer
// availability, relevant encoders, and minimal test encodes. Informational
// only; it does not stop on failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")

	checkFfmpeg(log)
	checkConcatDemuxer(log)
	checkEncoders(log)
	testX264(log)
	testAAC(log)
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

// checkConcatDemuxer confirms the concat demuxer this tool relies on is
// compiled into the ffmpeg build.
func checkConcatDemuxer(log Logger) {
	cmd := exec.Command("ffmpeg", "-hide_banner", "-demuxers")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list demuxers: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "concat" {
			log.Success("concat demuxer available")
			return
		}
	}
	log.Error("concat demuxer not available in this ffmpeg build")
}

// checkEncoders lists the encoders the codec table can select.
func checkEncoders(log Logger) {
	log.Info("Relevant encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	wanted := []string{"libx264", "libxvid", "aac", "mp3"}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		for _, w := range wanted {
			if strings.Contains(lower, w) {
				log.Info("  %s", strings.TrimSpace(line))
				break
			}
		}
	}
}

// testX264 runs a minimal libx264 encode to verify the default mp4/mkv
// video codec works.
func testX264(log Logger) {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264",
		"-f", "null", "-",
	) {
		log.Success("libx264 works")
	} else {
		log.Error("libx264 test encode failed")
	}
}

// testAAC runs a minimal AAC encode to verify the default audio codec works.
func testAAC(log Logger) {
	log.Info("Testing AAC encoder...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "aac", "-f", "null", "-",
	) {
		log.Success("AAC encoder works")
	} else {
		log.Error("AAC encoder test failed")
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
