package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the captured streams of a single ffmpeg invocation.
type ExecResult struct {
	Stdout string
	Stderr string
}

// Execute runs a built argument vector synchronously and captures both
// streams. When verbose, stderr is tee'd to os.Stderr in real time so the
// user sees ffmpeg's own output; otherwise it is captured silently.
//
// A non-zero exit returns an *ExecError carrying the captured stderr; a
// command that cannot be launched at all returns the wrapped launch error.
// The call blocks for ffmpeg's entire runtime; there is no timeout.
func Execute(ctx context.Context, args []string, verbose bool) (ExecResult, error) {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := ExecResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, &ExecError{Stderr: res.Stderr}
		}
		return res, fmt.Errorf("launch %s: %w", args[0], err)
	}
	return res, nil
}
