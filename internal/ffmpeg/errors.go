package ffmpeg

import "strings"

// ExecError reports an ffmpeg run that started but exited with a failure
// status. Stderr holds the tool's full captured diagnostic output verbatim.
type ExecError struct {
	Stderr string
}

func (e *ExecError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return "ffmpeg exited with failure status"
	}
	return "ffmpeg exited with failure status: " + msg
}
