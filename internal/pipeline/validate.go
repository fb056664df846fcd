package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/natsuki221/vmerger/internal/config"
)

// Sentinel errors for input validation; each is wrapped with the offending path.
var (
	ErrMissingInput = errors.New("input file does not exist")
	ErrNotAFile     = errors.New("input path is not a regular file")
)

// ValidateInputs checks that every path exists and is a regular file. It is
// a pure predicate over the filesystem at call time: a file removed between
// this check and manifest creation surfaces later as a path resolution
// error (accepted best-effort validation, no locking).
func ValidateInputs(paths []string) error {
	if len(paths) == 0 {
		return config.ErrNoInputFiles
	}
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMissingInput, p)
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrNotAFile, p)
		}
	}
	return nil
}
