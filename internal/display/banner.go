package display

import (
	"fmt"
	"os"

	"github.com/natsuki221/vmerger/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, `__   ___ __ ___   ___ _ __ __ _  ___ _ __
\ \ / / '_ `+"`"+` _ \ / _ \ '__/ _`+"`"+` |/ _ \ '__|
 \ V /| | | | | |  __/ | | (_| |  __/ |
  \_/ |_| |_| |_|\___|_|  \__, |\___|_|
                          |___/
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
