package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
// Non-TTY runs (CI, redirects) skip spinners and interactive chrome.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
