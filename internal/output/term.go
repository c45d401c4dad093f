package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
// Spinners and styled trees are skipped for piped output.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
