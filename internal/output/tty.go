package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorEnabled reports whether styled output should be written to stdout.
// NO_COLOR disables color regardless of the terminal.
func ColorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTTY()
}
