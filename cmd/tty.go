package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
)

// isStderrTTY reports whether stderr is attached to a terminal.
func isStderrTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
