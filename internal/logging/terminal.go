package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminalWriter reports whether w is a terminal, so console output can keep its colors.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
