package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how command output is presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled text (pipes, NO_COLOR, dumb terminals).
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String implements fmt.Stringer.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for stdout.
//
// plain forces OutputModePlain, and noColor does the same. forceColor styles output
// even when stdout is not a terminal but never makes it interactive.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, isTerminalFile(os.Stdout), os.LookupEnv)
}

func detectOutputMode(
	forceColor, noColor, plain, isTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if !isTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if _, ok := lookupEnv("CI"); ok {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the width of the terminal attached to stdout, or
// the default width when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func isTerminalFile(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
