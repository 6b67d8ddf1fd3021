// Package tui holds the terminal presentation of the paginator CLI: output
// mode detection, lipgloss styles, the styled page bar and the interactive
// browse program.
package tui
