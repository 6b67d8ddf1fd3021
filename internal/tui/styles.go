package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("63")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("205")
	ColorMuted     = lipgloss.Color("240")
	ColorError     = lipgloss.Color("196")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared by every view.
var (
	HeaderStyle      = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle       = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle       = lipgloss.NewStyle().Foreground(ColorValue)
	CurrentPageStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	EllipsisStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle        = lipgloss.NewStyle().Foreground(ColorValue).Italic(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(ColorError)
)

// Key names shared by the interactive models.
const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)
