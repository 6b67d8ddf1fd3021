package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/paginator/pkg/paginator"
)

// RenderPageBar draws a page window on one line, e.g. "1 … 4 5 [6] 7 8 … 100".
//
// The current page is bracketed as well as highlighted so it stays visible
// without color. The bar is truncated to width cells when width is positive.
func RenderPageBar(pages []paginator.Page, width int) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, pg := range pages {
		switch {
		case pg.IsEllipsis():
			parts = append(parts, EllipsisStyle.Render(pg.Label))
		case pg.IsCurrent:
			parts = append(parts, CurrentPageStyle.Render("["+pg.Label+"]"))
		default:
			parts = append(parts, ValueStyle.Render(pg.Label))
		}
	}

	bar := strings.Join(parts, " ")
	if width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}
