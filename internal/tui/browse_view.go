package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/paginator/internal/cli/pagination"
)

// View implements tea.Model.
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	meta := pagination.NewMeta(m.pager)
	sections := []string{
		HeaderStyle.Render("Paginator"),
		RenderPageBar(meta.Pages, m.width),
		LabelStyle.Render(meta.Summary(m.locale)),
		"",
	}

	if m.items.ItemCount() == 0 {
		sections = append(sections, InfoStyle.Render("No items on this page."))
	} else {
		sections = append(sections, m.items.View())
		if n := m.UnlistedItems(); n > 0 {
			sections = append(sections, InfoStyle.Render(fmt.Sprintf("… and %d more items on this page", n)))
		}
	}
	sections = append(sections, "")

	switch {
	case m.jumping:
		sections = append(sections, m.input.View())
	case m.status != "":
		sections = append(sections, ErrorStyle.Render(m.status))
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
