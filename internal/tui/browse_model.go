package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/paginator/internal/logging"
	"github.com/rshade/paginator/internal/tui/list"
	"github.com/rshade/paginator/pkg/paginator"
)

const (
	gotoInputCharLimit = 9
	gotoInputWidth     = 12

	// chromeHeight is the number of rows taken by everything but the item list.
	chromeHeight = 8

	// maxListedItems bounds the rows materialized for one page.
	maxListedItems = 1000
)

// BrowseKeyMap defines the page navigation bindings of the browse program.
type BrowseKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	GoTo  key.Binding
	Help  key.Binding
	Quit  key.Binding

	List list.KeyMap
}

// DefaultBrowseKeyMap returns the standard browse bindings.
func DefaultBrowseKeyMap() BrowseKeyMap {
	return BrowseKeyMap{
		Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next page")),
		Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous page")),
		First: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first page")),
		Last:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last page")),
		GoTo:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to page")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:  key.NewBinding(key.WithKeys(keyQuit, keyCtrlC), key.WithHelp("q", "quit")),
		List:  list.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k BrowseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.GoTo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BrowseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.List.Up, k.List.Down, k.List.PageUp, k.List.PageDown},
		{k.GoTo, k.Help, k.Quit},
	}
}

// BrowseModel is the Bubble Tea model of the browse command. It moves a
// paginator between pages and lists the item numbers on the current page.
type BrowseModel struct {
	ctx    context.Context
	pager  *paginator.Paginator
	locale string

	keys  BrowseKeyMap
	help  help.Model
	input textinput.Model
	items *list.VirtualListModel[int]

	jumping  bool
	status   string
	quitting bool

	width  int
	height int
}

// NewBrowseModel creates a browse model for p. Counts in the summary line
// are formatted for locale.
func NewBrowseModel(ctx context.Context, p *paginator.Paginator, locale string) *BrowseModel {
	m := &BrowseModel{
		ctx:    ctx,
		pager:  p,
		locale: locale,
		keys:   DefaultBrowseKeyMap(),
		help:   help.New(),
		input:  newGotoInput(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.items = list.NewVirtualListModel(m.pageItems(), m.listHeight(), m.width, renderItem)
	return m
}

func newGotoInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "page number"
	ti.Prompt = "Go to page: "
	ti.CharLimit = gotoInputCharLimit
	ti.Width = gotoInputWidth
	return ti
}

func renderItem(item int, selected bool) string {
	line := "Item " + strconv.Itoa(item)
	if selected {
		return CurrentPageStyle.Render("> " + line)
	}
	return ValueStyle.Render("  " + line)
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.items.SetSize(msg.Width, m.listHeight())
		return m, nil
	case tea.KeyMsg:
		if m.jumping {
			return m.handleGotoInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		if next, ok := m.pager.NextPage(); ok {
			m.setPage(next)
		}
	case key.Matches(msg, m.keys.Prev):
		if prev, ok := m.pager.PrevPage(); ok {
			m.setPage(prev)
		}
	case key.Matches(msg, m.keys.First):
		if m.pager.NumPages() > 0 {
			m.setPage(1)
		}
	case key.Matches(msg, m.keys.Last):
		if m.pager.NumPages() > 0 {
			m.setPage(m.pager.NumPages())
		}
	case key.Matches(msg, m.keys.GoTo):
		m.jumping = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		_, cmd := m.items.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *BrowseModel) handleGotoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case keyEsc:
		m.closeGotoInput()
		return m, nil
	case keyEnter:
		raw := strings.TrimSpace(m.input.Value())
		m.closeGotoInput()

		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > m.pager.NumPages() {
			m.status = "no such page: " + raw
			return m, nil
		}
		m.setPage(n)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BrowseModel) closeGotoInput() {
	m.jumping = false
	m.input.Blur()
}

func (m *BrowseModel) setPage(n int) {
	m.pager.SetCurrentPage(n)
	m.items.SetItems(m.pageItems())
	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).Int("page", n).Msg("page changed")
}

// pageItems returns the 1-based item numbers on the current page, at most
// maxListedItems of them.
func (m *BrowseModel) pageItems() []int {
	first, ok := m.pager.CurrentPageFirstItem()
	if !ok {
		return []int{}
	}
	last, _ := m.pager.CurrentPageLastItem()
	if last-first >= maxListedItems {
		last = first + maxListedItems - 1
	}

	items := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		items = append(items, i)
	}
	return items
}

// UnlistedItems returns how many items on the current page were left out of
// the list by maxListedItems.
func (m *BrowseModel) UnlistedItems() int {
	first, ok := m.pager.CurrentPageFirstItem()
	if !ok {
		return 0
	}
	last, _ := m.pager.CurrentPageLastItem()
	return last - first + 1 - m.items.ItemCount()
}

func (m *BrowseModel) listHeight() int {
	return max(m.height-chromeHeight, 1)
}

// CurrentPage returns the page the model is showing.
func (m *BrowseModel) CurrentPage() int {
	return m.pager.CurrentPage()
}

// Jumping reports whether the go-to-page input is open.
func (m *BrowseModel) Jumping() bool {
	return m.jumping
}

// Status returns the last transient message, such as a rejected page number.
func (m *BrowseModel) Status() string {
	return m.status
}
