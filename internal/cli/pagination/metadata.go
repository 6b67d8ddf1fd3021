package pagination

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/paginator/pkg/paginator"
)

// Meta is a serializable snapshot of a paginator's state.
//
// Optional values are pointers so that absent values encode as null
// rather than a misleading zero.
type Meta struct {
	CurrentPage int              `json:"current_page"  yaml:"current_page"`
	PageSize    int              `json:"page_size"     yaml:"page_size"`
	TotalPages  int              `json:"total_pages"   yaml:"total_pages"`
	TotalItems  int              `json:"total_items"   yaml:"total_items"`
	HasPrevious bool             `json:"has_previous"  yaml:"has_previous"`
	HasNext     bool             `json:"has_next"      yaml:"has_next"`
	FirstItem   *int             `json:"first_item"    yaml:"first_item"`
	LastItem    *int             `json:"last_item"     yaml:"last_item"`
	PreviousURL *string          `json:"previous_url"  yaml:"previous_url"`
	NextURL     *string          `json:"next_url"      yaml:"next_url"`
	Pages       []paginator.Page `json:"pages"         yaml:"pages"`
}

// NewMeta captures the current state of p.
func NewMeta(p *paginator.Paginator) Meta {
	meta := Meta{
		CurrentPage: p.CurrentPage(),
		PageSize:    p.ItemsPerPage(),
		TotalPages:  p.NumPages(),
		TotalItems:  p.TotalItems(),
		Pages:       p.Pages(),
	}

	if url, ok := p.PrevURL(); ok {
		meta.HasPrevious = true
		meta.PreviousURL = &url
	}
	if url, ok := p.NextURL(); ok {
		meta.HasNext = true
		meta.NextURL = &url
	}
	if first, ok := p.CurrentPageFirstItem(); ok {
		meta.FirstItem = &first
	}
	if last, ok := p.CurrentPageLastItem(); ok {
		meta.LastItem = &last
	}

	return meta
}

// Summary formats a one-line description of m with numbers grouped for
// locale, e.g. "Page 3 of 100 · items 21–30 of 1,000". An unparsable
// locale falls back to English.
func (m Meta) Summary(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	printer := message.NewPrinter(tag)

	if m.TotalPages == 0 {
		return printer.Sprintf("No pages · %d items", m.TotalItems)
	}
	if m.FirstItem == nil || m.LastItem == nil {
		return printer.Sprintf("Page %d of %d · %d items", m.CurrentPage, m.TotalPages, m.TotalItems)
	}
	return printer.Sprintf("Page %d of %d · items %d–%d of %d",
		m.CurrentPage, m.TotalPages, *m.FirstItem, *m.LastItem, m.TotalItems)
}
