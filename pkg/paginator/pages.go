package paginator

import "strconv"

// Page describes one entry of the page window: either a numbered page or an
// ellipsis marking an elided range.
type Page struct {
	// Num is the page number; zero for an ellipsis.
	Num int `json:"num,omitempty" yaml:"num,omitempty"`

	// Label is the text shown for the entry: the page number, or the
	// configured ellipsis.
	Label string `json:"label" yaml:"label"`

	// URL is the page link; nil for an ellipsis.
	URL *string `json:"url" yaml:"url"`

	// IsCurrent marks the entry for the current page.
	IsCurrent bool `json:"is_current" yaml:"is_current"`
}

// IsEllipsis reports whether the entry stands for an elided range.
func (pg Page) IsEllipsis() bool {
	return pg.URL == nil
}

// Pages returns the page window for the current state.
//
// With one page or fewer the window is empty. When every page fits within
// MaxPagesToShow all pages are listed. Otherwise the first and last pages are
// always shown, a run of pages slides around the current page, and an
// ellipsis fills each gap between them:
//
//	1 ... 4 5 [6] 7 8 ... 100
//
// The current page is not validated; if it lies outside [1, NumPages] no
// entry is marked current.
func (p *Paginator) Pages() []Page {
	pages := []Page{}

	if p.numPages <= 1 {
		return pages
	}

	if p.numPages <= p.maxPagesToShow {
		for i := range p.numPages {
			pages = append(pages, p.numberedPage(i+1))
		}
		return pages
	}

	slidingStart, slidingEnd := p.slidingWindow()

	pages = append(pages, p.numberedPage(1))
	if slidingStart > 2 {
		pages = append(pages, p.ellipsisPage())
	}
	for i := slidingStart; i <= slidingEnd; i++ {
		pages = append(pages, p.numberedPage(i))
	}
	if slidingEnd < p.numPages-1 {
		pages = append(pages, p.ellipsisPage())
	}
	pages = append(pages, p.numberedPage(p.numPages))

	return pages
}

// slidingWindow returns the inclusive range of pages shown between the first
// and last page. It requires NumPages > MaxPagesToShow. No intermediate value
// leaves [1, NumPages], whatever the current page.
func (p *Paginator) slidingWindow() (start, end int) {
	// Three slots are reserved for the first page, the last page and an ellipsis.
	width := p.maxPagesToShow - 3
	numAdjacents := width / 2

	switch {
	case p.currentPage > p.numPages-numAdjacents:
		start = p.numPages - p.maxPagesToShow + 2
	case p.currentPage < 2+numAdjacents:
		start = 2
	default:
		start = p.currentPage - numAdjacents
	}

	if start > p.numPages-1-width {
		return start, p.numPages - 1
	}
	return start, start + width
}

func (p *Paginator) numberedPage(n int) Page {
	url := p.PageURL(n)
	return Page{
		Num:       n,
		Label:     strconv.Itoa(n),
		URL:       &url,
		IsCurrent: n == p.currentPage,
	}
}

func (p *Paginator) ellipsisPage() Page {
	return Page{Label: p.ellipsis}
}
