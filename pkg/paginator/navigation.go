package paginator

import (
	"strconv"
	"strings"
)

// PageURL substitutes n for every occurrence of the placeholder in the URL
// pattern. The result is not escaped.
func (p *Paginator) PageURL(n int) string {
	if p.placeholder == "" {
		return p.urlPattern
	}
	return strings.ReplaceAll(p.urlPattern, p.placeholder, strconv.Itoa(n))
}

// PrevPage returns the page before the current one, if there is one.
func (p *Paginator) PrevPage() (int, bool) {
	if p.currentPage > 1 {
		return p.currentPage - 1, true
	}
	return 0, false
}

// NextPage returns the page after the current one, if there is one.
func (p *Paginator) NextPage() (int, bool) {
	if p.currentPage < p.numPages {
		return p.currentPage + 1, true
	}
	return 0, false
}

// PrevURL returns the URL of the previous page, if there is one.
func (p *Paginator) PrevURL() (string, bool) {
	prev, ok := p.PrevPage()
	if !ok {
		return "", false
	}
	return p.PageURL(prev), true
}

// NextURL returns the URL of the next page, if there is one.
func (p *Paginator) NextURL() (string, bool) {
	next, ok := p.NextPage()
	if !ok {
		return "", false
	}
	return p.PageURL(next), true
}

// CurrentPageFirstItem returns the 1-based index of the first item on the
// current page. It is absent when the page starts past TotalItems, and when
// pagination is disabled or the current page is below 1, since no item range
// exists then.
func (p *Paginator) CurrentPageFirstItem() (int, bool) {
	if p.itemsPerPage <= 0 || p.currentPage < 1 || p.totalItems <= 0 {
		return 0, false
	}
	// Checked before multiplying so a large current page cannot wrap.
	if p.currentPage-1 > (p.totalItems-1)/p.itemsPerPage {
		return 0, false
	}
	return (p.currentPage-1)*p.itemsPerPage + 1, true
}

// CurrentPageLastItem returns the 1-based index of the last item on the
// current page, clamped to TotalItems.
func (p *Paginator) CurrentPageLastItem() (int, bool) {
	first, ok := p.CurrentPageFirstItem()
	if !ok {
		return 0, false
	}
	if p.itemsPerPage-1 >= p.totalItems-first {
		return p.totalItems, true
	}
	return first + p.itemsPerPage - 1, true
}
