package paginator

import "fmt"

// Version is the library version.
const Version = "1.0.0"

// Defaults applied by New.
const (
	DefaultMaxPagesToShow = 10
	DefaultPlaceholder    = "(:page)"
	DefaultURLPattern     = "?page=" + DefaultPlaceholder
	DefaultPreviousText   = "« Previous"
	DefaultNextText       = "Next »"
	DefaultEllipsis       = "..."

	// MinPagesToShow is the smallest window that still fits first, current and last.
	MinPagesToShow = 3
)

// Paginator holds pagination state and derives page metadata from it.
// Setters return the receiver so calls can be chained.
type Paginator struct {
	totalItems     int
	itemsPerPage   int
	currentPage    int
	numPages       int
	maxPagesToShow int
	urlPattern     string
	placeholder    string
	previousText   string
	nextText       string
	ellipsis       string
	view           View
	escape         Escaper
}

// New creates a Paginator with default labels, URL pattern and list view.
// currentPage is 1-based and deliberately not validated.
func New(totalItems, itemsPerPage, currentPage int) *Paginator {
	p := &Paginator{
		totalItems:     totalItems,
		itemsPerPage:   itemsPerPage,
		currentPage:    currentPage,
		maxPagesToShow: DefaultMaxPagesToShow,
		urlPattern:     DefaultURLPattern,
		placeholder:    DefaultPlaceholder,
		previousText:   DefaultPreviousText,
		nextText:       DefaultNextText,
		ellipsis:       DefaultEllipsis,
		view:           ViewList,
		escape:         HTMLEscape,
	}
	p.computeNumPages()
	return p
}

func (p *Paginator) computeNumPages() {
	if p.itemsPerPage <= 0 || p.totalItems <= 0 {
		p.numPages = 0
		return
	}
	p.numPages = p.totalItems / p.itemsPerPage
	if p.totalItems%p.itemsPerPage != 0 {
		p.numPages++
	}
}

// NumPages returns the page count derived from TotalItems and ItemsPerPage.
func (p *Paginator) NumPages() int {
	return p.numPages
}

// TotalItems returns the number of items being paginated.
func (p *Paginator) TotalItems() int {
	return p.totalItems
}

// SetTotalItems sets the item count and recomputes the page count.
func (p *Paginator) SetTotalItems(totalItems int) *Paginator {
	p.totalItems = totalItems
	p.computeNumPages()
	return p
}

// ItemsPerPage returns the page size. Zero or less disables pagination.
func (p *Paginator) ItemsPerPage() int {
	return p.itemsPerPage
}

// SetItemsPerPage sets the page size and recomputes the page count.
func (p *Paginator) SetItemsPerPage(itemsPerPage int) *Paginator {
	p.itemsPerPage = itemsPerPage
	p.computeNumPages()
	return p
}

// CurrentPage returns the requested 1-based page.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// SetCurrentPage sets the requested page. Out-of-range values are accepted.
func (p *Paginator) SetCurrentPage(currentPage int) *Paginator {
	p.currentPage = currentPage
	return p
}

// MaxPagesToShow returns the upper bound on page entries before the window slides.
func (p *Paginator) MaxPagesToShow() int {
	return p.maxPagesToShow
}

// SetMaxPagesToShow sets the window size. Values below MinPagesToShow are
// rejected with ErrInvalidArgument and leave the paginator unchanged.
func (p *Paginator) SetMaxPagesToShow(maxPagesToShow int) (*Paginator, error) {
	if maxPagesToShow < MinPagesToShow {
		return p, fmt.Errorf("%w: maxPagesToShow cannot be less than %d, got %d",
			ErrInvalidArgument, MinPagesToShow, maxPagesToShow)
	}
	p.maxPagesToShow = maxPagesToShow
	return p, nil
}

// URLPattern returns the pattern page URLs are built from.
func (p *Paginator) URLPattern() string {
	return p.urlPattern
}

// SetURLPattern sets the URL pattern; the placeholder marks where the page number goes.
func (p *Paginator) SetURLPattern(urlPattern string) *Paginator {
	p.urlPattern = urlPattern
	return p
}

// Placeholder returns the token replaced by the page number in URLPattern.
func (p *Paginator) Placeholder() string {
	return p.placeholder
}

// SetPlaceholder sets the page-number token.
func (p *Paginator) SetPlaceholder(placeholder string) *Paginator {
	p.placeholder = placeholder
	return p
}

// PreviousText returns the label of the previous-page link.
func (p *Paginator) PreviousText() string {
	return p.previousText
}

// SetPreviousText sets the label of the previous-page link.
func (p *Paginator) SetPreviousText(text string) *Paginator {
	p.previousText = text
	return p
}

// NextText returns the label of the next-page link.
func (p *Paginator) NextText() string {
	return p.nextText
}

// SetNextText sets the label of the next-page link.
func (p *Paginator) SetNextText(text string) *Paginator {
	p.nextText = text
	return p
}

// Ellipsis returns the label used for elided page ranges.
func (p *Paginator) Ellipsis() string {
	return p.ellipsis
}

// SetEllipsis sets the label used for elided page ranges.
func (p *Paginator) SetEllipsis(text string) *Paginator {
	p.ellipsis = text
	return p
}

// View returns the rendering mode.
func (p *Paginator) View() View {
	return p.view
}

// SetView sets the rendering mode from a free-form name; see ParseView.
func (p *Paginator) SetView(view string) *Paginator {
	p.view = ParseView(view)
	return p
}

// SetEscaper replaces the escaping function used by the built-in renderers.
// A nil escaper restores HTMLEscape.
func (p *Paginator) SetEscaper(escape Escaper) *Paginator {
	if escape == nil {
		escape = HTMLEscape
	}
	p.escape = escape
	return p
}

// Escape applies the configured Escaper. Custom renderers should use it for
// any text they interpolate.
func (p *Paginator) Escape(s string) string {
	return p.escape(s)
}
