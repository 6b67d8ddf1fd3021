// Package paginator computes pagination metadata and renders it as HTML.
//
// A Paginator holds the total item count, the page size and the requested
// page, and derives from them:
//   - the number of pages
//   - a sliding window of page numbers with ellipsis markers (Pages)
//   - previous/next page numbers and URLs
//   - the first and last item shown on the current page
//
// Render turns that metadata into either a list (<ul>) or a select-box
// (<select>) fragment. All interpolated text passes through an Escaper.
//
// # Basic Usage
//
//	p := paginator.New(1000, 10, 3).
//	    SetPreviousText("Prev").
//	    SetNextText("Next").
//	    SetPlaceholder("{page}").
//	    SetURLPattern("/category/{page}")
//
//	for _, page := range p.Pages() {
//	    fmt.Println(page.Label, page.IsCurrent)
//	}
//
//	html := p.Render()
//
// A Paginator is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access themselves.
package paginator
