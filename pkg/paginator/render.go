package paginator

import "strings"

// Renderer produces markup for a Paginator.
type Renderer interface {
	Render(p *Paginator) string
}

// RendererFunc adapts an ordinary function to a Renderer.
type RendererFunc func(p *Paginator) string

// Render calls f(p).
func (f RendererFunc) Render(p *Paginator) string {
	return f(p)
}

// Built-in renderers. Render does not consult these variables, so replacing
// them only affects callers that pass them to RenderWith.
//
//nolint:gochecknoglobals // Stateless renderer values.
var (
	ListRenderer      Renderer = RendererFunc(renderList)
	SelectBoxRenderer Renderer = RendererFunc(renderSelectBox)
)

// Render returns the HTML fragment for the configured view, or "" when there
// is at most one page.
func (p *Paginator) Render() string {
	if p.view == ViewSelectBox {
		return renderSelectBox(p)
	}
	return renderList(p)
}

// RenderWith renders using r. A nil renderer falls back to Render.
func (p *Paginator) RenderWith(r Renderer) string {
	if r == nil {
		return p.Render()
	}
	return r.Render(p)
}

// String implements fmt.Stringer and returns Render().
func (p *Paginator) String() string {
	return p.Render()
}

func renderList(p *Paginator) string {
	if p.numPages <= 1 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<ul class="pagination">`)

	if prevURL, ok := p.PrevURL(); ok {
		b.WriteString(`<li class="page-previous"><a href="`)
		b.WriteString(p.escape(prevURL))
		b.WriteString(`">`)
		b.WriteString(p.escape(p.previousText))
		b.WriteString(`</a></li>`)
	}

	for _, page := range p.Pages() {
		if page.IsEllipsis() {
			b.WriteString(`<li class="page-item disabled"><span>`)
			b.WriteString(p.escape(page.Label))
			b.WriteString(`</span></li>`)
			continue
		}

		b.WriteString(`<li class="page-item`)
		if page.Num == 1 {
			b.WriteString(` first`)
		}
		if page.Num == p.numPages {
			b.WriteString(` last`)
		}
		if page.IsCurrent {
			b.WriteString(` active`)
		}
		b.WriteString(`"><a href="`)
		b.WriteString(p.escape(*page.URL))
		b.WriteString(`">`)
		b.WriteString(p.escape(page.Label))
		b.WriteString(`</a></li>`)
	}

	if nextURL, ok := p.NextURL(); ok {
		b.WriteString(`<li class="page-next"><a href="`)
		b.WriteString(p.escape(nextURL))
		b.WriteString(`">`)
		b.WriteString(p.escape(p.nextText))
		b.WriteString(`</a></li>`)
	}

	b.WriteString(`</ul>`)
	return b.String()
}

func renderSelectBox(p *Paginator) string {
	if p.numPages <= 1 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="pagination">`)

	if prevURL, ok := p.PrevURL(); ok {
		b.WriteString(`<span class="page-previous"><a href="`)
		b.WriteString(p.escape(prevURL))
		b.WriteString(`">`)
		b.WriteString(p.escape(p.previousText))
		b.WriteString(`</a></span>`)
	}

	b.WriteString(`<select class="page-select">`)
	for _, page := range p.Pages() {
		if page.IsEllipsis() {
			b.WriteString(`<option disabled>`)
			b.WriteString(p.escape(page.Label))
			b.WriteString(`</option>`)
			continue
		}

		b.WriteString(`<option value="`)
		b.WriteString(p.escape(*page.URL))
		b.WriteString(`"`)
		if page.IsCurrent {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(p.escape(page.Label))
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select>`)

	if nextURL, ok := p.NextURL(); ok {
		b.WriteString(`<span class="page-next"><a href="`)
		b.WriteString(p.escape(nextURL))
		b.WriteString(`">`)
		b.WriteString(p.escape(p.nextText))
		b.WriteString(`</a></span>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}
