package paginator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/paginator/pkg/paginator"
)

func TestRender_List(t *testing.T) {
	p := paginator.New(30, 10, 2)

	want := `<ul class="pagination">` +
		`<li class="page-previous"><a href="?page=1">« Previous</a></li>` +
		`<li class="page-item first"><a href="?page=1">1</a></li>` +
		`<li class="page-item active"><a href="?page=2">2</a></li>` +
		`<li class="page-item last"><a href="?page=3">3</a></li>` +
		`<li class="page-next"><a href="?page=3">Next »</a></li>` +
		`</ul>`

	assert.Equal(t, want, p.Render())
}

func TestRender_ListWithEllipsis(t *testing.T) {
	p := paginator.New(1000, 10, 1).
		SetPlaceholder("{page}").
		SetURLPattern("/category/{page}").
		SetPreviousText("Prev").
		SetNextText("Next")
	_, err := p.SetMaxPagesToShow(5)
	assert.NoError(t, err)

	want := `<ul class="pagination">` +
		`<li class="page-item first active"><a href="/category/1">1</a></li>` +
		`<li class="page-item"><a href="/category/2">2</a></li>` +
		`<li class="page-item"><a href="/category/3">3</a></li>` +
		`<li class="page-item"><a href="/category/4">4</a></li>` +
		`<li class="page-item disabled"><span>...</span></li>` +
		`<li class="page-item last"><a href="/category/100">100</a></li>` +
		`<li class="page-next"><a href="/category/2">Next</a></li>` +
		`</ul>`

	assert.Equal(t, want, p.Render())
}

func TestRender_SelectBox(t *testing.T) {
	p := paginator.New(1000, 10, 100).SetView("Mobile")
	_, err := p.SetMaxPagesToShow(5)
	assert.NoError(t, err)

	want := `<div class="pagination">` +
		`<span class="page-previous"><a href="?page=99">« Previous</a></span>` +
		`<select class="page-select">` +
		`<option value="?page=1">1</option>` +
		`<option disabled>...</option>` +
		`<option value="?page=97">97</option>` +
		`<option value="?page=98">98</option>` +
		`<option value="?page=99">99</option>` +
		`<option value="?page=100" selected>100</option>` +
		`</select>` +
		`</div>`

	assert.Equal(t, want, p.Render())
}

func TestRender_MobileScenario(t *testing.T) {
	p := paginator.New(100, 10, 2).SetView("mobile")

	assert.Equal(t, paginator.ViewSelectBox, p.View())
	assert.Equal(t, "selectbox", p.View().String())

	html := p.Render()
	assert.True(t, strings.HasPrefix(html, `<div class="pagination">`))
	assert.Contains(t, html, `<select class="page-select">`)
	assert.Contains(t, html, `<option value="?page=2" selected>2</option>`)
	assert.Contains(t, html, `<span class="page-next"><a href="?page=3">Next »</a></span>`)
	assert.NotContains(t, html, "<ul")
}

func TestRender_Empty(t *testing.T) {
	tests := []struct {
		name string
		p    *paginator.Paginator
	}{
		{name: "no items", p: paginator.New(0, 10, 1)},
		{name: "pagination disabled", p: paginator.New(100, 0, 1)},
		{name: "single page", p: paginator.New(7, 10, 1)},
		{name: "single page select box", p: paginator.New(7, 10, 1).SetView("select")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, tt.p.Render())
			assert.Empty(t, tt.p.String())
		})
	}
}

func TestRender_Escaping(t *testing.T) {
	p := paginator.New(20, 10, 1).
		SetURLPattern(`/search?q="<b>"&page=(:page)`).
		SetNextText(`<script>alert('x')</script>`)

	html := p.Render()

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, `href="/search?q=&quot;&lt;b&gt;&quot;&amp;page=2"`)
	assert.Contains(t, html, `&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;`)
}

func TestRender_EscapesEllipsis(t *testing.T) {
	p := paginator.New(1000, 10, 50).SetEllipsis("<gap>")

	html := p.Render()
	assert.Contains(t, html, `<li class="page-item disabled"><span>&lt;gap&gt;</span></li>`)
	assert.NotContains(t, html, "<gap>")
}

func TestRender_CustomEscaper(t *testing.T) {
	p := paginator.New(20, 10, 1).SetEscaper(strings.ToUpper).SetURLPattern("/x/(:page)")
	assert.Contains(t, p.Render(), `href="/X/2"`)
}

func TestRender_Idempotent(t *testing.T) {
	p := paginator.New(1000, 10, 42)
	assert.Equal(t, p.Render(), p.Render())
	assert.Equal(t, p.NumPages(), p.NumPages())
}

func TestRenderWith(t *testing.T) {
	p := paginator.New(50, 10, 3)

	summary := paginator.RendererFunc(func(p *paginator.Paginator) string {
		return fmt.Sprintf("page %d of %d", p.CurrentPage(), p.NumPages())
	})

	assert.Equal(t, "page 3 of 5", p.RenderWith(summary))
	assert.Equal(t, p.Render(), p.RenderWith(nil))
	assert.Equal(t, p.Render(), p.String())
	assert.Equal(t, p.Render(), fmt.Sprint(p))
	assert.Equal(t, paginator.SelectBoxRenderer.Render(p), p.RenderWith(paginator.SelectBoxRenderer))
	assert.Equal(t, paginator.ListRenderer.Render(p), p.Render())
}

func TestRender_IgnoresReassignedRenderers(t *testing.T) {
	p := paginator.New(30, 10, 2)
	wantList := p.Render()
	p.SetView("selectbox")
	wantSelect := p.Render()

	origList, origSelect := paginator.ListRenderer, paginator.SelectBoxRenderer
	t.Cleanup(func() {
		paginator.ListRenderer, paginator.SelectBoxRenderer = origList, origSelect
	})
	stub := paginator.RendererFunc(func(*paginator.Paginator) string { return "replaced" })
	paginator.ListRenderer, paginator.SelectBoxRenderer = stub, stub

	assert.Equal(t, wantSelect, p.Render())
	p.SetView("list")
	assert.Equal(t, wantList, p.Render())
	assert.Equal(t, "replaced", p.RenderWith(paginator.ListRenderer))
}
