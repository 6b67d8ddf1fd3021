package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/pkg/paginator"
)

// Flag names shared by the render, pages and browse commands.
const (
	FlagTotal        = "total"
	FlagPerPage      = "per-page"
	FlagPage         = "page"
	FlagMaxPages     = "max-pages"
	FlagView         = "view"
	FlagURLPattern   = "url-pattern"
	FlagPlaceholder  = "placeholder"
	FlagPreviousText = "previous-text"
	FlagNextText     = "next-text"
	FlagEllipsis     = "ellipsis"

	DefaultPage = 1
)

// Common validation errors.
var (
	ErrInvalidTotal    = errors.New("total cannot be negative")
	ErrInvalidPerPage  = errors.New("per-page cannot be negative")
	ErrInvalidMaxPages = errors.New("max-pages cannot be less than 3")
	ErrTotalRequired   = errors.New("--total is required")
)

// Params holds the pagination flags of a command.
//
// The current page is deliberately not range-checked: a page outside
// [1, pages] yields a window with nothing marked current, same as the library.
type Params struct {
	Total        int
	PerPage      int
	Page         int
	MaxPages     int
	View         string
	URLPattern   string
	Placeholder  string
	PreviousText string
	NextText     string
	Ellipsis     string

	// totalSet records whether --total was given explicitly.
	totalSet bool
}

// NewParams creates Params seeded from the paginator section of the configuration.
func NewParams(pc config.PaginatorConfig) *Params {
	return &Params{
		PerPage:      pc.ItemsPerPage,
		Page:         DefaultPage,
		MaxPages:     pc.MaxPagesToShow,
		View:         pc.View.String(),
		URLPattern:   pc.URLPattern,
		Placeholder:  pc.Placeholder,
		PreviousText: pc.PreviousText,
		NextText:     pc.NextText,
		Ellipsis:     pc.Ellipsis,
	}
}

// BindFlags registers the pagination flags on cmd, using the current values of p as defaults.
func (p *Params) BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&p.Total, FlagTotal, p.Total, "total number of items to paginate (required)")
	flags.IntVar(&p.PerPage, FlagPerPage, p.PerPage, "items per page (0 disables pagination)")
	flags.IntVar(&p.Page, FlagPage, p.Page, "current page, 1-based")
	flags.IntVar(&p.MaxPages, FlagMaxPages, p.MaxPages, "maximum page entries before the window slides (>= 3)")
	flags.StringVar(&p.View, FlagView, p.View, "view mode: list, selectbox (aliases: select, mobile)")
	flags.StringVar(&p.URLPattern, FlagURLPattern, p.URLPattern, "page URL pattern containing the placeholder")
	flags.StringVar(&p.Placeholder, FlagPlaceholder, p.Placeholder, "token replaced by the page number in the URL pattern")
	flags.StringVar(&p.PreviousText, FlagPreviousText, p.PreviousText, "label of the previous-page link")
	flags.StringVar(&p.NextText, FlagNextText, p.NextText, "label of the next-page link")
	flags.StringVar(&p.Ellipsis, FlagEllipsis, p.Ellipsis, "label of elided page ranges")
}

// Resolve records which flags were set on the command line and fills every
// other field from pc, so explicit flags take precedence over configuration.
// Call it from RunE once configuration has been loaded.
func (p *Params) Resolve(cmd *cobra.Command, pc config.PaginatorConfig) {
	flags := cmd.Flags()
	p.totalSet = flags.Changed(FlagTotal)

	if !flags.Changed(FlagPerPage) {
		p.PerPage = pc.ItemsPerPage
	}
	if !flags.Changed(FlagMaxPages) {
		p.MaxPages = pc.MaxPagesToShow
	}
	if !flags.Changed(FlagView) {
		p.View = pc.View.String()
	}
	if !flags.Changed(FlagURLPattern) {
		p.URLPattern = pc.URLPattern
	}
	if !flags.Changed(FlagPlaceholder) {
		p.Placeholder = pc.Placeholder
	}
	if !flags.Changed(FlagPreviousText) {
		p.PreviousText = pc.PreviousText
	}
	if !flags.Changed(FlagNextText) {
		p.NextText = pc.NextText
	}
	if !flags.Changed(FlagEllipsis) {
		p.Ellipsis = pc.Ellipsis
	}
}

// Validate checks the parameters (value receiver).
func (p Params) Validate() error {
	if !p.totalSet {
		return ErrTotalRequired
	}
	if p.Total < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidTotal, p.Total)
	}
	if p.PerPage < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidPerPage, p.PerPage)
	}
	if p.MaxPages < paginator.MinPagesToShow {
		return fmt.Errorf("%w, got %d", ErrInvalidMaxPages, p.MaxPages)
	}
	return nil
}

// Build validates p and returns the configured paginator.
func (p Params) Build() (*paginator.Paginator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pg := paginator.New(p.Total, p.PerPage, p.Page).
		SetURLPattern(p.URLPattern).
		SetPlaceholder(p.Placeholder).
		SetPreviousText(p.PreviousText).
		SetNextText(p.NextText).
		SetEllipsis(p.Ellipsis).
		SetView(p.View)

	if _, err := pg.SetMaxPagesToShow(p.MaxPages); err != nil {
		return nil, err
	}
	return pg, nil
}

// WithTotal marks the total as explicitly provided. It is intended for
// callers that construct Params without parsing flags.
func (p Params) WithTotal(total int) Params {
	p.Total = total
	p.totalSet = true
	return p
}
