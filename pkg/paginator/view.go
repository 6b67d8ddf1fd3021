package paginator

import (
	"strings"

	"golang.org/x/text/cases"
)

// View selects how Render lays out the pagination controls.
type View int

const (
	// ViewList renders an unordered list of page links.
	ViewList View = iota
	// ViewSelectBox renders a <select> of pages flanked by previous/next links.
	ViewSelectBox
)

const (
	viewListName      = "list"
	viewSelectBoxName = "selectbox"
)

// ParseView normalizes free-form view names. "mobile", "selectbox" and
// "select" (in any case) map to ViewSelectBox; anything else maps to ViewList.
// A Caser carries state, so a fresh one is built per call.
func ParseView(s string) View {
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "mobile", "selectbox", "select":
		return ViewSelectBox
	default:
		return ViewList
	}
}

// String returns the canonical view name.
func (v View) String() string {
	if v == ViewSelectBox {
		return viewSelectBoxName
	}
	return viewListName
}

// MarshalText implements encoding.TextMarshaler.
func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails: unknown
// names normalize to ViewList, same as ParseView.
func (v *View) UnmarshalText(text []byte) error {
	*v = ParseView(string(text))
	return nil
}
