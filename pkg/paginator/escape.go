package paginator

import "strings"

// Escaper escapes text before it is interpolated into markup.
type Escaper func(string) string

//nolint:gochecknoglobals // Replacer is immutable and safe for concurrent use.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// HTMLEscape escapes & < > ' and " to their HTML entities.
func HTMLEscape(s string) string {
	return htmlReplacer.Replace(s)
}
