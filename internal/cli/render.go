package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command, which prints the HTML pagination control.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the pagination control as HTML",
		Long: `Renders the pagination control for the given result set as HTML.

The list view produces a <ul class="pagination"> element; the select box view
(--view selectbox, alias mobile) produces a compact <select> for small screens.
Nothing is printed when the result set fits on a single page.`,
		Example: `  # Page 3 of 1,000 items, 10 per page
  paginator render --total 1000 --page 3

  # Pretty URLs and custom labels
  paginator render --total 1000 --page 3 --url-pattern "/category/{page}" --placeholder "{page}" \
    --previous-text "Prev" --next-text "Next"`,
		Args: noArgs,
	}

	params := newParams(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := buildPaginator(cmd, params)
		if err != nil {
			return err
		}

		html := p.Render()
		if html == "" {
			return nil
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}

	return cmd
}
