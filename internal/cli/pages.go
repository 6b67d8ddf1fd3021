package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/paginator/internal/cli/pagination"
	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/tui"
	"github.com/rshade/paginator/pkg/paginator"
)

const (
	tabPadding    = 2
	currentMarker = "*"
	noURL         = "-"
)

// NewPagesCmd creates the pages command, which prints the page window as a table, JSON or YAML.
func NewPagesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print the page window and navigation metadata",
		Long: `Prints the page window for the given result set.

The table format lists one row per page entry followed by a summary line.
The json and yaml formats print the full navigation metadata, including
previous/next URLs and the item range of the current page.`,
		Example: `  # Table of the page window
  paginator pages --total 1000 --page 50

  # Metadata as JSON
  paginator pages --total 1000 --page 50 --output json`,
		Args: noArgs,
	}

	params := newParams(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"output format: table, json, yaml (default from config output.default_format)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := buildPaginator(cmd, params)
		if err != nil {
			return err
		}

		format, err := resolveOutputFormat(output)
		if err != nil {
			return err
		}
		return writePages(cmd.OutOrStdout(), format, p)
	}

	return cmd
}

// resolveOutputFormat returns the --output value, or the configured default when it is empty.
func resolveOutputFormat(flagValue string) (string, error) {
	cfg := config.GetGlobalConfig()
	format := flagValue
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
		return format, nil
	default:
		return "", &UsageError{Err: fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)}
	}
}

// writePages prints the page window of p in format.
func writePages(w io.Writer, format string, p *paginator.Paginator) error {
	meta := pagination.NewMeta(p)

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return writePagesTable(w, meta)
	}
}

func writePagesTable(w io.Writer, meta pagination.Meta) error {
	locale := config.GetGlobalConfig().Output.Locale
	styled := tui.DetectOutputMode(false, false, false) != tui.OutputModePlain

	if styled && len(meta.Pages) > 0 {
		fmt.Fprintln(w, tui.RenderPageBar(meta.Pages, tui.TerminalWidth()))
		fmt.Fprintln(w)
	}

	if len(meta.Pages) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		fmt.Fprintln(tw, "PAGE\tURL\tCURRENT")
		for _, pg := range meta.Pages {
			url := noURL
			if pg.URL != nil {
				url = *pg.URL
			}
			current := ""
			if pg.IsCurrent {
				current = currentMarker
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", pg.Label, url, current)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
		fmt.Fprintln(w)
	}

	summary := meta.Summary(locale)
	if styled {
		summary = tui.LabelStyle.Render(summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
