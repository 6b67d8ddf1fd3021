package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/logging"
	"github.com/rshade/paginator/internal/tui"
)

// NewBrowseCmd creates the browse command, an interactive page browser.
func NewBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse pages interactively",
		Long: `Opens an interactive browser that moves through the pages of the result set.

Keys: ←/→ previous/next page, home/end first/last page, g then a number and
enter to jump, ↑/↓ to move within the page, ? for help, q to quit.

When stdout or stdin is not a terminal, the page table is printed instead.`,
		Example: `  paginator browse --total 1000 --per-page 25`,
		Args:    noArgs,
	}

	params := newParams(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := buildPaginator(cmd, params)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if tui.DetectOutputMode(false, false, false) != tui.OutputModeInteractive || !isTerminal(os.Stdin) {
			logging.FromContext(ctx).Debug().Ctx(ctx).Msg("not a terminal, printing page table")
			return writePages(cmd.OutOrStdout(), config.FormatTable, p)
		}

		model := tui.NewBrowseModel(ctx, p, config.GetGlobalConfig().Output.Locale)
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err = program.Run(); err != nil {
			return fmt.Errorf("failed to run interactive browser: %w", err)
		}
		return nil
	}

	return cmd
}
