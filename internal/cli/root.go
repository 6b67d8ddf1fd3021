package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/logging"
	"github.com/rshade/paginator/pkg/version"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the paginator CLI.
// It loads configuration, wires up logging and tracing, and registers the
// render, pages, browse and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "paginator",
		Short:         "Compute page windows and render pagination controls",
		Long:          "paginator: compute the page window for a result set and render it as HTML, a table, or an interactive browser",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, optional := cmd.Annotations[annotationConfigOptional]
			cfg, err := loadConfig(configPath, optional)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result

			checkRequiredVersion(cmd, cfg.Requires)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.SetFlagErrorFunc(flagError)
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $PAGINATOR_HOME/config.yaml or ~/.paginator/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewRenderCmd(), NewPagesCmd(), NewBrowseCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Render list markup for page 3 of 1,000 items
  paginator render --total 1000 --per-page 10 --page 3

  # Render the compact select box with a custom URL pattern
  paginator render --total 1000 --page 50 --view mobile --url-pattern "/category/{page}" --placeholder "{page}"

  # Print the page window as JSON
  paginator pages --total 1000 --page 50 --output json

  # Browse pages interactively
  paginator browse --total 1000 --per-page 25

  # Initialize configuration
  paginator config init`

// annotationConfigOptional marks commands that may run before the file named
// by --config exists.
const annotationConfigOptional = "paginator/config-optional"

// loadConfig reads the config file named by --config, or the default config
// file when the flag is empty. An explicitly named file must exist unless
// optional is set.
func loadConfig(path string, optional bool) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil && !optional {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return config.Load(path)
	}

	defaultPath, err := config.DefaultConfigPath()
	if err != nil {
		return config.New(), nil //nolint:nilerr // No home directory means no default config file.
	}
	return config.Load(defaultPath)
}

// checkRequiredVersion warns when the binary does not satisfy the config's
// "requires" constraint. Development builds are not checked.
func checkRequiredVersion(cmd *cobra.Command, constraint string) {
	if constraint == "" || !version.IsRelease() {
		return
	}

	ok, err := version.Satisfies(constraint)
	switch {
	case err != nil:
		logger.Warn().Ctx(cmd.Context()).Err(err).Str("requires", constraint).Msg("ignoring invalid version constraint")
	case !ok:
		cmd.PrintErrf("Warning: paginator %s does not satisfy the configured requirement %q\n",
			version.GetVersion(), constraint)
	}
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
