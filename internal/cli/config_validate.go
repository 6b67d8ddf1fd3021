package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/tui"
	"github.com/rshade/paginator/pkg/paginator"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax and field types
- paginator.max_pages_to_show of at least 3
- output.default_format of table, json or yaml
- the "requires" version constraint syntax, if present`,
		Example: `  # Validate current configuration
  paginator config validate

  # Validate and show the effective paginator settings
  paginator config validate --verbose`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic. The file
// itself was already loaded and validated by the root command.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := configFilePath(cmd)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if cfg.Requires != "" {
		if _, err = semver.NewConstraint(cfg.Requires); err != nil {
			return fmt.Errorf("configuration validation failed: requires %q: %w", cfg.Requires, err)
		}
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		cmd.Printf("No configuration file at %s, built-in defaults apply\n", path)
	}
	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints the effective settings and a sample page window.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	pc := cfg.Paginator
	cmd.Println()
	cmd.Printf("Items per page:    %d\n", pc.ItemsPerPage)
	cmd.Printf("Max pages to show: %d\n", pc.MaxPagesToShow)
	cmd.Printf("View:              %s\n", pc.View)
	cmd.Printf("URL pattern:       %s (placeholder %s)\n", pc.URLPattern, pc.Placeholder)
	cmd.Printf("Labels:            %q %q %q\n", pc.PreviousText, pc.NextText, pc.Ellipsis)
	cmd.Printf("Output format:     %s (locale %s)\n", cfg.Output.DefaultFormat, cfg.Output.Locale)

	const samplePages = 100
	perPage := max(pc.ItemsPerPage, 1)
	sample := paginator.New(samplePages*perPage, perPage, samplePages/2)
	if err := pc.Apply(sample); err != nil {
		return
	}
	cmd.Printf("Sample window:     %s\n", tui.RenderPageBar(sample.Pages(), 0))
}
