package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/paginator/pkg/paginator"
)

// Config is the paginator CLI configuration, stored as YAML.
type Config struct {
	// Requires is an optional semver constraint the binary version must satisfy.
	Requires  string          `yaml:"requires,omitempty"`
	Paginator PaginatorConfig `yaml:"paginator"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PaginatorConfig holds the defaults applied to every paginator the CLI builds.
type PaginatorConfig struct {
	ItemsPerPage   int            `yaml:"items_per_page"`
	MaxPagesToShow int            `yaml:"max_pages_to_show"`
	URLPattern     string         `yaml:"url_pattern"`
	Placeholder    string         `yaml:"placeholder"`
	PreviousText   string         `yaml:"previous_text"`
	NextText       string         `yaml:"next_text"`
	Ellipsis       string         `yaml:"ellipsis"`
	View           paginator.View `yaml:"view"`
}

// OutputConfig controls how the pages command prints results.
type OutputConfig struct {
	// DefaultFormat is one of table, json or yaml.
	DefaultFormat string `yaml:"default_format"`
	// Locale is a BCP 47 tag used to format counts in summaries.
	Locale string `yaml:"locale"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const defaultItemsPerPage = 10

// ErrUnknownFormat is returned for an output format other than table, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// New returns a Config populated with built-in defaults.
func New() *Config {
	return &Config{
		Paginator: PaginatorConfig{
			ItemsPerPage:   defaultItemsPerPage,
			MaxPagesToShow: paginator.DefaultMaxPagesToShow,
			URLPattern:     paginator.DefaultURLPattern,
			Placeholder:    paginator.DefaultPlaceholder,
			PreviousText:   paginator.DefaultPreviousText,
			NextText:       paginator.DefaultNextText,
			Ellipsis:       paginator.DefaultEllipsis,
			View:           paginator.ViewList,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Locale:        "en",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks values that would make paginator construction fail.
func (c *Config) Validate() error {
	if c.Paginator.MaxPagesToShow < paginator.MinPagesToShow {
		return fmt.Errorf("paginator.max_pages_to_show: %w: must be >= %d, got %d",
			paginator.ErrInvalidArgument, paginator.MinPagesToShow, c.Paginator.MaxPagesToShow)
	}
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.default_format: %w: %q", ErrUnknownFormat, c.Output.DefaultFormat)
	}
	return nil
}

// Apply copies the configured labels, URL settings, window size and view onto p.
func (pc PaginatorConfig) Apply(p *paginator.Paginator) error {
	if _, err := p.SetMaxPagesToShow(pc.MaxPagesToShow); err != nil {
		return err
	}
	p.SetURLPattern(pc.URLPattern).
		SetPlaceholder(pc.Placeholder).
		SetPreviousText(pc.PreviousText).
		SetNextText(pc.NextText).
		SetEllipsis(pc.Ellipsis).
		SetView(pc.View.String())
	return nil
}
