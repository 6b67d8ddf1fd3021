package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginator/pkg/paginator"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, 10, cfg.Paginator.ItemsPerPage)
	assert.Equal(t, paginator.DefaultMaxPagesToShow, cfg.Paginator.MaxPagesToShow)
	assert.Equal(t, paginator.DefaultURLPattern, cfg.Paginator.URLPattern)
	assert.Equal(t, paginator.ViewList, cfg.Paginator.View)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
requires: ">= 1.0.0"
paginator:
  url_pattern: /category/{page}
  placeholder: "{page}"
  view: Mobile
output:
  default_format: json
unknown_section:
  ignored: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ">= 1.0.0", cfg.Requires)
	assert.Equal(t, "/category/{page}", cfg.Paginator.URLPattern)
	assert.Equal(t, "{page}", cfg.Paginator.Placeholder)
	assert.Equal(t, paginator.ViewSelectBox, cfg.Paginator.View)
	// Omitted fields keep their defaults.
	assert.Equal(t, paginator.DefaultMaxPagesToShow, cfg.Paginator.MaxPagesToShow)
	assert.Equal(t, paginator.DefaultNextText, cfg.Paginator.NextText)
	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, "en", cfg.Output.Locale)
	// Sections absent from the file are untouched.
	assert.Equal(t, New().Logging, cfg.Logging)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		errMsg  string
	}{
		{
			name:    "window too small",
			content: "paginator:\n  max_pages_to_show: 2\n",
			target:  paginator.ErrInvalidArgument,
			errMsg:  "max_pages_to_show",
		},
		{
			name:    "unknown format",
			content: "output:\n  default_format: xml\n",
			target:  ErrUnknownFormat,
			errMsg:  "default_format",
		},
		{
			name:    "malformed yaml",
			content: "paginator: [unclosed\n",
			errMsg:  "parsing overlay YAML",
		},
		{
			name:    "wrong type",
			content: "paginator:\n  max_pages_to_show: lots\n",
			errMsg:  `applying overlay section "paginator"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.Paginator.View = paginator.ViewSelectBox
	cfg.Paginator.Ellipsis = "…"
	cfg.Output.DefaultFormat = FormatYAML
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "view: selectbox")
}

func TestPaginatorConfig_Apply(t *testing.T) {
	pc := New().Paginator
	pc.MaxPagesToShow = 5
	pc.URLPattern = "/p/{n}"
	pc.Placeholder = "{n}"
	pc.PreviousText = "Prev"
	pc.NextText = "Next"
	pc.Ellipsis = "~"
	pc.View = paginator.ViewSelectBox

	p := paginator.New(100, 10, 1)
	require.NoError(t, pc.Apply(p))

	assert.Equal(t, 5, p.MaxPagesToShow())
	assert.Equal(t, "/p/3", p.PageURL(3))
	assert.Equal(t, "Prev", p.PreviousText())
	assert.Equal(t, "Next", p.NextText())
	assert.Equal(t, "~", p.Ellipsis())
	assert.Equal(t, paginator.ViewSelectBox, p.View())

	pc.MaxPagesToShow = 1
	err := pc.Apply(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, paginator.ErrInvalidArgument))
}
