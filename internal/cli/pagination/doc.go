// Package pagination turns CLI flags into a configured paginator and
// summarizes its state for structured output.
//
// This package contains:
//   - Params: flag binding, defaults from configuration, and validation
//   - Meta: a JSON/YAML snapshot of a paginator's page window and navigation
//   - Summary: a one-line, locale-formatted description of the current page
package pagination
