package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError reports invalid command-line input. The binary exits with
// status 2 for it, and 1 for every other error.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether err wraps a *UsageError.
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// flagError turns cobra flag parsing failures into usage errors.
func flagError(_ *cobra.Command, err error) error {
	return &UsageError{Err: fmt.Errorf("invalid flags: %w", err)}
}

// noArgs rejects positional arguments with a *UsageError.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
