// Command paginator computes page windows and renders pagination controls.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/paginator/internal/cli"
	"github.com/rshade/paginator/pkg/version"
)

const (
	exitError = 1
	exitUsage = 2
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(context.Background())
}

// exitCode maps an error returned by run to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		return exitUsage
	}
	return exitError
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
