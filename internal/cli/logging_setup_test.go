package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginator/internal/config"
	"github.com/rshade/paginator/internal/logging"
)

func TestResolveLoggingConfig(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantLevel  string
		wantFormat string
		wantCaller bool
	}{
		{name: "defaults", args: nil, wantLevel: "warn", wantFormat: logging.FormatJSON},
		{name: "debug flag", args: []string{"--debug"}, wantLevel: "debug", wantFormat: "console", wantCaller: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvHome, t.TempDir())
			t.Setenv(config.EnvLogLevel, "warn")
			t.Setenv(config.EnvLogFormat, logging.FormatJSON)
			config.ResetGlobalConfigForTest()
			t.Cleanup(config.ResetGlobalConfigForTest)

			cmd := &cobra.Command{Use: "test"}
			cmd.Flags().Bool("debug", false, "")
			require.NoError(t, cmd.Flags().Parse(tt.args))

			got := resolveLoggingConfig(cmd)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantFormat, got.Format)
			assert.Equal(t, tt.wantCaller, got.Caller)
			if tt.wantCaller {
				assert.Empty(t, got.File)
				assert.Equal(t, logging.OutputStderr, got.Output)
			}
		})
	}
}
