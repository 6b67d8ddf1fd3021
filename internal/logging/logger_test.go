package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: "WARN", want: zerolog.WarnLevel},
		{input: " error ", want: zerolog.ErrorLevel},
		{input: "", want: zerolog.InfoLevel},
		{input: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, Config{Level: "debug", Format: FormatJSON})
	component := ComponentLogger(logger, "cli")
	component.Debug().Int("pages", 12).Msg("window computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "cli", entry["component"])
	assert.Equal(t, "window computed", entry["message"])
	assert.InDelta(t, 12, entry["pages"], 0)
}

func TestNewWithWriter_Caller(t *testing.T) {
	tests := []struct {
		name   string
		caller bool
	}{
		{name: "enabled", caller: true},
		{name: "disabled", caller: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newWithWriter(&buf, Config{Level: "info", Format: FormatJSON, Caller: tt.caller})
			logger.Info().Msg("located")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			caller, ok := entry[zerolog.CallerFieldName]
			assert.Equal(t, tt.caller, ok)
			if tt.caller {
				assert.Contains(t, caller, "logger_test.go")
			}
		})
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, Config{Level: "warn", Format: FormatJSON})
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, Config{Level: "info", Format: FormatConsole})
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestTraceHook(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, Config{Level: "info", Format: FormatJSON})

	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
	logger.Info().Ctx(ctx).Msg("with trace")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "01TESTTRACE", entry["trace_id"])

	buf.Reset()
	logger.Info().Msg("without trace")
	assert.NotContains(t, buf.String(), "trace_id")
}

func TestGetOrGenerateTraceID(t *testing.T) {
	generated := GetOrGenerateTraceID(context.Background())
	assert.Len(t, generated, 26)
	assert.NotEqual(t, generated, GetOrGenerateTraceID(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "existing")
	assert.Equal(t, "existing", GetOrGenerateTraceID(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paginator.log")

	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	assert.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "no file configured", file: ""},
		{name: "unwritable path", file: filepath.Join(t.TempDir(), "missing", "dir", "x.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewLoggerWithPath(Config{Output: OutputFile, File: tt.file})
			assert.False(t, result.UsingFile)
			assert.True(t, result.FallbackUsed)
			assert.NotEmpty(t, result.FallbackReason)
			assert.NoError(t, result.Close())
		})
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, Config{Level: "info", Format: FormatJSON})
	ctx := logger.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	// A bare context yields a disabled logger rather than nil.
	assert.NotNil(t, FromContext(context.Background()))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/p.log")
	PrintFallbackWarning(&buf, "permission denied")
	assert.Contains(t, buf.String(), "/tmp/p.log")
	assert.Contains(t, buf.String(), "permission denied")
}
