package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/projup/projup/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetup_ConsoleAndFile(t *testing.T) {
	restoreGlobals(t)
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "state", "projup.log")

	require.NoError(t, logging.Setup(logging.Options{Verbosity: 1, Console: &console, LogFile: file}))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := logging.GetLogger("test")
	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")

	assert.Contains(t, console.String(), "hello")
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestSetup_UnwritableLogFile(t *testing.T) {
	restoreGlobals(t)
	var console bytes.Buffer
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := logging.Setup(logging.Options{Console: &console, LogFile: filepath.Join(blocker, "projup.log")})
	assert.Error(t, err)
	assert.Contains(t, console.String(), "logging to console only")

	logger := logging.GetLogger("test")
	logger.Warn().Msg("still here")
	assert.Contains(t, console.String(), "still here")
}

func TestSetupLogger(t *testing.T) {
	restoreGlobals(t)
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	logging.SetupLogger(2)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.FileExists(t, filepath.Join(state, "projup", "projup.log"))
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, "/custom/state/projup/projup.log", logging.DefaultLogFile())

	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/ada")
	assert.Equal(t, "/home/ada/.local/state/projup/projup.log", logging.DefaultLogFile())
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	logging.LogCommand(logger, "/code/app", "git", []string{"init", "--bare"})

	assert.Contains(t, buf.String(), `"dir":"/code/app"`)
	assert.Contains(t, buf.String(), `"args":["init","--bare"]`)
	assert.Contains(t, buf.String(), "running command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := logging.LogOperationStart(logger, "apply template")
	assert.Contains(t, buf.String(), "operation started")

	done()
	assert.Contains(t, buf.String(), "operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}
