package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePathForDB(t *testing.T) {
	assert.Equal(t, DefaultLogFileName, FilePathForDB(""))
	assert.Equal(t, filepath.Join("/data", DefaultLogFileName), FilePathForDB("/data/worker.db"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, DefaultLogFileName), FilePathForDB("worker.db"))
}

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, "warn", LevelForVerbosity(0, "warn"))
	assert.Equal(t, "debug", LevelForVerbosity(1, "warn"))
	assert.Equal(t, "trace", LevelForVerbosity(2, "warn"))
	assert.Equal(t, "trace", LevelForVerbosity(5, "info"))
}

func TestApply_WritesConsoleAndFile(t *testing.T) {
	prevConsole, prevLogger, prevLevel := Console, log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		Console, log.Logger = prevConsole, prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var console bytes.Buffer
	Console = &console
	logFile := filepath.Join(t.TempDir(), "logs", "roster.log")

	Apply("debug", nil, logFile)
	log.Debug().Int64("worker_id", 7).Msg("Worker saved")
	log.Trace().Msg("hidden")

	assert.Contains(t, console.String(), "Worker saved")
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "worker_id=7"), "file log: %s", data)
}
