package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFileLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	log, err := New("warn", "error", path)
	require.NoError(t, err)
	defer log.Close()

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	content := readLog(t, path)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, " - WARNING - warn message")
	assert.Contains(t, content, " - ERROR - error message")
}

func TestFileAppendAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	first, err := New("info", "error", path)
	require.NoError(t, err)
	first.Info("first run")
	require.NoError(t, first.Close())

	second, err := New("info", "error", path)
	require.NoError(t, err)
	second.Info("second run")
	require.NoError(t, second.Close())

	content := readLog(t, path)
	assert.Contains(t, content, "first run")
	assert.Contains(t, content, "second run")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	log, err := New("nonsense", "error", path)
	require.NoError(t, err)
	defer log.Close()

	log.Debug("hidden")
	log.Info("shown")

	content := readLog(t, path)
	assert.NotContains(t, content, "hidden")
	assert.Contains(t, content, "shown")
}

func TestOpenFailure(t *testing.T) {
	_, err := New("info", "info", filepath.Join(t.TempDir(), "missing", "test.log"))
	assert.Error(t, err)
}
