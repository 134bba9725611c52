package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("session loaded", "date", "Mon Oct 19 2026")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "session loaded", line["msg"])
	assert.Equal(t, "Mon Oct 19 2026", line["date"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "warn", "text").Warn("failed to persist tasks")
	assert.Contains(t, buf.String(), `msg="failed to persist tasks"`)
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := OpenLogger("", nil, "debug", "text")
	require.NoError(t, err)
	logger.Error("discarded")
	assert.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "logs", "studytracker.log")
	logger, closeLog, err = OpenLogger(path, nil, "info", "text")
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
