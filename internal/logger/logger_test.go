package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DeafMist/sentiment-ingest/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestNewTextFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	log := logger.New("ingest", &buf)
	log.Debug("hidden")
	log.Info("dataset loaded", "rows", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, `msg="dataset loaded"`)
	require.Contains(t, out, "service=ingest")
	require.Contains(t, out, "rows=3")
	require.Contains(t, out, "time=")
}

func TestNewLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	log := logger.New("ingest", &buf)
	log.Warn("skipped")
	log.Error("failed to load dataset")

	require.NotContains(t, buf.String(), "skipped")
	require.Contains(t, buf.String(), "level=ERROR")
}

func TestNewPrettyFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "pretty")

	var buf bytes.Buffer
	log := logger.New("ingest", &buf)
	log.Debug("preprocessing completed")

	require.Contains(t, buf.String(), "DBG")
	require.Contains(t, buf.String(), "preprocessing completed")
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestOpenFileAppends(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), "ingestion.log")

	for _, msg := range []string{"first", "second"} {
		f, err := logger.OpenFile(path)
		require.NoError(t, err)
		logger.New("ingest", f).Info(msg)
		require.NoError(t, f.Close())
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "msg=first")
	require.Contains(t, string(raw), "msg=second")
}
