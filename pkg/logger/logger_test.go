package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("quote for %s", "2026-10-18")
	log.Warn("coupon %s exhausted", "SPRING20")
	log.Error("insert failed: %v", assert.AnError)

	out := buf.String()
	assert.NotContains(t, out, "quote for")
	assert.Contains(t, out, "coupon SPRING20 exhausted")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Info("Partial Payment (%d%%)", 50)
	log.Info("Server stopped gracefully")

	out := buf.String()
	assert.Contains(t, out, "Partial Payment (50%)")
	assert.Contains(t, out, "Server stopped gracefully")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Debug("booking id=%d", 42)
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking id=42")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel(" Warning ").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}
