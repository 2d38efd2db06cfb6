package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capsule.log")
	flagLogFile = path
	defer func() { flagLogFile = "" }()

	var fallback bytes.Buffer
	logger, closeLog, err := newLogger(&fallback)
	require.NoError(t, err)
	logger.Info("level started", "level", 3)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level started")
	assert.Contains(t, string(data), "level=3")
	assert.Zero(t, fallback.Len())
}

func TestNewLoggerVerbose(t *testing.T) {
	flagVerbose = true
	defer func() { flagVerbose = false }()

	var out bytes.Buffer
	logger, closeLog, err := newLogger(&out)
	require.NoError(t, err)
	defer closeLog()

	logger.Debug("details")
	assert.Contains(t, out.String(), "details")
}

func TestNewLoggerBadPath(t *testing.T) {
	flagLogFile = filepath.Join(t.TempDir(), "missing", "capsule.log")
	defer func() { flagLogFile = "" }()

	_, _, err := newLogger(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "-", percent(0))
	assert.Equal(t, "42%", percent(42))
}
